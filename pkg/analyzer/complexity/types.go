package complexity

// Metrics represents complexity measurements for a single function.
type Metrics struct {
	Cyclomatic           int     `json:"cyclomatic"`
	Cognitive            float64 `json:"cognitive"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
	Lines                int     `json:"lines"`
}

// HalsteadMetrics holds the software-science counts and derived values.
// Operators are approximated by called-function names, operands by
// argument and parameter text.
type HalsteadMetrics struct {
	DistinctOperators int     `json:"n1"`
	DistinctOperands  int     `json:"n2"`
	TotalOperators    int     `json:"N1"`
	TotalOperands     int     `json:"N2"`
	Vocabulary        int     `json:"vocabulary"`
	Length            int     `json:"length"`
	Volume            float64 `json:"volume"`
	Difficulty        float64 `json:"difficulty"`
	Effort            float64 `json:"effort"`
}

// FunctionResult pairs a function with its metrics.
type FunctionResult struct {
	Name     string  `json:"name"`
	Filepath string  `json:"filepath,omitempty"`
	Metrics  Metrics `json:"metrics"`
}

// FileResult aggregates function complexity for one file.
type FileResult struct {
	Path               string           `json:"path"`
	Functions          []FunctionResult `json:"functions"`
	TotalCyclomatic    int              `json:"total_cyclomatic"`
	AvgCyclomatic      float64          `json:"avg_cyclomatic"`
	AvgCognitive       float64          `json:"avg_cognitive"`
	AvgMaintainability float64          `json:"avg_maintainability"`
}

// Summary provides aggregate statistics across the snapshot.
type Summary struct {
	TotalFiles         int     `json:"total_files"`
	TotalFunctions     int     `json:"total_functions"`
	AvgCyclomatic      float64 `json:"avg_cyclomatic"`
	AvgCognitive       float64 `json:"avg_cognitive"`
	AvgMaintainability float64 `json:"avg_maintainability"`
	MaxCyclomatic      int     `json:"max_cyclomatic"`
	P50Cyclomatic      float64 `json:"p50_cyclomatic"`
	P90Cyclomatic      float64 `json:"p90_cyclomatic"`
	P95Cyclomatic      float64 `json:"p95_cyclomatic"`
}

// Analysis is the full snapshot-wide complexity result.
type Analysis struct {
	Files    []FileResult    `json:"files"`
	Halstead HalsteadMetrics `json:"halstead"`
	Summary  Summary         `json:"summary"`
}
