package entity

// FunctionMetrics is the per-function metric record.
type FunctionMetrics struct {
	Name                 string  `json:"name"`
	Filepath             string  `json:"filepath,omitempty"`
	Lines                int     `json:"lines"`
	Parameters           int     `json:"parameters"`
	ReturnStatements     int     `json:"return_statements"`
	CallSites            int     `json:"call_sites"`
	FunctionCalls        int     `json:"function_calls"`
	Cyclomatic           int     `json:"cyclomatic"`
	Cognitive            float64 `json:"cognitive"`
	MaintainabilityIndex float64 `json:"maintainability_index"`
	DocCoverage          float64 `json:"doc_coverage"`
	TestCoverage         float64 `json:"test_coverage"`
	ImpactScore          float64 `json:"impact_score"`
	IsAsync              bool    `json:"is_async,omitempty"`
	ComputationError     string  `json:"computation_error,omitempty"`
}

// ClassMetrics is the per-class metric record.
type ClassMetrics struct {
	Name             string  `json:"name"`
	Filepath         string  `json:"filepath,omitempty"`
	Methods          int     `json:"methods"`
	Attributes       int     `json:"attributes"`
	InheritanceDepth int     `json:"inheritance_depth"`
	Cohesion         float64 `json:"cohesion"`
	Coupling         float64 `json:"coupling"`
	PublicMethods    int     `json:"public_methods"`
	PrivateMethods   int     `json:"private_methods"`
	MagicMethods     int     `json:"magic_methods"`
	AbstractMethods  int     `json:"abstract_methods"`
	ComputationError string  `json:"computation_error,omitempty"`
}

// FileMetrics is the per-file metric record.
type FileMetrics struct {
	Path               string  `json:"path"`
	Lines              int     `json:"lines"`
	Functions          int     `json:"functions"`
	Classes            int     `json:"classes"`
	AvgComplexity      float64 `json:"avg_complexity"`
	AvgMaintainability float64 `json:"avg_maintainability"`
	DocCoverage        float64 `json:"doc_coverage"`
	TestCoverage       float64 `json:"test_coverage"`
	IsTestFile         bool    `json:"is_test_file"`
	Instability        float64 `json:"instability"`
	ComputationError   string  `json:"computation_error,omitempty"`
}

// EntityKind names the entity variant a record or failure belongs to.
type EntityKind string

const (
	KindFunction EntityKind = "function"
	KindClass    EntityKind = "class"
	KindFile     EntityKind = "file"
)

// Failure records one entity whose metric computation failed. Failed
// entities receive neutral metric values; the batch continues.
type Failure struct {
	Entity string     `json:"entity"`
	Kind   EntityKind `json:"kind"`
	Reason string     `json:"reason"`
}

// Summary is the codebase-wide metric aggregate.
type Summary struct {
	Files              int     `json:"files"`
	Functions          int     `json:"functions"`
	Classes            int     `json:"classes"`
	Symbols            int     `json:"symbols"`
	Imports            int     `json:"imports"`
	Lines              int     `json:"lines"`
	AvgComplexity      float64 `json:"avg_complexity"`
	AvgMaintainability float64 `json:"avg_maintainability"`
	DocCoverage        float64 `json:"doc_coverage"`
	TestCoverage       float64 `json:"test_coverage"`
	DeadCodePercentage float64 `json:"dead_code_percentage"`
	DebtRatio          float64 `json:"debt_ratio"`
	TechnicalDebtScore float64 `json:"technical_debt_score"`
	HealthScore        float64 `json:"health_score"`
	Grade              Grade   `json:"grade"`
	FailedEntities     int     `json:"failed_entities,omitempty"`
	Error              string  `json:"error,omitempty"`
}

// DebtIndicators lists the technical-debt findings behind the debt
// ratio.
type DebtIndicators struct {
	LargeFiles           []string `json:"large_files,omitempty"`
	HighFanOutFunctions  []string `json:"high_fan_out_functions,omitempty"`
	OversizedClasses     []string `json:"oversized_classes,omitempty"`
	UndocumentedPublic   []string `json:"undocumented_public,omitempty"`
	DebtItems            int      `json:"debt_items"`
	TotalItems           int      `json:"total_items"`
	DebtRatio            float64  `json:"debt_ratio"`
	DebtScore            float64  `json:"debt_score"`
}
