package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/analyzer/cycles"
	"github.com/mgraile/augur/pkg/analyzer/entity"
	"github.com/mgraile/augur/pkg/stats"
)

// Level selects how much analysis to run. Levels are cumulative: each
// strictly extends the previous one, and a single Analyze call never
// revisits a completed level.
type Level string

const (
	LevelBasic         Level = "basic"
	LevelComprehensive Level = "comprehensive"
	LevelDeep          Level = "deep"
)

// rank orders levels for the cumulative state machine.
func (l Level) rank() int {
	switch l {
	case LevelComprehensive:
		return 1
	case LevelDeep:
		return 2
	default:
		return 0
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "basic", "":
		return LevelBasic, nil
	case "comprehensive":
		return LevelComprehensive, nil
	case "deep":
		return LevelDeep, nil
	default:
		return "", fmt.Errorf("unknown analysis level %q", s)
	}
}

// SymbolCounts partitions symbols by kind.
type SymbolCounts struct {
	Classes    int `json:"classes"`
	Functions  int `json:"functions"`
	GlobalVars int `json:"global_vars"`
	Interfaces int `json:"interfaces"`
	Total      int `json:"total"`
}

// EdgeCounts tallies graph edges by kind.
type EdgeCounts struct {
	SymbolUsage      int `json:"symbol_usage"`
	ImportResolution int `json:"import_resolution"`
	Export           int `json:"export"`
	Total            int `json:"total"`
}

// BasicAnalysis holds node and edge counts only.
type BasicAnalysis struct {
	Files           int          `json:"files"`
	Imports         int          `json:"imports"`
	ExternalModules int          `json:"external_modules"`
	Lines           int          `json:"lines"`
	Symbols         SymbolCounts `json:"symbols"`
	Edges           EdgeCounts   `json:"edges"`
	Summary         string       `json:"summary"`
}

// ModuleCount is a module with its import frequency.
type ModuleCount struct {
	Module string `json:"module"`
	Count  int    `json:"count"`
}

// FileDependencies is a file with its efferent dependency count.
type FileDependencies struct {
	Path         string `json:"path"`
	Dependencies int    `json:"dependencies"`
}

// NamingConsistency measures adherence to naming conventions.
type NamingConsistency struct {
	SnakeCaseFunctions float64 `json:"snake_case_functions"`
	CamelCaseClasses   float64 `json:"camel_case_classes"`
}

// ComplexityDistributions holds percentile distributions per entity
// level.
type ComplexityDistributions struct {
	Function stats.Distribution `json:"function"`
	Class    stats.Distribution `json:"class"`
	File     stats.Distribution `json:"file"`
}

// ComprehensiveAnalysis extends BasicAnalysis with codebase-wide
// complexity, dependency, quality, and distribution metrics.
type ComprehensiveAnalysis struct {
	AvgComplexity    float64                 `json:"avg_complexity"`
	MostImported     []ModuleCount           `json:"most_imported"`
	FileDependencies []FileDependencies      `json:"file_dependencies"`
	Naming           NamingConsistency       `json:"naming"`
	Distributions    ComplexityDistributions `json:"distributions"`
}

// LayerCounts classifies files into architectural layers by path
// keywords.
type LayerCounts struct {
	Presentation   int `json:"presentation"`
	Business       int `json:"business"`
	Data           int `json:"data"`
	Infrastructure int `json:"infrastructure"`
	Other          int `json:"other"`
}

// FileCohesion is the symbol-relationship density of one file.
type FileCohesion struct {
	Path    string  `json:"path"`
	Symbols int     `json:"symbols"`
	Density float64 `json:"density"`
}

// MaintainabilityAggregate summarizes maintainability with the files
// that need attention (score below 50).
type MaintainabilityAggregate struct {
	Average        float64  `json:"average"`
	NeedsAttention []string `json:"needs_attention,omitempty"`
}

// HealthReport is the composite health score with its components.
type HealthReport struct {
	Score           float64      `json:"score"`
	Grade           entity.Grade `json:"grade"`
	Maintainability float64      `json:"maintainability"`
	Documentation   float64      `json:"documentation"`
	TestCoverage    float64      `json:"test_coverage"`
	DeadCode        float64      `json:"dead_code"`
	DebtRatio       float64      `json:"debt_ratio"`
}

// DeepAnalysis extends ComprehensiveAnalysis with architectural and
// debt analysis.
type DeepAnalysis struct {
	Layers          LayerCounts                `json:"layers"`
	ModuleCohesion  []FileCohesion             `json:"module_cohesion,omitempty"`
	AvgCohesion     float64                    `json:"avg_cohesion"`
	Complexity      *complexity.Analysis       `json:"complexity,omitempty"`
	Coupling        *cohesion.Analysis         `json:"coupling,omitempty"`
	MostCoupled     []cohesion.FileResult      `json:"most_coupled,omitempty"`
	Cycles          *cycles.Analysis           `json:"cycles,omitempty"`
	Maintainability MaintainabilityAggregate   `json:"maintainability"`
	Debt            *entity.DebtIndicators     `json:"debt,omitempty"`
	Health          HealthReport               `json:"health"`
	Insights        []string                   `json:"insights,omitempty"`
	Recommendations []string                   `json:"recommendations,omitempty"`
	Failures        []entity.Failure           `json:"failures,omitempty"`
}

// Result is the nested, JSON-serializable analysis result. Each level
// fills its own section and keeps every section of the levels below it,
// so a deep result is a strict superset of a comprehensive one, which
// is a strict superset of a basic one.
type Result struct {
	Level         Level                  `json:"analysis_level"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Commit        string                 `json:"commit,omitempty"`
	Basic         *BasicAnalysis         `json:"basic,omitempty"`
	Comprehensive *ComprehensiveAnalysis `json:"comprehensive,omitempty"`
	Deep          *DeepAnalysis          `json:"deep,omitempty"`
	Summary       *entity.Summary        `json:"summary,omitempty"`
	Error         string                 `json:"error,omitempty"`
}
