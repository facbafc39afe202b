// Package complexity estimates per-function complexity from the source
// text and structure carried on graph nodes.
//
// The cyclomatic estimate is lexical: it counts decision keywords in
// the function's source rather than walking a control-flow graph, so a
// keyword inside a string literal or comment is indistinguishable from
// real control flow. The Estimator interface exists so a flow-based
// implementation can replace this one without touching callers.
package complexity

import (
	"context"
	"math"
	"regexp"
	"sort"

	"github.com/mgraile/augur/pkg/analyzer"
	"github.com/mgraile/augur/pkg/codegraph"
	"github.com/mgraile/augur/pkg/stats"
)

// Estimator computes complexity estimates for a single function.
type Estimator interface {
	Cyclomatic(fn *codegraph.Function) int
	Cognitive(fn *codegraph.Function) float64
	MaintainabilityIndex(fn *codegraph.Function) float64
	Halstead(fns []*codegraph.Function) HalsteadMetrics
}

// Ensure LexicalEstimator implements Estimator.
var _ Estimator = (*LexicalEstimator)(nil)

// Ensure Analyzer implements analyzer.GraphAnalyzer.
var _ analyzer.GraphAnalyzer[*Analysis] = (*Analyzer)(nil)

// neutralMaintainability is returned for functions with empty source
// instead of computing through zero-length edge cases.
const neutralMaintainability = 50.0

// Decision keywords are matched on word boundaries so that e.g. the
// "if" inside "elif" is not counted twice.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\s`),
	regexp.MustCompile(`\belif\s`),
	regexp.MustCompile(`\belse\s*:`),
	regexp.MustCompile(`\bwhile\s`),
	regexp.MustCompile(`\bexcept\s*\w*\s*:`),
	regexp.MustCompile(`\band\s`),
	regexp.MustCompile(`\bor\s`),
	regexp.MustCompile(`\btry\s*:`),
	regexp.MustCompile(`\bwith\s`),
	regexp.MustCompile(`\bassert\s`),
	regexp.MustCompile(`\s\?\s`),
	regexp.MustCompile(`\bcase\s`),
	regexp.MustCompile(`\bmatch\s`),
}

var (
	lambdaPattern  = regexp.MustCompile(`\blambda\b`)
	anyForPattern  = regexp.MustCompile(`\bfor\s`)
	loopForPattern = regexp.MustCompile(`(?m)^\s*(?:async\s+)?for\s`)
)

// LexicalEstimator is the keyword-counting Estimator.
type LexicalEstimator struct{}

// NewEstimator creates a lexical complexity estimator.
func NewEstimator() *LexicalEstimator {
	return &LexicalEstimator{}
}

// Cyclomatic returns the lexical cyclomatic complexity estimate:
// base 1 plus one per decision keyword, loop, lambda, and comprehension
// clause. The result is never below 1.
func (e *LexicalEstimator) Cyclomatic(fn *codegraph.Function) int {
	src := fn.Source
	if src == "" {
		return 1
	}

	complexity := 1
	for _, p := range decisionPatterns {
		complexity += len(p.FindAllStringIndex(src, -1))
	}

	// Loop fors are line-leading; any remaining `for` clauses are
	// comprehension fors. Both count.
	loopFors := len(loopForPattern.FindAllStringIndex(src, -1))
	comprehensionFors := len(anyForPattern.FindAllStringIndex(src, -1)) - loopFors
	if comprehensionFors < 0 {
		comprehensionFors = 0
	}
	complexity += loopFors + comprehensionFors
	complexity += len(lambdaPattern.FindAllStringIndex(src, -1))

	if complexity < 1 {
		complexity = 1
	}
	return complexity
}

// Cognitive returns a linear cognitive-load proxy built from fan-out
// and parameter count. It is not nesting-aware.
func (e *LexicalEstimator) Cognitive(fn *codegraph.Function) float64 {
	return 1 + 0.5*float64(len(fn.Dependencies)) + 0.2*float64(len(fn.Parameters))
}

// MaintainabilityIndex returns the classic MI on a 0-100 scale, using
// lines*complexity*0.5 as the Halstead-volume approximation.
func (e *LexicalEstimator) MaintainabilityIndex(fn *codegraph.Function) float64 {
	if fn.Source == "" {
		return neutralMaintainability
	}

	lines := fn.LineCount()
	cc := float64(e.Cyclomatic(fn))

	volume := float64(lines) * cc * 0.5
	if volume < 1 {
		volume = 1
	}
	logLines := float64(lines)
	if logLines < 1 {
		logLines = 1
	}

	mi := 171 - 5.2*math.Log(volume) - 0.23*cc - 16.2*math.Log(logLines)
	return clamp(mi, 0, 100)
}

// Analyzer computes snapshot-wide complexity using an Estimator.
type Analyzer struct {
	estimator Estimator
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithEstimator substitutes a custom complexity estimator.
func WithEstimator(e Estimator) Option {
	return func(a *Analyzer) {
		a.estimator = e
	}
}

// New creates a new complexity analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{estimator: NewEstimator()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Estimator returns the underlying per-function estimator.
func (a *Analyzer) Estimator() Estimator {
	return a.estimator
}

// Analyze computes complexity for every function in the snapshot,
// grouped by file. Progress is tracked via context using
// analyzer.WithTracker.
func (a *Analyzer) Analyze(ctx context.Context, snap *codegraph.Snapshot) (*Analysis, error) {
	if snap == nil {
		return nil, codegraph.ErrNilSnapshot
	}

	tracker := analyzer.TrackerFromContext(ctx)
	if tracker != nil {
		tracker.Add(len(snap.Functions))
	}

	byFile := make(map[string][]FunctionResult)
	fns := make([]*codegraph.Function, 0, len(snap.Functions))
	for i := range snap.Functions {
		fn := &snap.Functions[i]
		fns = append(fns, fn)
		byFile[fn.Filepath] = append(byFile[fn.Filepath], FunctionResult{
			Name:     fn.Name,
			Filepath: fn.Filepath,
			Metrics: Metrics{
				Cyclomatic:           a.estimator.Cyclomatic(fn),
				Cognitive:            a.estimator.Cognitive(fn),
				MaintainabilityIndex: a.estimator.MaintainabilityIndex(fn),
				Lines:                fn.LineCount(),
			},
		})
		if tracker != nil {
			tracker.Tick(fn.Name)
		}
	}

	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	result := &Analysis{
		Files:    make([]FileResult, 0, len(paths)),
		Halstead: a.estimator.Halstead(fns),
	}
	for _, path := range paths {
		result.Files = append(result.Files, buildFileResult(path, byFile[path]))
	}
	result.Summary = buildSummary(result.Files)
	return result, nil
}

func buildFileResult(path string, fns []FunctionResult) FileResult {
	fr := FileResult{Path: path, Functions: fns}
	var totalCog, totalMI float64
	for _, fn := range fns {
		fr.TotalCyclomatic += fn.Metrics.Cyclomatic
		totalCog += fn.Metrics.Cognitive
		totalMI += fn.Metrics.MaintainabilityIndex
	}
	if n := float64(len(fns)); n > 0 {
		fr.AvgCyclomatic = float64(fr.TotalCyclomatic) / n
		fr.AvgCognitive = totalCog / n
		fr.AvgMaintainability = totalMI / n
	}
	return fr
}

func buildSummary(files []FileResult) Summary {
	s := Summary{TotalFiles: len(files)}

	var allCyclomatic []float64
	var totalCyc, totalCog, totalMI float64
	for _, fc := range files {
		for _, fn := range fc.Functions {
			s.TotalFunctions++
			cyc := fn.Metrics.Cyclomatic
			allCyclomatic = append(allCyclomatic, float64(cyc))
			totalCyc += float64(cyc)
			totalCog += fn.Metrics.Cognitive
			totalMI += fn.Metrics.MaintainabilityIndex
			if cyc > s.MaxCyclomatic {
				s.MaxCyclomatic = cyc
			}
		}
	}

	if s.TotalFunctions > 0 {
		n := float64(s.TotalFunctions)
		s.AvgCyclomatic = totalCyc / n
		s.AvgCognitive = totalCog / n
		s.AvgMaintainability = totalMI / n

		sort.Float64s(allCyclomatic)
		s.P50Cyclomatic = stats.Percentile(allCyclomatic, 50)
		s.P90Cyclomatic = stats.Percentile(allCyclomatic, 90)
		s.P95Cyclomatic = stats.Percentile(allCyclomatic, 95)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
