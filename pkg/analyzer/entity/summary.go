package entity

import "fmt"

// Debt thresholds: entities past these limits count as debt items.
const (
	debtFileLines    = 500
	debtFunctionDeps = 10
	debtClassMethods = 20
)

// Health-score weights. This is the canonical composite formula; the
// same blend is used at every level of reporting.
const (
	weightMaintainability = 0.30
	weightDocumentation   = 0.20
	weightTestCoverage    = 0.20
	weightLiveCode        = 0.15
	weightDebt            = 0.15
)

// Weights blends the five health-score components. The five weights
// should sum to 1; DeadCode is applied to the live-code ratio and Debt
// to the debt-free ratio.
type Weights struct {
	Maintainability float64
	Documentation   float64
	TestCoverage    float64
	DeadCode        float64
	Debt            float64
}

// DefaultWeights returns the canonical component blend.
func DefaultWeights() Weights {
	return Weights{
		Maintainability: weightMaintainability,
		Documentation:   weightDocumentation,
		TestCoverage:    weightTestCoverage,
		DeadCode:        weightLiveCode,
		Debt:            weightDebt,
	}
}

// Blend computes the composite score from the raw components, clamped
// to [0,1].
func (w Weights) Blend(avgMaintainability, docCoverage, testCoverage, deadCodePct, debtRatio float64) float64 {
	score := w.Maintainability*(avgMaintainability/100) +
		w.Documentation*docCoverage +
		w.TestCoverage*testCoverage +
		w.DeadCode*(1-deadCodePct) +
		w.Debt*(1-debtRatio)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// DebtThresholds are the limits past which entities count as debt
// items.
type DebtThresholds struct {
	FileLines    int
	FunctionDeps int
	ClassMethods int
}

// DefaultDebtThresholds returns the standard debt limits.
func DefaultDebtThresholds() DebtThresholds {
	return DebtThresholds{
		FileLines:    debtFileLines,
		FunctionDeps: debtFunctionDeps,
		ClassMethods: debtClassMethods,
	}
}

// Summary aggregates every entity in the snapshot into a codebase-wide
// record. Aggregation failures are recovered: the result is a zeroed
// summary carrying an Error rather than a panic.
func (c *Calculator) Summary() (s *Summary) {
	defer func() {
		if r := recover(); r != nil {
			s = &Summary{Error: fmt.Sprint(r)}
		}
	}()
	return c.computeSummary()
}

func (c *Calculator) computeSummary() *Summary {
	snap := c.snap
	s := &Summary{
		Files:     len(snap.Files),
		Functions: len(snap.Functions),
		Classes:   len(snap.Classes),
		Symbols:   len(snap.Symbols),
		Imports:   len(snap.Imports),
		Lines:     snap.TotalLines(),
	}

	var totalCyc, totalMI float64
	documented, docTotal := 0, 0
	for i := range snap.Functions {
		fm := c.FunctionMetrics(&snap.Functions[i])
		totalCyc += float64(fm.Cyclomatic)
		totalMI += fm.MaintainabilityIndex
		docTotal++
		if snap.Functions[i].HasDocstring() {
			documented++
		}
	}
	for i := range snap.Classes {
		docTotal++
		if snap.Classes[i].HasDocstring() {
			documented++
		}
	}

	if s.Functions > 0 {
		s.AvgComplexity = totalCyc / float64(s.Functions)
		s.AvgMaintainability = totalMI / float64(s.Functions)
	}
	if docTotal > 0 {
		s.DocCoverage = float64(documented) / float64(docTotal)
	}

	var totalTest float64
	for i := range snap.Files {
		totalTest += c.FileMetrics(&snap.Files[i]).TestCoverage
	}
	if s.Files > 0 {
		s.TestCoverage = totalTest / float64(s.Files)
	}

	s.DeadCodePercentage = c.DeadCodePercentage()

	debt := c.DebtIndicators()
	s.DebtRatio = debt.DebtRatio
	s.TechnicalDebtScore = debt.DebtScore

	s.HealthScore = c.weights.Blend(s.AvgMaintainability, s.DocCoverage, s.TestCoverage,
		s.DeadCodePercentage, s.DebtRatio)
	s.Grade = GradeFromScore(s.HealthScore * 100)
	s.FailedEntities = len(c.failures)
	return s
}

// DebtIndicators scans the snapshot for the four debt signals: large
// files, high fan-out functions, oversized classes, and undocumented
// public functions.
func (c *Calculator) DebtIndicators() *DebtIndicators {
	snap := c.snap
	d := &DebtIndicators{}

	for i := range snap.Files {
		f := &snap.Files[i]
		if f.LineCount() > c.debt.FileLines {
			d.LargeFiles = append(d.LargeFiles, f.Path)
		}
	}
	for i := range snap.Functions {
		fn := &snap.Functions[i]
		if len(fn.Dependencies) > c.debt.FunctionDeps {
			d.HighFanOutFunctions = append(d.HighFanOutFunctions, fn.Identity())
		}
		if fn.IsPublic() && !fn.HasDocstring() {
			d.UndocumentedPublic = append(d.UndocumentedPublic, fn.Identity())
		}
	}
	for i := range snap.Classes {
		cls := &snap.Classes[i]
		if len(cls.Methods) > c.debt.ClassMethods {
			d.OversizedClasses = append(d.OversizedClasses, cls.Identity())
		}
	}

	d.DebtItems = len(d.LargeFiles) + len(d.HighFanOutFunctions) +
		len(d.OversizedClasses) + len(d.UndocumentedPublic)
	d.TotalItems = len(snap.Files) + len(snap.Functions) + len(snap.Classes)

	if d.TotalItems > 0 {
		d.DebtRatio = float64(d.DebtItems) / float64(d.TotalItems)
		if d.DebtRatio > 1 {
			d.DebtRatio = 1
		}
	}
	d.DebtScore = 100 * (1 - d.DebtRatio)
	return d
}

// HealthScore blends maintainability, documentation, test coverage,
// live-code ratio, and debt ratio into a composite score in [0,1]
// using the default weights.
func HealthScore(avgMaintainability, docCoverage, testCoverage, deadCodePct, debtRatio float64) float64 {
	return DefaultWeights().Blend(avgMaintainability, docCoverage, testCoverage, deadCodePct, debtRatio)
}
