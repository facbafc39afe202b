package engine

import (
	"fmt"

	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/analyzer/cycles"
)

// Default insight thresholds. Values at or below a threshold produce
// no finding.
const (
	complexityThreshold  = 5.0
	docThreshold         = 0.5
	instabilityThreshold = 0.7
	debtRatioThreshold   = 0.3
	deadCodeThreshold    = 0.2
)

// insights derives findings and paired recommendations from the deep
// analysis. Every insight that crosses a threshold gets a matching
// recommendation. Sections whose sub-analysis is disabled are nil and
// skipped.
func (e *Engine) insights(deep *DeepAnalysis, cx *complexity.Analysis, coh *cohesion.Analysis, cyc *cycles.Analysis) (insights, recommendations []string) {
	t := e.thresholds

	if cx != nil && cx.Summary.AvgCyclomatic > t.Complexity {
		insights = append(insights, fmt.Sprintf(
			"average cyclomatic complexity is %.1f, above the threshold of %.0f",
			cx.Summary.AvgCyclomatic, t.Complexity))
		recommendations = append(recommendations,
			"refactor the most complex functions into smaller units")
	}

	if deep.Health.Documentation < t.DocCoverage {
		insights = append(insights, fmt.Sprintf(
			"documentation coverage is %.0f%%, below %.0f%%",
			deep.Health.Documentation*100, t.DocCoverage*100))
		recommendations = append(recommendations,
			"add docstrings and parameter types to public functions and classes")
	}

	if coh != nil && coh.Summary.AvgInstability > t.Instability {
		insights = append(insights, fmt.Sprintf(
			"average instability is %.2f, above %.2f",
			coh.Summary.AvgInstability, t.Instability))
		recommendations = append(recommendations,
			"reduce outgoing dependencies in unstable files or extract stable interfaces")
	}

	if e.enabled.Debt && deep.Health.DebtRatio > t.DebtRatio {
		insights = append(insights, fmt.Sprintf(
			"technical debt ratio is %.2f, above %.2f",
			deep.Health.DebtRatio, t.DebtRatio))
		recommendations = append(recommendations,
			"split oversized files and classes flagged by the debt indicators")
	}

	if cyc != nil && cyc.Summary.TotalCycles > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d dependency cycles detected (%d problematic)",
			cyc.Summary.TotalCycles, cyc.Summary.ProblematicCycles))
		recommendations = append(recommendations,
			"break import cycles by moving shared code into a common module")
	}

	if e.enabled.DeadCode && deep.Health.DeadCode > t.DeadCode {
		insights = append(insights, fmt.Sprintf(
			"%.0f%% of functions appear unused", deep.Health.DeadCode*100))
		recommendations = append(recommendations,
			"review and remove unreferenced functions")
	}

	return insights, recommendations
}
