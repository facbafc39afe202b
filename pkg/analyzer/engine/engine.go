package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/mgraile/augur/pkg/analyzer"
	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/analyzer/cycles"
	"github.com/mgraile/augur/pkg/analyzer/entity"
	"github.com/mgraile/augur/pkg/codegraph"
)

// Engine runs unified analysis over a snapshot at a chosen level.
// Analyze never returns an error: failures come back inside the Result
// so callers always have something renderable.
type Engine struct {
	snap       *codegraph.Snapshot
	calc       *entity.Calculator
	cx         *complexity.Analyzer
	coh        *cohesion.Analyzer
	cyc        *cycles.Detector
	commit     string
	thresholds Thresholds
	enabled    Toggles
	est        complexity.Estimator
	calcOpts   []entity.Option
}

// Thresholds are the insight trigger levels. Values at or below a
// threshold produce no finding.
type Thresholds struct {
	Complexity      float64
	DocCoverage     float64
	Instability     float64
	DebtRatio       float64
	DeadCode        float64
	Maintainability float64
}

// DefaultThresholds returns the standard insight trigger levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Complexity:      complexityThreshold,
		DocCoverage:     docThreshold,
		Instability:     instabilityThreshold,
		DebtRatio:       debtRatioThreshold,
		DeadCode:        deadCodeThreshold,
		Maintainability: maintainabilityThreshold,
	}
}

// Toggles selects which deep sub-analyses run. Disabled sections are
// omitted from the result and produce no insights; the health summary
// is always computed.
type Toggles struct {
	Complexity bool
	Cohesion   bool
	Cycles     bool
	DeadCode   bool
	Debt       bool
}

// DefaultToggles enables every sub-analysis.
func DefaultToggles() Toggles {
	return Toggles{Complexity: true, Cohesion: true, Cycles: true, DeadCode: true, Debt: true}
}

// Option configures an Engine.
type Option func(*Engine)

// WithCommit stamps results with a VCS commit hash.
func WithCommit(hash string) Option {
	return func(e *Engine) {
		e.commit = hash
	}
}

// WithEstimator overrides the complexity estimator used by every
// sub-analysis.
func WithEstimator(est complexity.Estimator) Option {
	return func(e *Engine) {
		e.est = est
	}
}

// WithThresholds overrides the insight trigger levels.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// WithToggles selects which deep sub-analyses run.
func WithToggles(t Toggles) Option {
	return func(e *Engine) {
		e.enabled = t
	}
}

// WithCalculatorOptions forwards options to the entity calculator, for
// example entity.WithWeights or entity.WithDebtThresholds.
func WithCalculatorOptions(opts ...entity.Option) Option {
	return func(e *Engine) {
		e.calcOpts = append(e.calcOpts, opts...)
	}
}

// New creates an Engine for the given snapshot.
func New(snap *codegraph.Snapshot, opts ...Option) (*Engine, error) {
	if snap == nil {
		return nil, codegraph.ErrNilSnapshot
	}
	e := &Engine{
		snap:       snap,
		cx:         complexity.New(),
		coh:        cohesion.New(),
		cyc:        cycles.New(),
		thresholds: DefaultThresholds(),
		enabled:    DefaultToggles(),
	}
	for _, opt := range opts {
		opt(e)
	}
	calcOpts := e.calcOpts
	if e.est != nil {
		e.cx = complexity.New(complexity.WithEstimator(e.est))
		calcOpts = append(calcOpts, entity.WithEstimator(e.est))
	}
	calc, err := entity.NewCalculator(snap, calcOpts...)
	if err != nil {
		return nil, err
	}
	e.calc = calc
	return e, nil
}

var _ analyzer.GraphAnalyzer[*Result] = (*Analyzer)(nil)

// Analyzer adapts Engine to the GraphAnalyzer interface at a fixed
// level.
type Analyzer struct {
	Level Level
}

func (a *Analyzer) Analyze(ctx context.Context, snap *codegraph.Snapshot) (*Result, error) {
	eng, err := New(snap)
	if err != nil {
		return nil, err
	}
	return eng.Analyze(ctx, a.Level), nil
}

// Analyze runs analysis at the requested level. Levels are cumulative:
// deep results contain the comprehensive and basic sections, and a
// failure at any level leaves the completed sections intact with the
// error recorded on the result.
func (e *Engine) Analyze(ctx context.Context, level Level) *Result {
	res := &Result{
		Level:       level,
		GeneratedAt: time.Now().UTC(),
		Commit:      e.commit,
	}

	run := func(name string, fn func(context.Context) error) bool {
		if res.Error != "" {
			return false
		}
		defer func() {
			if r := recover(); r != nil {
				res.Error = fmt.Sprintf("%s analysis failed: %v", name, r)
			}
		}()
		if err := ctx.Err(); err != nil {
			res.Error = err.Error()
			return false
		}
		if err := fn(ctx); err != nil {
			res.Error = fmt.Sprintf("%s analysis failed: %v", name, err)
			return false
		}
		return true
	}

	if !run("basic", func(ctx context.Context) error {
		res.Basic = e.analyzeBasic()
		return nil
	}) {
		return res
	}
	if level.rank() < LevelComprehensive.rank() {
		return res
	}

	if !run("comprehensive", func(ctx context.Context) error {
		res.Comprehensive = e.analyzeComprehensive(ctx)
		return nil
	}) {
		return res
	}
	if level.rank() < LevelDeep.rank() {
		return res
	}

	run("deep", func(ctx context.Context) error {
		deep, summary, err := e.analyzeDeep(ctx)
		if err != nil {
			return err
		}
		res.Deep = deep
		res.Summary = summary
		return nil
	})
	return res
}

// analyzeDeep runs the heavier sub-analyses concurrently, then derives
// architecture, debt, and health from them.
func (e *Engine) analyzeDeep(ctx context.Context) (*DeepAnalysis, *entity.Summary, error) {
	var (
		cxRes  *complexity.Analysis
		cohRes *cohesion.Analysis
		cycRes *cycles.Analysis
		cxErr  error
		cohErr error
		cycErr error
	)

	var wg conc.WaitGroup
	if e.enabled.Complexity {
		wg.Go(func() {
			cxRes, cxErr = e.cx.Analyze(ctx, e.snap)
		})
	}
	if e.enabled.Cohesion {
		wg.Go(func() {
			cohRes, cohErr = e.coh.Analyze(ctx, e.snap)
		})
	}
	if e.enabled.Cycles {
		wg.Go(func() {
			cycRes, cycErr = e.cyc.Analyze(ctx, e.snap)
		})
	}
	wg.Wait()

	for _, err := range []error{cxErr, cohErr, cycErr} {
		if err != nil {
			return nil, nil, err
		}
	}

	summary := e.calc.Summary()

	deep := &DeepAnalysis{
		Layers:     e.classifyLayers(),
		Complexity: cxRes,
		Coupling:   cohRes,
		Cycles:     cycRes,
		Failures:   e.calc.Failures(),
	}
	deep.ModuleCohesion, deep.AvgCohesion = e.moduleCohesion()
	deep.MostCoupled = mostCoupled(cohRes, maxCoupledFiles)
	if cxRes != nil {
		deep.Maintainability = e.maintainability(cxRes)
	}
	if e.enabled.Debt {
		deep.Debt = e.calc.DebtIndicators()
	}
	deep.Health = HealthReport{
		Score:           summary.HealthScore,
		Grade:           summary.Grade,
		Maintainability: summary.AvgMaintainability,
		Documentation:   summary.DocCoverage,
		TestCoverage:    summary.TestCoverage,
		DeadCode:        summary.DeadCodePercentage,
		DebtRatio:       summary.DebtRatio,
	}
	deep.Insights, deep.Recommendations = e.insights(deep, cxRes, cohRes, cycRes)
	return deep, summary, nil
}
