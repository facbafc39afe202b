// Package entity computes per-entity (function, class, file) metric
// records over a code graph snapshot, memoized by entity identity.
//
// A Calculator is bound to one snapshot. Its caches are keyed by entity
// identity hash, never evicted, and never invalidated by graph changes:
// reuse a Calculator only against the same snapshot, and call
// Invalidate (or build a fresh Calculator) after the graph changes.
// Calculators are not safe for concurrent use.
package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/codegraph"
)

var returnPattern = regexp.MustCompile(`\breturn\b`)

// Calculator computes and memoizes entity metrics for one snapshot.
type Calculator struct {
	snap    *codegraph.Snapshot
	est     complexity.Estimator
	coh     *cohesion.Analyzer
	weights Weights
	debt    DebtThresholds

	functions map[uint64]*FunctionMetrics
	classes   map[uint64]*ClassMetrics
	files     map[uint64]*FileMetrics
	failures  []Failure
}

// Option is a functional option for configuring Calculator.
type Option func(*Calculator)

// WithEstimator substitutes a custom complexity estimator.
func WithEstimator(e complexity.Estimator) Option {
	return func(c *Calculator) {
		c.est = e
	}
}

// WithWeights overrides the health-score component blend.
func WithWeights(w Weights) Option {
	return func(c *Calculator) {
		c.weights = w
	}
}

// WithDebtThresholds overrides the limits past which entities count as
// debt items.
func WithDebtThresholds(t DebtThresholds) Option {
	return func(c *Calculator) {
		c.debt = t
	}
}

// NewCalculator creates a calculator bound to the given snapshot.
func NewCalculator(snap *codegraph.Snapshot, opts ...Option) (*Calculator, error) {
	if snap == nil {
		return nil, codegraph.ErrNilSnapshot
	}
	c := &Calculator{
		snap:      snap,
		est:       complexity.NewEstimator(),
		coh:       cohesion.New(),
		weights:   DefaultWeights(),
		debt:      DefaultDebtThresholds(),
		functions: make(map[uint64]*FunctionMetrics),
		classes:   make(map[uint64]*ClassMetrics),
		files:     make(map[uint64]*FileMetrics),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Invalidate drops all memoized metrics. Call after the underlying
// graph has changed and the calculator is to be reused.
func (c *Calculator) Invalidate() {
	c.functions = make(map[uint64]*FunctionMetrics)
	c.classes = make(map[uint64]*ClassMetrics)
	c.files = make(map[uint64]*FileMetrics)
	c.failures = nil
}

// Failures returns the entities whose computation failed during this
// calculator's lifetime, in computation order.
func (c *Calculator) Failures() []Failure {
	return c.failures
}

// FunctionMetrics computes (or returns the memoized) metric record for
// a function. A computation failure yields neutral metrics with the
// ComputationError field set; it never propagates.
func (c *Calculator) FunctionMetrics(fn *codegraph.Function) *FunctionMetrics {
	key := identityKey(fn.Identity())
	if m, ok := c.functions[key]; ok {
		return m
	}
	m := c.functionSafe(fn)
	c.functions[key] = m
	return m
}

func (c *Calculator) functionSafe(fn *codegraph.Function) (m *FunctionMetrics) {
	defer func() {
		if r := recover(); r != nil {
			m = &FunctionMetrics{
				Name:                 fn.Name,
				Filepath:             fn.Filepath,
				Cyclomatic:           1,
				MaintainabilityIndex: 50,
				ComputationError:     fmt.Sprint(r),
			}
			c.record(fn.Identity(), KindFunction, r)
		}
	}()
	return c.computeFunction(fn)
}

func (c *Calculator) computeFunction(fn *codegraph.Function) *FunctionMetrics {
	m := &FunctionMetrics{
		Name:             fn.Name,
		Filepath:         fn.Filepath,
		Lines:            fn.LineCount(),
		Parameters:       len(fn.Parameters),
		ReturnStatements: len(returnPattern.FindAllStringIndex(fn.Source, -1)),
		CallSites:        len(fn.CallSites),
		FunctionCalls:    len(fn.Calls),
		IsAsync:          fn.IsAsync,
	}
	m.Cyclomatic = c.est.Cyclomatic(fn)
	m.Cognitive = c.est.Cognitive(fn)
	m.MaintainabilityIndex = c.est.MaintainabilityIndex(fn)
	m.DocCoverage = functionDocCoverage(fn)
	m.TestCoverage = c.functionTestCoverage(fn)
	m.ImpactScore = float64(len(fn.CallSites)) + 0.5*float64(len(fn.Usages))
	return m
}

// functionDocCoverage scores documentation 0..1: half for a docstring,
// half for type annotations (with a bonus for an annotated return).
func functionDocCoverage(fn *codegraph.Function) float64 {
	score := 0.0
	if fn.HasDocstring() {
		score += 0.5
	}

	typedRatio := 1.0
	if len(fn.Parameters) > 0 {
		typed := 0
		for _, p := range fn.Parameters {
			if p.Type != "" {
				typed++
			}
		}
		typedRatio = float64(typed) / float64(len(fn.Parameters))
	}
	if fn.ReturnType != "" {
		typedRatio += 0.2
	}
	if typedRatio > 1 {
		typedRatio = 1
	}
	return score + 0.5*typedRatio
}

// functionTestCoverage is a crude estimate from naming conventions:
// each test_* function whose name mentions the target adds 0.3, each
// Test* class that mentions it adds 0.2, capped at 1.0.
func (c *Calculator) functionTestCoverage(fn *codegraph.Function) float64 {
	if fn.Name == "" {
		return 0
	}
	target := strings.ToLower(fn.Name)

	coverage := 0.0
	for i := range c.snap.Functions {
		name := c.snap.Functions[i].Name
		if strings.HasPrefix(name, "test_") && strings.Contains(strings.ToLower(name), target) {
			coverage += 0.3
		}
	}
	for i := range c.snap.Classes {
		name := c.snap.Classes[i].Name
		if strings.HasPrefix(name, "Test") && strings.Contains(strings.ToLower(name), target) {
			coverage += 0.2
		}
	}
	if coverage > 1 {
		coverage = 1
	}
	return coverage
}

// ClassMetrics computes (or returns the memoized) metric record for a
// class.
func (c *Calculator) ClassMetrics(cls *codegraph.Class) *ClassMetrics {
	key := identityKey(cls.Identity())
	if m, ok := c.classes[key]; ok {
		return m
	}
	m := c.classSafe(cls)
	c.classes[key] = m
	return m
}

func (c *Calculator) classSafe(cls *codegraph.Class) (m *ClassMetrics) {
	defer func() {
		if r := recover(); r != nil {
			m = &ClassMetrics{
				Name:             cls.Name,
				Filepath:         cls.Filepath,
				Cohesion:         1,
				Coupling:         1,
				ComputationError: fmt.Sprint(r),
			}
			c.record(cls.Identity(), KindClass, r)
		}
	}()
	return c.computeClass(cls)
}

func (c *Calculator) computeClass(cls *codegraph.Class) *ClassMetrics {
	m := &ClassMetrics{
		Name:             cls.Name,
		Filepath:         cls.Filepath,
		Methods:          len(cls.Methods),
		Attributes:       len(cls.Attributes),
		InheritanceDepth: len(cls.Superclasses),
		Cohesion:         c.coh.ClassCohesion(cls),
		Coupling:         c.coh.ClassCoupling(cls),
	}
	for i := range cls.Methods {
		method := &cls.Methods[i]
		switch {
		case method.IsMagic():
			m.MagicMethods++
		case !method.IsPublic():
			m.PrivateMethods++
		default:
			m.PublicMethods++
		}
		if method.IsAbstract() {
			m.AbstractMethods++
		}
	}
	return m
}

// FileMetrics computes (or returns the memoized) metric record for a
// file.
func (c *Calculator) FileMetrics(f *codegraph.File) *FileMetrics {
	key := identityKey(f.Identity())
	if m, ok := c.files[key]; ok {
		return m
	}
	m := c.fileSafe(f)
	c.files[key] = m
	return m
}

func (c *Calculator) fileSafe(f *codegraph.File) (m *FileMetrics) {
	defer func() {
		if r := recover(); r != nil {
			m = &FileMetrics{
				Path:               f.Path,
				AvgMaintainability: 50,
				ComputationError:   fmt.Sprint(r),
			}
			c.record(f.Identity(), KindFile, r)
		}
	}()
	return c.computeFile(f)
}

func (c *Calculator) computeFile(f *codegraph.File) *FileMetrics {
	fns := c.snap.FunctionsIn(f.Path)
	classes := c.snap.ClassesIn(f.Path)

	m := &FileMetrics{
		Path:        f.Path,
		Lines:       f.LineCount(),
		Functions:   len(fns),
		Classes:     len(classes),
		IsTestFile:  codegraph.IsTestFile(f.Path),
		Instability: c.coh.FileInstability(c.snap, f.Path),
	}

	var totalCyc, totalMI float64
	documented, docTotal := 0, 0
	for _, fn := range fns {
		fm := c.FunctionMetrics(fn)
		totalCyc += float64(fm.Cyclomatic)
		totalMI += fm.MaintainabilityIndex
		docTotal++
		if fn.HasDocstring() {
			documented++
		}
	}
	for _, cls := range classes {
		docTotal++
		if cls.HasDocstring() {
			documented++
		}
	}

	if len(fns) > 0 {
		m.AvgComplexity = totalCyc / float64(len(fns))
		m.AvgMaintainability = totalMI / float64(len(fns))
	}
	if docTotal > 0 {
		m.DocCoverage = float64(documented) / float64(docTotal)
	}
	m.TestCoverage = c.fileTestCoverage(f.Path)
	return m
}

// fileTestCoverage is coarser than the per-function estimate: a file
// with a conventionally named test counterpart in the snapshot scores
// 0.8, anything else 0.2.
func (c *Calculator) fileTestCoverage(path string) float64 {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}
	stem := base
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		stem = base[:idx]
	}

	for i := range c.snap.Files {
		other := c.snap.Files[i].Path
		if other == path || !codegraph.IsTestFile(other) {
			continue
		}
		if strings.Contains(other, "test_"+stem) || strings.Contains(other, stem+"_test") ||
			strings.Contains(other, stem+".test") || strings.Contains(other, stem+".spec") {
			return 0.8
		}
	}
	return 0.2
}

func (c *Calculator) record(identity string, kind EntityKind, reason any) {
	c.failures = append(c.failures, Failure{
		Entity: identity,
		Kind:   kind,
		Reason: fmt.Sprint(reason),
	})
}

func identityKey(identity string) uint64 {
	return xxhash.Sum64String(identity)
}
