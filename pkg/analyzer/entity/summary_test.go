package entity

import (
	"strings"
	"testing"

	"github.com/mgraile/augur/pkg/codegraph"
)

func TestSummary_EmptySnapshot(t *testing.T) {
	calc, _ := NewCalculator(&codegraph.Snapshot{})
	s := calc.Summary()
	if s.Error != "" {
		t.Fatalf("empty snapshot should not fail: %s", s.Error)
	}
	if s.Files != 0 || s.Functions != 0 || s.Classes != 0 {
		t.Errorf("counts = %+v, want zeros", s)
	}
	if s.HealthScore < 0 || s.HealthScore > 1 {
		t.Errorf("HealthScore = %f, want within [0, 1]", s.HealthScore)
	}
	if s.Grade == "" {
		t.Error("Grade should be set even for an empty snapshot")
	}
}

func TestSummary_HealthScoreRange(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{{Path: "a.py", Source: "x = 1\n"}},
		Functions: []codegraph.Function{
			{Name: "f", Filepath: "a.py", Source: "def f():\n    pass\n", Docstring: "doc",
				Usages: []codegraph.Ref{{Name: "g"}}},
		},
	}
	calc, _ := NewCalculator(snap)
	s := calc.Summary()
	if s.Error != "" {
		t.Fatalf("Summary failed: %s", s.Error)
	}
	if s.HealthScore < 0 || s.HealthScore > 1 {
		t.Errorf("HealthScore = %f, want within [0, 1]", s.HealthScore)
	}
	if s.DocCoverage != 1.0 {
		t.Errorf("DocCoverage = %f, want 1.0", s.DocCoverage)
	}
}

func TestDeadCodePercentage(t *testing.T) {
	fns := make([]codegraph.Function, 0, 10)
	// 7 live functions: referenced or entrypoints.
	for i := 0; i < 6; i++ {
		fns = append(fns, codegraph.Function{
			Name:   "used" + strings.Repeat("x", i),
			Usages: []codegraph.Ref{{Name: "caller"}},
		})
	}
	fns = append(fns, codegraph.Function{Name: "main"})
	// 3 dead functions.
	fns = append(fns,
		codegraph.Function{Name: "orphan_a"},
		codegraph.Function{Name: "orphan_b"},
		codegraph.Function{Name: "orphan_c"},
	)

	calc, _ := NewCalculator(&codegraph.Snapshot{Functions: fns})
	if got := calc.DeadCodePercentage(); got != 0.3 {
		t.Errorf("DeadCodePercentage = %f, want 0.3", got)
	}
	dead := calc.DeadFunctions()
	if len(dead) != 3 {
		t.Errorf("len(DeadFunctions) = %d, want 3", len(dead))
	}
}

func TestDeadCodePercentage_Entrypoints(t *testing.T) {
	snap := &codegraph.Snapshot{
		Functions: []codegraph.Function{
			{Name: "main"},
			{Name: "__init__"},
			{Name: "test_thing"},
			{Name: "handler"},
		},
	}
	calc, _ := NewCalculator(snap)
	if got := calc.DeadCodePercentage(); got != 0 {
		t.Errorf("DeadCodePercentage = %f, want 0 for entrypoints only", got)
	}
}

func TestDebtIndicators(t *testing.T) {
	deps := make([]codegraph.Ref, 11)
	methods := make([]codegraph.Function, 21)
	for i := range methods {
		methods[i] = codegraph.Function{Name: "m"}
	}

	snap := &codegraph.Snapshot{
		Files: []codegraph.File{
			{Path: "huge.py", Lines: 600},
			{Path: "ok.py", Lines: 100},
		},
		Functions: []codegraph.Function{
			{Name: "fanout", Filepath: "huge.py", Dependencies: deps, Docstring: "doc"},
			{Name: "plain", Filepath: "ok.py", Docstring: "doc"},
		},
		Classes: []codegraph.Class{
			{Name: "God", Filepath: "huge.py", Methods: methods},
		},
	}
	calc, _ := NewCalculator(snap)
	d := calc.DebtIndicators()

	if len(d.LargeFiles) != 1 || d.LargeFiles[0] != "huge.py" {
		t.Errorf("LargeFiles = %v, want [huge.py]", d.LargeFiles)
	}
	if len(d.HighFanOutFunctions) != 1 {
		t.Errorf("HighFanOutFunctions = %v, want 1 entry", d.HighFanOutFunctions)
	}
	if len(d.OversizedClasses) != 1 {
		t.Errorf("OversizedClasses = %v, want 1 entry", d.OversizedClasses)
	}
	if len(d.UndocumentedPublic) != 0 {
		t.Errorf("UndocumentedPublic = %v, want none", d.UndocumentedPublic)
	}
	// 3 debt items over 5 entities.
	if d.DebtItems != 3 || d.TotalItems != 5 {
		t.Errorf("DebtItems/TotalItems = %d/%d, want 3/5", d.DebtItems, d.TotalItems)
	}
	if d.DebtRatio != 0.6 {
		t.Errorf("DebtRatio = %f, want 0.6", d.DebtRatio)
	}
}

func TestHealthScore(t *testing.T) {
	if got := HealthScore(100, 1, 1, 0, 0); got != 1.0 {
		t.Errorf("HealthScore(perfect) = %f, want 1.0", got)
	}
	if got := HealthScore(0, 0, 0, 1, 1); got != 0.0 {
		t.Errorf("HealthScore(worst) = %f, want 0.0", got)
	}
	got := HealthScore(50, 0.5, 0.5, 0.5, 0.5)
	if got < 0.49 || got > 0.51 {
		t.Errorf("HealthScore(middle) = %f, want 0.5", got)
	}
}

func TestGradeFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradeAPlus},
		{92, GradeA},
		{72, GradeBMinus},
		{62, GradeC},
		{45, GradeF},
	}
	for _, tt := range tests {
		if got := GradeFromScore(tt.score); got != tt.want {
			t.Errorf("GradeFromScore(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSummary_CustomWeights(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{{Path: "a.py", Source: "x = 1\n"}},
		Functions: []codegraph.Function{
			{Name: "f", Filepath: "a.py", Source: "def f():\n    pass\n", Docstring: "doc",
				Usages: []codegraph.Ref{{Name: "g"}}},
		},
	}

	// All weight on documentation, which is fully covered here.
	calc, _ := NewCalculator(snap, WithWeights(Weights{Documentation: 1}))
	s := calc.Summary()
	if s.Error != "" {
		t.Fatalf("Summary failed: %s", s.Error)
	}
	if s.HealthScore != 1.0 {
		t.Errorf("HealthScore = %f, want 1.0 with all weight on documentation", s.HealthScore)
	}

	calc, _ = NewCalculator(snap, WithWeights(Weights{Debt: 1}))
	s = calc.Summary()
	if s.HealthScore != 1-s.DebtRatio {
		t.Errorf("HealthScore = %f, want %f with all weight on debt", s.HealthScore, 1-s.DebtRatio)
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	total := w.Maintainability + w.Documentation + w.TestCoverage + w.DeadCode + w.Debt
	if total < 0.999 || total > 1.001 {
		t.Errorf("default weights sum to %f, want 1", total)
	}
}

func TestDebtIndicators_CustomThresholds(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{{Path: "a.py", Source: "x = 1\ny = 2\nz = 3\n"}},
		Functions: []codegraph.Function{
			{Name: "f", Filepath: "a.py", Docstring: "doc",
				Dependencies: []codegraph.Ref{{Name: "os"}, {Name: "sys"}}},
		},
	}

	calc, _ := NewCalculator(snap)
	if d := calc.DebtIndicators(); d.DebtItems != 0 {
		t.Fatalf("DebtItems = %d under default thresholds, want 0", d.DebtItems)
	}

	calc, _ = NewCalculator(snap, WithDebtThresholds(DebtThresholds{
		FileLines:    2,
		FunctionDeps: 1,
		ClassMethods: 20,
	}))
	d := calc.DebtIndicators()
	if len(d.LargeFiles) != 1 {
		t.Errorf("LargeFiles = %v, want a.py flagged", d.LargeFiles)
	}
	if len(d.HighFanOutFunctions) != 1 {
		t.Errorf("HighFanOutFunctions = %v, want f flagged", d.HighFanOutFunctions)
	}
	if d.DebtItems != 2 {
		t.Errorf("DebtItems = %d, want 2", d.DebtItems)
	}
}
