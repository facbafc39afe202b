package cycles

import (
	"context"
	"testing"

	"github.com/mgraile/augur/pkg/codegraph"
)

func imp(from, to string, dynamic bool) codegraph.Import {
	return codegraph.Import{FromFile: from, ToFile: to, Dynamic: dynamic}
}

func TestFind_NoCycles(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("a.py", "b.py", false),
			imp("b.py", "c.py", false),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 0 {
		t.Errorf("len(cycles) = %d, want 0", len(cycles))
	}
}

func TestFind_ThreeFileCycle(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("a.py", "b.py", false),
			imp("b.py", "c.py", false),
			imp("c.py", "a.py", false),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("len(cycles) = %d, want 1", len(cycles))
	}
	c := cycles[0]
	if len(c.Files) != 3 {
		t.Errorf("len(Files) = %d, want 3", len(c.Files))
	}
	for i, want := range []string{"a.py", "b.py", "c.py"} {
		if c.Files[i] != want {
			t.Errorf("Files[%d] = %s, want %s (sorted)", i, c.Files[i], want)
		}
	}
	if c.Problematic {
		t.Error("all-static cycle should not be problematic")
	}
}

func TestFind_MixedImportsProblematic(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("a.py", "b.py", false),
			imp("a.py", "b.py", true),
			imp("b.py", "a.py", false),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("len(cycles) = %d, want 1", len(cycles))
	}
	if !cycles[0].Problematic {
		t.Error("cycle with static+dynamic imports on the same pair should be problematic")
	}
}

func TestFind_DynamicOnlyNotProblematic(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("a.py", "b.py", true),
			imp("b.py", "a.py", true),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("len(cycles) = %d, want 1", len(cycles))
	}
	if cycles[0].Problematic {
		t.Error("dynamic-only cycle should not be problematic")
	}
}

func TestFind_IgnoresSelfAndEmpty(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("a.py", "a.py", false),
			imp("", "b.py", false),
			imp("c.py", "", false),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 0 {
		t.Errorf("len(cycles) = %d, want 0", len(cycles))
	}
}

func TestFind_MultipleCyclesSorted(t *testing.T) {
	snap := &codegraph.Snapshot{
		Imports: []codegraph.Import{
			imp("x.py", "y.py", false),
			imp("y.py", "x.py", false),
			imp("a.py", "b.py", false),
			imp("b.py", "a.py", false),
		},
	}
	cycles, err := New().Find(snap)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(cycles) != 2 {
		t.Fatalf("len(cycles) = %d, want 2", len(cycles))
	}
	if cycles[0].Files[0] != "a.py" || cycles[1].Files[0] != "x.py" {
		t.Errorf("cycles not ordered by first file: %v, %v", cycles[0].Files, cycles[1].Files)
	}
}

func TestFind_NilSnapshot(t *testing.T) {
	if _, err := New().Find(nil); err == nil {
		t.Error("Find(nil) should return an error")
	}
}

func TestAnalyze_Summary(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{{Path: "a.py"}, {Path: "b.py"}},
		Imports: []codegraph.Import{
			imp("a.py", "b.py", false),
			imp("a.py", "b.py", true),
			imp("b.py", "a.py", false),
		},
	}
	result, err := New().Analyze(context.Background(), snap)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	s := result.Summary
	if s.TotalFiles != 2 || s.TotalImports != 3 {
		t.Errorf("Summary counts = %+v, want 2 files and 3 imports", s)
	}
	if s.TotalCycles != 1 || s.ProblematicCycles != 1 || s.LargestCycle != 2 {
		t.Errorf("Summary cycles = %+v, want 1/1/2", s)
	}
}
