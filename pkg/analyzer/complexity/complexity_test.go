package complexity

import (
	"context"
	"testing"

	"github.com/mgraile/augur/pkg/codegraph"
)

func TestNew(t *testing.T) {
	a := New()
	if a == nil {
		t.Fatal("New() returned nil")
	}
}

func TestCyclomatic_EmptySource(t *testing.T) {
	e := NewEstimator()
	fn := &codegraph.Function{Name: "empty", Source: ""}
	if got := e.Cyclomatic(fn); got != 1 {
		t.Errorf("Cyclomatic(empty) = %d, want 1", got)
	}
}

func TestCyclomatic_NoBranches(t *testing.T) {
	e := NewEstimator()
	fn := &codegraph.Function{
		Name:   "straight",
		Source: "def straight(x):\n    return x + 1\n",
	}
	if got := e.Cyclomatic(fn); got != 1 {
		t.Errorf("Cyclomatic(straight) = %d, want 1", got)
	}
}

func TestCyclomatic_IfElifElse(t *testing.T) {
	e := NewEstimator()
	fn := &codegraph.Function{
		Name: "branchy",
		Source: `def branchy(x):
    if x > 0:
        return 1
    elif x < 0:
        return -1
    else:
        return 0
`,
	}
	// 1 + if + elif + else
	if got := e.Cyclomatic(fn); got != 4 {
		t.Errorf("Cyclomatic(if/elif/else) = %d, want 4", got)
	}
}

func TestCyclomatic_Monotonic(t *testing.T) {
	e := NewEstimator()
	base := &codegraph.Function{
		Name:   "base",
		Source: "def base(x):\n    if x > 0:\n        return x\n    return 0\n",
	}
	more := &codegraph.Function{
		Name: "more",
		Source: `def more(x):
    if x > 0:
        return x
    while x < 0:
        x += 1
    return 0
`,
	}
	if e.Cyclomatic(more) <= e.Cyclomatic(base) {
		t.Errorf("adding a decision point did not increase complexity: base=%d more=%d",
			e.Cyclomatic(base), e.Cyclomatic(more))
	}
}

func TestCyclomatic_Comprehension(t *testing.T) {
	e := NewEstimator()
	loop := &codegraph.Function{
		Name:   "loop",
		Source: "def loop(xs):\n    for x in xs:\n        print(x)\n",
	}
	comp := &codegraph.Function{
		Name:   "comp",
		Source: "def comp(xs):\n    return [x for x in xs]\n",
	}
	// Both count the for once, statement or comprehension.
	if e.Cyclomatic(loop) != e.Cyclomatic(comp) {
		t.Errorf("loop=%d comp=%d, want equal", e.Cyclomatic(loop), e.Cyclomatic(comp))
	}
}

func TestCognitive(t *testing.T) {
	e := NewEstimator()
	fn := &codegraph.Function{
		Name:         "f",
		Source:       "def f(a, b):\n    return a + b\n",
		Parameters:   []codegraph.Parameter{{Name: "a"}, {Name: "b"}},
		Dependencies: []codegraph.Ref{{Name: "g"}, {Name: "h"}},
	}
	got := e.Cognitive(fn)
	want := 1.0 + 0.5*2 + 0.2*2
	if got != want {
		t.Errorf("Cognitive = %f, want %f", got, want)
	}
}

func TestMaintainabilityIndex_Bounds(t *testing.T) {
	e := NewEstimator()

	cases := []*codegraph.Function{
		{Name: "tiny", Source: "def tiny():\n    pass\n"},
		{Name: "empty", Source: ""},
		{Name: "big", Source: buildBigFunction()},
	}
	for _, fn := range cases {
		mi := e.MaintainabilityIndex(fn)
		if mi < 0 || mi > 100 {
			t.Errorf("MaintainabilityIndex(%s) = %f, want within [0, 100]", fn.Name, mi)
		}
	}
}

func TestMaintainabilityIndex_EmptyNeutral(t *testing.T) {
	e := NewEstimator()
	fn := &codegraph.Function{Name: "empty", Source: ""}
	if got := e.MaintainabilityIndex(fn); got != 50.0 {
		t.Errorf("MaintainabilityIndex(empty) = %f, want 50", got)
	}
}

func buildBigFunction() string {
	src := "def big(x):\n"
	for i := 0; i < 50; i++ {
		src += "    if x > 0:\n        x -= 1\n"
	}
	return src
}

func TestHalstead_Empty(t *testing.T) {
	e := NewEstimator()
	h := e.Halstead(nil)
	if h.Vocabulary != 0 || h.Length != 0 || h.Volume != 0 || h.Difficulty != 0 || h.Effort != 0 {
		t.Errorf("Halstead(nil) = %+v, want all zeros", h)
	}
}

func TestHalstead_CountsCalls(t *testing.T) {
	e := NewEstimator()
	fns := []*codegraph.Function{
		{
			Name:       "f",
			Parameters: []codegraph.Parameter{{Name: "x"}},
			Calls: []codegraph.Call{
				{Callee: "print", Args: []string{"x"}},
				{Callee: "print", Args: []string{"x", "y"}},
				{Callee: "len", Args: []string{"x"}},
			},
		},
	}
	h := e.Halstead(fns)
	if h.DistinctOperators != 2 {
		t.Errorf("DistinctOperators = %d, want 2", h.DistinctOperators)
	}
	if h.TotalOperators != 3 {
		t.Errorf("TotalOperators = %d, want 3", h.TotalOperators)
	}
	if h.Volume <= 0 {
		t.Errorf("Volume = %f, want > 0", h.Volume)
	}
	if h.Effort <= 0 {
		t.Errorf("Effort = %f, want > 0", h.Effort)
	}
}

func TestAnalyze(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{
			{Path: "a.py", Source: "x = 1\n"},
			{Path: "b.py", Source: "y = 2\n"},
		},
		Functions: []codegraph.Function{
			{Name: "f", Filepath: "a.py", Source: "def f(x):\n    if x:\n        return 1\n    return 0\n"},
			{Name: "g", Filepath: "b.py", Source: "def g():\n    pass\n"},
		},
	}

	result, err := New().Analyze(context.Background(), snap)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(result.Files))
	}
	if result.Files[0].Path != "a.py" {
		t.Errorf("Files[0].Path = %s, want a.py (sorted)", result.Files[0].Path)
	}
	if result.Summary.TotalFunctions != 2 {
		t.Errorf("TotalFunctions = %d, want 2", result.Summary.TotalFunctions)
	}
	if result.Summary.MaxCyclomatic != 2 {
		t.Errorf("MaxCyclomatic = %d, want 2", result.Summary.MaxCyclomatic)
	}
}

func TestAnalyze_EmptySnapshot(t *testing.T) {
	result, err := New().Analyze(context.Background(), &codegraph.Snapshot{})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
	if result.Summary.AvgCyclomatic != 0 {
		t.Errorf("AvgCyclomatic = %f, want 0", result.Summary.AvgCyclomatic)
	}
}
