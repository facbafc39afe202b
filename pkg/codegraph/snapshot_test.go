package codegraph

import "testing"

func testSnapshot() *Snapshot {
	return &Snapshot{
		Files: []File{
			{Path: "a.py", Source: "one\ntwo\n"},
			{Path: "b.py", Lines: 5},
		},
		Functions: []Function{
			{Name: "f", Filepath: "a.py"},
			{Name: "g", Filepath: "a.py"},
			{Name: "h", Filepath: "b.py"},
		},
		Classes: []Class{
			{Name: "C", Filepath: "b.py"},
		},
		Imports: []Import{
			{FromFile: "a.py", ToFile: "b.py"},
			{FromFile: "a.py", ToFile: "b.py", Dynamic: true},
			{FromFile: "a.py", ToFile: "a.py"},
		},
		Edges: []Edge{
			{From: "f", To: "g", Kind: EdgeSymbolUsage},
			{From: "b.py", To: "a.py", Kind: EdgeImportResolution},
		},
	}
}

func TestFunctionsIn(t *testing.T) {
	snap := testSnapshot()
	fns := snap.FunctionsIn("a.py")
	if len(fns) != 2 {
		t.Errorf("len(FunctionsIn(a.py)) = %d, want 2", len(fns))
	}
	if len(snap.FunctionsIn("missing.py")) != 0 {
		t.Error("FunctionsIn(missing) should be empty")
	}
}

func TestImportersAndImportTargets(t *testing.T) {
	snap := testSnapshot()

	importers := snap.ImportersOf("b.py")
	if len(importers) != 1 || importers[0] != "a.py" {
		t.Errorf("ImportersOf(b.py) = %v, want [a.py]", importers)
	}

	// The self-import and the duplicate pair are both collapsed.
	imported := snap.ImportTargetsOf("a.py")
	if len(imported) != 1 || imported[0] != "b.py" {
		t.Errorf("ImportTargetsOf(a.py) = %v, want [b.py]", imported)
	}
}

func TestTotalLines(t *testing.T) {
	snap := testSnapshot()
	// a.py has 2 source lines, b.py declares 5.
	if got := snap.TotalLines(); got != 7 {
		t.Errorf("TotalLines = %d, want 7", got)
	}
}

func TestEdgeCounts(t *testing.T) {
	counts := testSnapshot().EdgeCounts()
	if counts[EdgeSymbolUsage] != 1 || counts[EdgeImportResolution] != 1 || counts[EdgeExport] != 0 {
		t.Errorf("EdgeCounts = %v", counts)
	}
}

func TestFunctionIdentity(t *testing.T) {
	fn := &Function{Name: "f", Filepath: "a.py"}
	if fn.Identity() != "a.py::f" {
		t.Errorf("Identity = %s, want a.py::f", fn.Identity())
	}
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"test_app.py", true},
		{"pkg/app_test.go", true},
		{"src/widget.spec.ts", true},
		{"project/tests/helper.py", true},
		{"testimony.py", false},
		{"app.py", false},
	}
	for _, tt := range tests {
		if got := IsTestFile(tt.path); got != tt.want {
			t.Errorf("IsTestFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
