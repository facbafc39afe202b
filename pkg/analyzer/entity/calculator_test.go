package entity

import (
	"testing"

	"github.com/mgraile/augur/pkg/codegraph"
)

func TestNewCalculator_NilSnapshot(t *testing.T) {
	if _, err := NewCalculator(nil); err == nil {
		t.Error("NewCalculator(nil) should return an error")
	}
}

func TestFunctionMetrics(t *testing.T) {
	snap := &codegraph.Snapshot{}
	calc, err := NewCalculator(snap)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}

	fn := &codegraph.Function{
		Name:     "transfer",
		Filepath: "bank.py",
		Source: `def transfer(self, amount: int) -> bool:
    """Move money."""
    if amount <= 0:
        return False
    return True
`,
		Docstring:  "Move money.",
		Parameters: []codegraph.Parameter{{Name: "amount", Type: "int"}},
		ReturnType: "bool",
		CallSites:  []codegraph.Ref{{Name: "handler"}, {Name: "api"}},
		Usages:     []codegraph.Ref{{Name: "handler"}},
	}

	m := calc.FunctionMetrics(fn)
	if m.ComputationError != "" {
		t.Fatalf("unexpected computation error: %s", m.ComputationError)
	}
	if m.ReturnStatements != 2 {
		t.Errorf("ReturnStatements = %d, want 2", m.ReturnStatements)
	}
	if m.CallSites != 2 {
		t.Errorf("CallSites = %d, want 2", m.CallSites)
	}
	// Docstring plus fully typed params and return.
	if m.DocCoverage != 1.0 {
		t.Errorf("DocCoverage = %f, want 1.0", m.DocCoverage)
	}
	if m.ImpactScore != 2.5 {
		t.Errorf("ImpactScore = %f, want 2.5", m.ImpactScore)
	}
}

func TestFunctionMetrics_Memoized(t *testing.T) {
	calc, _ := NewCalculator(&codegraph.Snapshot{})
	fn := &codegraph.Function{Name: "f", Filepath: "a.py", Source: "def f():\n    pass\n"}

	first := calc.FunctionMetrics(fn)
	second := calc.FunctionMetrics(fn)
	if first != second {
		t.Error("repeated FunctionMetrics calls should return the memoized record")
	}

	calc.Invalidate()
	third := calc.FunctionMetrics(fn)
	if third == first {
		t.Error("Invalidate should drop the memoized record")
	}
}

func TestFunctionDocCoverage_Untyped(t *testing.T) {
	fn := &codegraph.Function{
		Name:       "f",
		Parameters: []codegraph.Parameter{{Name: "a"}, {Name: "b", Type: "int"}},
	}
	got := functionDocCoverage(fn)
	// No docstring, half the params typed, no return type.
	if got != 0.25 {
		t.Errorf("functionDocCoverage = %f, want 0.25", got)
	}
}

func TestFunctionTestCoverage(t *testing.T) {
	snap := &codegraph.Snapshot{
		Functions: []codegraph.Function{
			{Name: "parse", Filepath: "parser.py"},
			{Name: "test_parse_empty", Filepath: "test_parser.py"},
			{Name: "test_parse_nested", Filepath: "test_parser.py"},
		},
		Classes: []codegraph.Class{
			{Name: "TestParse", Filepath: "test_parser.py"},
		},
	}
	calc, _ := NewCalculator(snap)

	m := calc.FunctionMetrics(&snap.Functions[0])
	// Two test_ functions (0.3 each) and one Test class (0.2).
	if m.TestCoverage < 0.79 || m.TestCoverage > 0.81 {
		t.Errorf("TestCoverage = %f, want 0.8", m.TestCoverage)
	}
}

func TestClassMetrics(t *testing.T) {
	snap := &codegraph.Snapshot{}
	calc, _ := NewCalculator(snap)

	cls := &codegraph.Class{
		Name:         "Account",
		Filepath:     "bank.py",
		Superclasses: []string{"Base"},
		Attributes:   []string{"balance", "owner"},
		Methods: []codegraph.Function{
			{Name: "__init__", Source: "def __init__(self):\n    self.balance = 0\n"},
			{Name: "deposit", Source: "def deposit(self, n):\n    self.balance += n\n"},
			{Name: "_audit", Source: "def _audit(self):\n    return self.balance\n"},
			{Name: "close", Source: "def close(self):\n    self.balance = 0\n", Decorators: []string{"abstractmethod"}},
		},
	}

	m := calc.ClassMetrics(cls)
	if m.ComputationError != "" {
		t.Fatalf("unexpected computation error: %s", m.ComputationError)
	}
	if m.Methods != 4 {
		t.Errorf("Methods = %d, want 4", m.Methods)
	}
	if m.MagicMethods != 1 {
		t.Errorf("MagicMethods = %d, want 1", m.MagicMethods)
	}
	if m.PrivateMethods != 1 {
		t.Errorf("PrivateMethods = %d, want 1", m.PrivateMethods)
	}
	if m.PublicMethods != 2 {
		t.Errorf("PublicMethods = %d, want 2", m.PublicMethods)
	}
	if m.AbstractMethods != 1 {
		t.Errorf("AbstractMethods = %d, want 1", m.AbstractMethods)
	}
	if m.InheritanceDepth != 1 {
		t.Errorf("InheritanceDepth = %d, want 1", m.InheritanceDepth)
	}
	// All methods share self.balance.
	if m.Cohesion != 1.0 {
		t.Errorf("Cohesion = %f, want 1.0", m.Cohesion)
	}
}

func TestFileMetrics(t *testing.T) {
	snap := &codegraph.Snapshot{
		Files: []codegraph.File{
			{Path: "bank.py", Source: "line1\nline2\nline3\n"},
			{Path: "test_bank.py", Source: "t\n"},
		},
		Functions: []codegraph.Function{
			{Name: "f", Filepath: "bank.py", Source: "def f():\n    pass\n", Docstring: "doc"},
			{Name: "g", Filepath: "bank.py", Source: "def g():\n    pass\n"},
		},
	}
	calc, _ := NewCalculator(snap)

	m := calc.FileMetrics(&snap.Files[0])
	if m.Functions != 2 {
		t.Errorf("Functions = %d, want 2", m.Functions)
	}
	if m.IsTestFile {
		t.Error("bank.py should not be a test file")
	}
	if m.DocCoverage != 0.5 {
		t.Errorf("DocCoverage = %f, want 0.5", m.DocCoverage)
	}
	// test_bank.py is a conventional counterpart.
	if m.TestCoverage != 0.8 {
		t.Errorf("TestCoverage = %f, want 0.8", m.TestCoverage)
	}

	tm := calc.FileMetrics(&snap.Files[1])
	if !tm.IsTestFile {
		t.Error("test_bank.py should be a test file")
	}
}

func TestFailures_Empty(t *testing.T) {
	calc, _ := NewCalculator(&codegraph.Snapshot{})
	if len(calc.Failures()) != 0 {
		t.Errorf("Failures() = %v, want empty", calc.Failures())
	}
}
