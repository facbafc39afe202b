package codegraph

import (
	"sort"
	"strings"
)

// Snapshot is an immutable view of a code graph at a point in time.
// Analyzers treat it as read-only; mutating it between analyses without
// constructing fresh calculators yields stale cached metrics.
type Snapshot struct {
	Files           []File     `json:"files,omitempty"`
	Functions       []Function `json:"functions,omitempty"`
	Classes         []Class    `json:"classes,omitempty"`
	Symbols         []Symbol   `json:"symbols,omitempty"`
	Imports         []Import   `json:"imports,omitempty"`
	GlobalVars      []Symbol   `json:"global_vars,omitempty"`
	Interfaces      []Symbol   `json:"interfaces,omitempty"`
	ExternalModules []string   `json:"external_modules,omitempty"`
	Edges           []Edge     `json:"edges,omitempty"`
}

// FunctionsIn returns the functions defined in the given file.
func (s *Snapshot) FunctionsIn(path string) []*Function {
	var out []*Function
	for i := range s.Functions {
		if s.Functions[i].Filepath == path {
			out = append(out, &s.Functions[i])
		}
	}
	return out
}

// ClassesIn returns the classes defined in the given file.
func (s *Snapshot) ClassesIn(path string) []*Class {
	var out []*Class
	for i := range s.Classes {
		if s.Classes[i].Filepath == path {
			out = append(out, &s.Classes[i])
		}
	}
	return out
}

// FileByPath returns the file node with the given path, or nil.
func (s *Snapshot) FileByPath(path string) *File {
	for i := range s.Files {
		if s.Files[i].Path == path {
			return &s.Files[i]
		}
	}
	return nil
}

// ImportsOf returns imports whose importing file is path.
func (s *Snapshot) ImportsOf(path string) []Import {
	var out []Import
	for _, imp := range s.Imports {
		if imp.FromFile == path {
			out = append(out, imp)
		}
	}
	return out
}

// ImportersOf returns the distinct files that import path.
func (s *Snapshot) ImportersOf(path string) []string {
	seen := make(map[string]bool)
	for _, imp := range s.Imports {
		if imp.ToFile == path && imp.FromFile != path {
			seen[imp.FromFile] = true
		}
	}
	return sortedKeys(seen)
}

// ImportTargetsOf returns the distinct files that path imports.
func (s *Snapshot) ImportTargetsOf(path string) []string {
	seen := make(map[string]bool)
	for _, imp := range s.Imports {
		if imp.FromFile == path && imp.ToFile != path && imp.ToFile != "" {
			seen[imp.ToFile] = true
		}
	}
	return sortedKeys(seen)
}

// TotalLines sums line counts across all files.
func (s *Snapshot) TotalLines() int {
	total := 0
	for i := range s.Files {
		total += s.Files[i].LineCount()
	}
	return total
}

// EdgeCounts tallies edges by kind.
func (s *Snapshot) EdgeCounts() map[EdgeKind]int {
	counts := make(map[EdgeKind]int)
	for _, e := range s.Edges {
		counts[e.Kind]++
	}
	return counts
}

// IsTestFile reports whether a path looks like a test file by naming
// convention.
func IsTestFile(path string) bool {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}
	return strings.HasPrefix(base, "test_") ||
		strings.HasSuffix(base, "_test.py") ||
		strings.HasSuffix(base, "_test.go") ||
		strings.HasSuffix(base, ".test.ts") ||
		strings.HasSuffix(base, ".test.js") ||
		strings.HasSuffix(base, ".spec.ts") ||
		strings.HasSuffix(base, ".spec.js") ||
		strings.Contains(path, "/test/") ||
		strings.Contains(path, "/tests/") ||
		strings.Contains(path, "/__tests__/")
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
