// Package codegraph defines the read-only code graph snapshot that all
// analyzers consume. The graph is produced externally (by a parser or
// indexer); this package never constructs graph nodes from source text,
// it only loads, validates, and queries them.
//
// Graph richness varies by source language, so every attribute is
// optional: absent attributes decode to zero values and every accessor
// is defined for the zero value. Analyzers must not assume any field is
// populated.
package codegraph

import "strings"

// SymbolKind partitions symbols by what they name.
type SymbolKind string

const (
	SymbolClass     SymbolKind = "class"
	SymbolFunction  SymbolKind = "function"
	SymbolGlobalVar SymbolKind = "global_var"
	SymbolInterface SymbolKind = "interface"
)

// EdgeKind classifies graph edges.
type EdgeKind string

const (
	EdgeSymbolUsage      EdgeKind = "symbol_usage"
	EdgeImportResolution EdgeKind = "import_symbol_resolution"
	EdgeExport           EdgeKind = "export"
)

// Ref is a reference to or from an entity: an outgoing dependency, an
// incoming usage, or a call site.
type Ref struct {
	Name     string `json:"name"`
	Filepath string `json:"filepath,omitempty"`
}

// Parameter is a formal parameter of a function or method.
type Parameter struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// Call is a call made from inside a function body, with the raw source
// text of its arguments. Callee names and argument text feed the
// Halstead operator/operand approximation.
type Call struct {
	Callee string   `json:"callee"`
	Args   []string `json:"args,omitempty"`
}

// Function is a function or method node.
type Function struct {
	Name         string      `json:"name"`
	Filepath     string      `json:"filepath,omitempty"`
	Source       string      `json:"source,omitempty"`
	Parameters   []Parameter `json:"parameters,omitempty"`
	ReturnType   string      `json:"return_type,omitempty"`
	Docstring    string      `json:"docstring,omitempty"`
	Decorators   []string    `json:"decorators,omitempty"`
	IsAsync      bool        `json:"is_async,omitempty"`
	Dependencies []Ref       `json:"dependencies,omitempty"`
	Usages       []Ref       `json:"usages,omitempty"`
	CallSites    []Ref       `json:"call_sites,omitempty"`
	Calls        []Call      `json:"calls,omitempty"`
}

// Identity returns the stable identity of the function: qualified name
// plus filepath.
func (f *Function) Identity() string {
	return f.Filepath + "::" + f.Name
}

// LineCount returns the number of source lines, 0 for empty source.
func (f *Function) LineCount() int {
	return countLines(f.Source)
}

// HasDocstring reports whether the function carries documentation.
func (f *Function) HasDocstring() bool {
	return strings.TrimSpace(f.Docstring) != ""
}

// IsPublic reports whether the function name follows the public naming
// convention (no leading underscore).
func (f *Function) IsPublic() bool {
	return f.Name != "" && !strings.HasPrefix(f.Name, "_")
}

// IsMagic reports whether the function is a dunder method (__x__).
func (f *Function) IsMagic() bool {
	return strings.HasPrefix(f.Name, "__") && strings.HasSuffix(f.Name, "__")
}

// IsAbstract reports whether any decorator tags the function abstract.
func (f *Function) IsAbstract() bool {
	for _, d := range f.Decorators {
		if strings.Contains(d, "abstractmethod") || strings.Contains(d, "abstract") {
			return true
		}
	}
	return false
}

// Class is a class node with its structural children.
type Class struct {
	Name         string     `json:"name"`
	Filepath     string     `json:"filepath,omitempty"`
	Source       string     `json:"source,omitempty"`
	Docstring    string     `json:"docstring,omitempty"`
	Decorators   []string   `json:"decorators,omitempty"`
	Superclasses []string   `json:"superclasses,omitempty"`
	Methods      []Function `json:"methods,omitempty"`
	Attributes   []string   `json:"attributes,omitempty"`
	Dependencies []Ref      `json:"dependencies,omitempty"`
	Usages       []Ref      `json:"usages,omitempty"`
}

// Identity returns the stable identity of the class.
func (c *Class) Identity() string {
	return c.Filepath + "::" + c.Name
}

// HasDocstring reports whether the class carries documentation.
func (c *Class) HasDocstring() bool {
	return strings.TrimSpace(c.Docstring) != ""
}

// File is a source file node.
type File struct {
	Path   string `json:"path"`
	Source string `json:"source,omitempty"`
	Lines  int    `json:"lines,omitempty"`
}

// Identity returns the stable identity of the file.
func (f *File) Identity() string {
	return f.Path
}

// LineCount returns the explicit line count if present, otherwise the
// count derived from source text.
func (f *File) LineCount() int {
	if f.Lines > 0 {
		return f.Lines
	}
	return countLines(f.Source)
}

// Symbol is a named symbol with its kind.
type Symbol struct {
	Name     string     `json:"name"`
	Filepath string     `json:"filepath,omitempty"`
	Kind     SymbolKind `json:"kind"`
}

// Import is one import statement. Each statement is its own graph edge,
// so a file pair importing twice yields two Import records.
type Import struct {
	FromFile string `json:"from_file"`
	ToFile   string `json:"to_file"`
	Module   string `json:"module,omitempty"`
	Dynamic  bool   `json:"dynamic,omitempty"`
}

// Edge is a typed relationship between two named entities.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
