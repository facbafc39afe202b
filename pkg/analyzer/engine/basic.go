package engine

import (
	"fmt"

	"github.com/mgraile/augur/pkg/codegraph"
)

// analyzeBasic collects node and edge counts. It is cheap enough to run
// on every call regardless of level.
func (e *Engine) analyzeBasic() *BasicAnalysis {
	s := e.snap

	symbols := SymbolCounts{
		Classes:    len(s.Classes),
		Functions:  len(s.Functions),
		GlobalVars: len(s.GlobalVars),
		Interfaces: len(s.Interfaces),
	}
	symbols.Total = symbols.Classes + symbols.Functions + symbols.GlobalVars + symbols.Interfaces

	byKind := s.EdgeCounts()
	edges := EdgeCounts{
		SymbolUsage:      byKind[codegraph.EdgeSymbolUsage],
		ImportResolution: byKind[codegraph.EdgeImportResolution],
		Export:           byKind[codegraph.EdgeExport],
	}
	edges.Total = len(s.Edges)

	b := &BasicAnalysis{
		Files:           len(s.Files),
		Imports:         len(s.Imports),
		ExternalModules: len(s.ExternalModules),
		Lines:           s.TotalLines(),
		Symbols:         symbols,
		Edges:           edges,
	}
	b.Summary = fmt.Sprintf(
		"%d files, %d lines, %d symbols (%d classes, %d functions), %d imports, %d external modules",
		b.Files, b.Lines, symbols.Total, symbols.Classes, symbols.Functions,
		b.Imports, b.ExternalModules,
	)
	return b
}
