package entity

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/mgraile/augur/pkg/codegraph"
)

// entrypointNames are function names that are invoked by a runtime or
// framework rather than by in-graph callers, so zero usages does not
// make them dead.
var entrypointNames = map[string]bool{
	"main":     true,
	"__main__": true,
	"setup":    true,
	"run":      true,
	"handler":  true,
}

// isEntrypoint reports whether a function is reachable from outside the
// graph by convention: named entrypoints, dunder methods, and tests.
func isEntrypoint(fn *codegraph.Function) bool {
	if entrypointNames[fn.Name] || fn.IsMagic() {
		return true
	}
	return strings.HasPrefix(fn.Name, "test_") || strings.HasPrefix(fn.Name, "Test")
}

// DeadCodePercentage estimates the fraction of functions that nothing
// reaches: zero usages, zero call sites, and a non-entrypoint name.
func (c *Calculator) DeadCodePercentage() float64 {
	total := len(c.snap.Functions)
	if total == 0 {
		return 0
	}

	live := roaring.New()
	for i := range c.snap.Functions {
		fn := &c.snap.Functions[i]
		if len(fn.Usages) > 0 || len(fn.CallSites) > 0 || isEntrypoint(fn) {
			live.Add(uint32(i))
		}
	}

	dead := uint64(total) - live.GetCardinality()
	return float64(dead) / float64(total)
}

// DeadFunctions returns the identities of functions counted as dead,
// in snapshot order.
func (c *Calculator) DeadFunctions() []string {
	var out []string
	for i := range c.snap.Functions {
		fn := &c.snap.Functions[i]
		if len(fn.Usages) == 0 && len(fn.CallSites) == 0 && !isEntrypoint(fn) {
			out = append(out, fn.Identity())
		}
	}
	return out
}
