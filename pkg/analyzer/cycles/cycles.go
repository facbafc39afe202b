// Package cycles finds import cycles between files via strongly
// connected components of the import graph, and classifies cycles that
// mix static and dynamic imports.
package cycles

import (
	"context"
	"sort"

	"github.com/mgraile/augur/pkg/analyzer"
	"github.com/mgraile/augur/pkg/codegraph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Ensure Detector implements analyzer.GraphAnalyzer.
var _ analyzer.GraphAnalyzer[*Analysis] = (*Detector)(nil)

// Detector builds the import graph and finds cycles.
type Detector struct{}

// New creates a new cycle detector.
func New() *Detector {
	return &Detector{}
}

// edgeTally counts static and dynamic imports for an ordered file pair.
type edgeTally struct {
	static  int
	dynamic int
}

// pairKey identifies an ordered file pair.
type pairKey struct {
	from string
	to   string
}

// Find returns all import cycles in the snapshot, sorted by their first
// member so results are deterministic across runs.
func (d *Detector) Find(snap *codegraph.Snapshot) ([]Cycle, error) {
	if snap == nil {
		return nil, codegraph.ErrNilSnapshot
	}

	// One node per file touched by an import; one logical edge per
	// import statement, to_file -> from_file. The tally keeps the
	// multigraph information gonum's simple graph discards.
	g := simple.NewDirectedGraph()
	pathToID := make(map[string]int64)
	idToPath := make(map[int64]string)
	tallies := make(map[pairKey]*edgeTally)

	nodeFor := func(path string) int64 {
		if id, ok := pathToID[path]; ok {
			return id
		}
		id := int64(len(pathToID))
		pathToID[path] = id
		idToPath[id] = path
		g.AddNode(simple.Node(id))
		return id
	}

	for _, imp := range snap.Imports {
		if imp.FromFile == "" || imp.ToFile == "" || imp.FromFile == imp.ToFile {
			continue
		}
		from := nodeFor(imp.ToFile)
		to := nodeFor(imp.FromFile)
		g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})

		key := pairKey{from: imp.ToFile, to: imp.FromFile}
		t := tallies[key]
		if t == nil {
			t = &edgeTally{}
			tallies[key] = t
		}
		if imp.Dynamic {
			t.dynamic++
		} else {
			t.static++
		}
	}

	var cycles []Cycle
	for _, component := range topo.TarjanSCC(g) {
		if len(component) <= 1 {
			continue
		}

		files := make([]string, 0, len(component))
		for _, n := range component {
			files = append(files, idToPath[n.ID()])
		}
		sort.Strings(files)
		cycles = append(cycles, d.buildCycle(files, tallies))
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].Files[0] < cycles[j].Files[0]
	})
	return cycles, nil
}

// buildCycle tallies per-pair import semantics for every ordered pair
// inside the component that has at least one edge.
func (d *Detector) buildCycle(files []string, tallies map[pairKey]*edgeTally) Cycle {
	cycle := Cycle{Files: files}
	for _, from := range files {
		for _, to := range files {
			if from == to {
				continue
			}
			t := tallies[pairKey{from: from, to: to}]
			if t == nil {
				continue
			}
			pair := PairImports{From: from, To: to, Static: t.static, Dynamic: t.dynamic}
			if pair.Mixed() {
				cycle.Problematic = true
			}
			cycle.Pairs = append(cycle.Pairs, pair)
		}
	}
	return cycle
}

// Analyze runs Find and wraps the result with summary statistics.
func (d *Detector) Analyze(ctx context.Context, snap *codegraph.Snapshot) (*Analysis, error) {
	cycles, err := d.Find(snap)
	if err != nil {
		return nil, err
	}

	result := &Analysis{
		Cycles: cycles,
		Summary: Summary{
			TotalFiles:   len(snap.Files),
			TotalImports: len(snap.Imports),
			TotalCycles:  len(cycles),
		},
	}
	for _, c := range cycles {
		if c.Problematic {
			result.Summary.ProblematicCycles++
		}
		if len(c.Files) > result.Summary.LargestCycle {
			result.Summary.LargestCycle = len(c.Files)
		}
	}
	return result, nil
}
