package cycles

// PairImports tallies import statements between an ordered file pair
// inside a cycle, split by static and dynamic import semantics.
type PairImports struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Static  int    `json:"static"`
	Dynamic int    `json:"dynamic"`
}

// Mixed reports whether the pair carries both static and dynamic
// imports. Mixed semantics inside a cycle risk order-dependent runtime
// import failures.
func (p PairImports) Mixed() bool {
	return p.Static > 0 && p.Dynamic > 0
}

// Cycle is a strongly connected component of the import graph with more
// than one file. Files and Pairs are sorted so output is deterministic.
type Cycle struct {
	Files       []string      `json:"files"`
	Pairs       []PairImports `json:"pairs,omitempty"`
	Problematic bool          `json:"problematic"`
}

// Contains reports whether the cycle includes the given file.
func (c *Cycle) Contains(path string) bool {
	for _, f := range c.Files {
		if f == path {
			return true
		}
	}
	return false
}

// Summary provides aggregate cycle statistics.
type Summary struct {
	TotalFiles        int `json:"total_files"`
	TotalImports      int `json:"total_imports"`
	TotalCycles       int `json:"total_cycles"`
	ProblematicCycles int `json:"problematic_cycles"`
	LargestCycle      int `json:"largest_cycle"`
}

// Analysis is the full cycle-detection result.
type Analysis struct {
	Cycles  []Cycle `json:"cycles"`
	Summary Summary `json:"summary"`
}
