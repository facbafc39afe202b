// Package cohesion computes class cohesion, class coupling, and file
// instability from graph structure and method source text.
package cohesion

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/mgraile/augur/pkg/analyzer"
	"github.com/mgraile/augur/pkg/codegraph"
)

// Ensure Analyzer implements analyzer.GraphAnalyzer.
var _ analyzer.GraphAnalyzer[*Analysis] = (*Analyzer)(nil)

// attrPattern extracts instance-attribute references from method source.
var attrPattern = regexp.MustCompile(`self\.(\w+)`)

// vendorSegments mark filepaths that belong to vendored third-party
// packages rather than the analyzed project.
var vendorSegments = []string{
	"site-packages",
	"node_modules",
	"vendor",
	"dist-packages",
}

// Analyzer computes cohesion and coupling metrics.
type Analyzer struct {
	couplingScale float64
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithCouplingScale sets how many external references drive the
// coupling score from 1 down to 0. Default is 10.
func WithCouplingScale(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.couplingScale = float64(n)
		}
	}
}

// New creates a new cohesion/coupling analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{couplingScale: 10}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ClassCohesion measures how strongly a class's methods share instance
// attributes: the fraction of method pairs that reference at least one
// common attribute. Classes with fewer than two methods are trivially
// cohesive and score 1.0.
func (a *Analyzer) ClassCohesion(cls *codegraph.Class) float64 {
	if len(cls.Methods) <= 1 {
		return 1.0
	}

	attrSets := make([]map[string]bool, len(cls.Methods))
	for i := range cls.Methods {
		attrSets[i] = extractAttrs(cls.Methods[i].Source)
	}

	shared, total := 0, 0
	for i := 0; i < len(attrSets); i++ {
		for j := i + 1; j < len(attrSets); j++ {
			total++
			if intersects(attrSets[i], attrSets[j]) {
				shared++
			}
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(shared) / float64(total)
}

// ClassCoupling scores how tied a class is to code outside the project:
// 1.0 means no external dependencies or usages, decreasing linearly to
// 0 as external references accumulate.
func (a *Analyzer) ClassCoupling(cls *codegraph.Class) float64 {
	external := 0
	for _, ref := range cls.Dependencies {
		if isExternal(ref.Filepath) {
			external++
		}
	}
	for _, ref := range cls.Usages {
		if isExternal(ref.Filepath) {
			external++
		}
	}

	score := 1 - float64(external)/a.couplingScale
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// FileInstability computes Martin's instability metric for a file:
// efferent / (afferent + efferent), or 0 when the file has no coupling
// at all.
func (a *Analyzer) FileInstability(snap *codegraph.Snapshot, path string) float64 {
	afferent := len(snap.ImportersOf(path))
	efferent := len(snap.ImportTargetsOf(path))
	if afferent+efferent == 0 {
		return 0
	}
	return float64(efferent) / float64(afferent+efferent)
}

// Analyze computes cohesion and coupling for every class and file in
// the snapshot.
func (a *Analyzer) Analyze(ctx context.Context, snap *codegraph.Snapshot) (*Analysis, error) {
	if snap == nil {
		return nil, codegraph.ErrNilSnapshot
	}

	tracker := analyzer.TrackerFromContext(ctx)
	if tracker != nil {
		tracker.Add(len(snap.Classes) + len(snap.Files))
	}

	result := &Analysis{
		Classes: make([]ClassResult, 0, len(snap.Classes)),
		Files:   make([]FileResult, 0, len(snap.Files)),
	}

	var totalCohesion, totalCoupling float64
	for i := range snap.Classes {
		cls := &snap.Classes[i]
		cr := ClassResult{
			Name:     cls.Name,
			Filepath: cls.Filepath,
			Methods:  len(cls.Methods),
			Cohesion: a.ClassCohesion(cls),
			Coupling: a.ClassCoupling(cls),
		}
		totalCohesion += cr.Cohesion
		totalCoupling += cr.Coupling
		result.Classes = append(result.Classes, cr)
		if tracker != nil {
			tracker.Tick(cls.Name)
		}
	}

	var totalInstability float64
	for i := range snap.Files {
		path := snap.Files[i].Path
		fr := FileResult{
			Path:     path,
			Afferent: len(snap.ImportersOf(path)),
			Efferent: len(snap.ImportTargetsOf(path)),
		}
		if fr.Afferent+fr.Efferent > 0 {
			fr.Instability = float64(fr.Efferent) / float64(fr.Afferent+fr.Efferent)
		}
		totalInstability += fr.Instability
		result.Files = append(result.Files, fr)
		if tracker != nil {
			tracker.Tick(path)
		}
	}

	sort.Slice(result.Classes, func(i, j int) bool {
		if result.Classes[i].Filepath != result.Classes[j].Filepath {
			return result.Classes[i].Filepath < result.Classes[j].Filepath
		}
		return result.Classes[i].Name < result.Classes[j].Name
	})
	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.Summary = Summary{
		TotalClasses: len(result.Classes),
		TotalFiles:   len(result.Files),
	}
	if n := float64(len(result.Classes)); n > 0 {
		result.Summary.AvgCohesion = totalCohesion / n
		result.Summary.AvgCoupling = totalCoupling / n
	}
	if n := float64(len(result.Files)); n > 0 {
		result.Summary.AvgInstability = totalInstability / n
	}
	return result, nil
}

func extractAttrs(source string) map[string]bool {
	attrs := make(map[string]bool)
	for _, m := range attrPattern.FindAllStringSubmatch(source, -1) {
		attrs[m[1]] = true
	}
	return attrs
}

func intersects(a, b map[string]bool) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

// isExternal reports whether a reference filepath points outside the
// analyzed project: absolute paths and vendored package directories
// are external, relative in-tree paths are internal. An empty filepath
// is internal (the reference could not be resolved to a file at all).
func isExternal(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasPrefix(path, "/") {
		return true
	}
	for _, seg := range vendorSegments {
		if strings.Contains(path, seg+"/") || strings.HasSuffix(path, seg) {
			return true
		}
	}
	return false
}
