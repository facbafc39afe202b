package engine

import (
	"sort"
	"strings"

	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/codegraph"
)

const (
	maxCoupledFiles          = 10
	maintainabilityThreshold = 50.0
)

var layerKeywords = []struct {
	layer    string
	keywords []string
}{
	{"presentation", []string{"ui", "view", "views", "template", "templates", "frontend", "web", "api", "handler", "handlers", "controller", "controllers", "route", "routes"}},
	{"business", []string{"service", "services", "domain", "logic", "core", "usecase", "usecases", "workflow"}},
	{"data", []string{"model", "models", "repository", "repositories", "db", "database", "dao", "storage", "schema", "migration", "migrations"}},
	{"infrastructure", []string{"util", "utils", "helper", "helpers", "config", "infra", "infrastructure", "middleware", "adapter", "adapters", "client", "clients"}},
}

// classifyLayers buckets files into architectural layers by path
// segment keywords. The first matching layer wins; unmatched files
// land in Other.
func (e *Engine) classifyLayers() LayerCounts {
	var lc LayerCounts
	for _, f := range e.snap.Files {
		switch classifyLayer(f.Path) {
		case "presentation":
			lc.Presentation++
		case "business":
			lc.Business++
		case "data":
			lc.Data++
		case "infrastructure":
			lc.Infrastructure++
		default:
			lc.Other++
		}
	}
	return lc
}

func classifyLayer(path string) string {
	segments := strings.FieldsFunc(strings.ToLower(path), func(r rune) bool {
		return r == '/' || r == '\\' || r == '.' || r == '_' || r == '-'
	})
	for _, lk := range layerKeywords {
		for _, seg := range segments {
			for _, kw := range lk.keywords {
				if seg == kw {
					return lk.layer
				}
			}
		}
	}
	return "other"
}

// moduleCohesion measures per-file symbol-relationship density: the
// number of intra-file symbol_usage edges relative to the symbols the
// file defines.
func (e *Engine) moduleCohesion() ([]FileCohesion, float64) {
	fileOf := make(map[string]string)
	symbolsIn := make(map[string]int)
	for _, sym := range e.snap.Symbols {
		if sym.Filepath == "" {
			continue
		}
		if _, ok := fileOf[sym.Name]; !ok {
			fileOf[sym.Name] = sym.Filepath
		}
		symbolsIn[sym.Filepath]++
	}
	for i := range e.snap.Functions {
		fn := &e.snap.Functions[i]
		if _, ok := fileOf[fn.Name]; !ok && fn.Filepath != "" {
			fileOf[fn.Name] = fn.Filepath
			symbolsIn[fn.Filepath]++
		}
	}
	for i := range e.snap.Classes {
		cls := &e.snap.Classes[i]
		if _, ok := fileOf[cls.Name]; !ok && cls.Filepath != "" {
			fileOf[cls.Name] = cls.Filepath
			symbolsIn[cls.Filepath]++
		}
	}

	intra := make(map[string]int)
	for _, edge := range e.snap.Edges {
		if edge.Kind != codegraph.EdgeSymbolUsage {
			continue
		}
		from, ok := fileOf[edge.From]
		if !ok {
			continue
		}
		if to, ok := fileOf[edge.To]; ok && from == to {
			intra[from]++
		}
	}

	var (
		out   []FileCohesion
		total float64
	)
	for _, f := range e.snap.Files {
		n := symbolsIn[f.Path]
		density := 0.0
		if n > 0 {
			density = float64(intra[f.Path]) / float64(n)
		}
		out = append(out, FileCohesion{Path: f.Path, Symbols: n, Density: density})
		total += density
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	avg := 0.0
	if len(out) > 0 {
		avg = total / float64(len(out))
	}
	return out, avg
}

// mostCoupled returns the n files with the highest combined afferent
// and efferent coupling.
func mostCoupled(a *cohesion.Analysis, n int) []cohesion.FileResult {
	if a == nil {
		return nil
	}
	files := make([]cohesion.FileResult, len(a.Files))
	copy(files, a.Files)
	sort.Slice(files, func(i, j int) bool {
		ci := files[i].Afferent + files[i].Efferent
		cj := files[j].Afferent + files[j].Efferent
		if ci != cj {
			return ci > cj
		}
		return files[i].Path < files[j].Path
	})
	if len(files) > n {
		files = files[:n]
	}
	return files
}

// maintainability aggregates the maintainability index and flags files
// scoring below the attention threshold.
func (e *Engine) maintainability(cx *complexity.Analysis) MaintainabilityAggregate {
	agg := MaintainabilityAggregate{Average: cx.Summary.AvgMaintainability}
	for _, f := range cx.Files {
		if len(f.Functions) > 0 && f.AvgMaintainability < e.thresholds.Maintainability {
			agg.NeedsAttention = append(agg.NeedsAttention, f.Path)
		}
	}
	sort.Strings(agg.NeedsAttention)
	return agg
}
