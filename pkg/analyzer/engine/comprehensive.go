package engine

import (
	"context"
	"regexp"
	"sort"

	"github.com/mgraile/augur/pkg/stats"
)

const topImportedModules = 10

var (
	snakeCasePattern = regexp.MustCompile(`^_*[a-z][a-z0-9_]*$`)
	camelCasePattern = regexp.MustCompile(`^_*[A-Z][a-zA-Z0-9]*$`)
)

func (e *Engine) analyzeComprehensive(ctx context.Context) *ComprehensiveAnalysis {
	c := &ComprehensiveAnalysis{
		MostImported:     e.mostImportedModules(),
		FileDependencies: e.fileDependencies(),
		Naming:           e.namingConsistency(),
	}
	c.AvgComplexity, c.Distributions = e.complexityDistributions()
	return c
}

// mostImportedModules ranks modules by import frequency and keeps the
// top ten. Ties break on module name for deterministic output.
func (e *Engine) mostImportedModules() []ModuleCount {
	counts := make(map[string]int)
	for _, imp := range e.snap.Imports {
		name := imp.Module
		if name == "" {
			name = imp.ToFile
		}
		if name == "" {
			continue
		}
		counts[name]++
	}

	out := make([]ModuleCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, ModuleCount{Module: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Module < out[j].Module
	})
	if len(out) > topImportedModules {
		out = out[:topImportedModules]
	}
	return out
}

// fileDependencies counts distinct efferent dependencies per file,
// heaviest first.
func (e *Engine) fileDependencies() []FileDependencies {
	out := make([]FileDependencies, 0, len(e.snap.Files))
	for _, f := range e.snap.Files {
		out = append(out, FileDependencies{
			Path:         f.Path,
			Dependencies: len(e.snap.ImportTargetsOf(f.Path)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dependencies != out[j].Dependencies {
			return out[i].Dependencies > out[j].Dependencies
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// namingConsistency measures the fraction of functions named in
// snake_case and classes named in CamelCase. An empty population is
// perfectly consistent.
func (e *Engine) namingConsistency() NamingConsistency {
	nc := NamingConsistency{SnakeCaseFunctions: 1.0, CamelCaseClasses: 1.0}

	if n := len(e.snap.Functions); n > 0 {
		matched := 0
		for i := range e.snap.Functions {
			if snakeCasePattern.MatchString(e.snap.Functions[i].Name) {
				matched++
			}
		}
		nc.SnakeCaseFunctions = float64(matched) / float64(n)
	}
	if n := len(e.snap.Classes); n > 0 {
		matched := 0
		for i := range e.snap.Classes {
			if camelCasePattern.MatchString(e.snap.Classes[i].Name) {
				matched++
			}
		}
		nc.CamelCaseClasses = float64(matched) / float64(n)
	}
	return nc
}

// complexityDistributions builds cyclomatic percentile distributions at
// the function, class, and file level, plus the overall average.
func (e *Engine) complexityDistributions() (float64, ComplexityDistributions) {
	var fnValues []float64
	for i := range e.snap.Functions {
		m := e.calc.FunctionMetrics(&e.snap.Functions[i])
		fnValues = append(fnValues, float64(m.Cyclomatic))
	}

	var classValues []float64
	for i := range e.snap.Classes {
		cls := &e.snap.Classes[i]
		if len(cls.Methods) == 0 {
			classValues = append(classValues, 0)
			continue
		}
		total := 0.0
		for j := range cls.Methods {
			total += float64(e.calc.FunctionMetrics(&cls.Methods[j]).Cyclomatic)
		}
		classValues = append(classValues, total/float64(len(cls.Methods)))
	}

	var fileValues []float64
	for _, f := range e.snap.Files {
		total := 0.0
		for _, fn := range e.snap.FunctionsIn(f.Path) {
			total += float64(e.calc.FunctionMetrics(fn).Cyclomatic)
		}
		fileValues = append(fileValues, total)
	}

	avg := 0.0
	if len(fnValues) > 0 {
		sum := 0.0
		for _, v := range fnValues {
			sum += v
		}
		avg = sum / float64(len(fnValues))
	}

	return avg, ComplexityDistributions{
		Function: stats.NewDistribution(fnValues),
		Class:    stats.NewDistribution(classValues),
		File:     stats.NewDistribution(fileValues),
	}
}
