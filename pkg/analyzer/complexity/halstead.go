package complexity

import (
	"math"
	"strings"

	"github.com/mgraile/augur/pkg/codegraph"
)

// Halstead computes software-science metrics over a set of functions.
// Called-function names stand in for operators; argument and parameter
// text stand in for operands. An empty or nil function set returns a
// zero-valued result.
func (e *LexicalEstimator) Halstead(fns []*codegraph.Function) HalsteadMetrics {
	operators := make(map[string]int)
	operands := make(map[string]int)

	for _, fn := range fns {
		if fn == nil {
			continue
		}
		for _, call := range fn.Calls {
			if call.Callee != "" {
				operators[call.Callee]++
			}
			for _, arg := range call.Args {
				if arg = strings.TrimSpace(arg); arg != "" {
					operands[arg]++
				}
			}
		}
		for _, p := range fn.Parameters {
			if p.Name != "" {
				operands[p.Name]++
			}
		}
	}

	var m HalsteadMetrics
	m.DistinctOperators = len(operators)
	m.DistinctOperands = len(operands)
	for _, n := range operators {
		m.TotalOperators += n
	}
	for _, n := range operands {
		m.TotalOperands += n
	}

	m.Vocabulary = m.DistinctOperators + m.DistinctOperands
	m.Length = m.TotalOperators + m.TotalOperands

	if m.Vocabulary > 0 {
		m.Volume = float64(m.Length) * math.Log2(float64(m.Vocabulary))
	}
	if m.DistinctOperands > 0 {
		m.Difficulty = float64(m.DistinctOperators) / 2 *
			float64(m.TotalOperands) / float64(m.DistinctOperands)
	}
	m.Effort = m.Difficulty * m.Volume
	return m
}
