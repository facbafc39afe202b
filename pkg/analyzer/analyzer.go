// Package analyzer defines the contract shared by all graph analyzers.
package analyzer

import (
	"context"

	"github.com/mgraile/augur/pkg/codegraph"
)

// GraphAnalyzer is the interface all snapshot-based analyzers implement.
// Analyzers run single-goroutine over one snapshot: the snapshot must
// not be mutated during a call, and per-analyzer caches are not safe
// for concurrent use without external locking.
type GraphAnalyzer[T any] interface {
	// Analyze computes the analysis result for a snapshot. The context
	// can carry a progress tracker (see WithTracker).
	Analyze(ctx context.Context, snap *codegraph.Snapshot) (T, error)
}
