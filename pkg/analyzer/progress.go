package analyzer

import (
	"context"
	"sync/atomic"
)

// ProgressFunc is called to report analysis progress. current is the
// number of entities processed, total the total count, and name the
// entity just completed.
type ProgressFunc func(current, total int, name string)

// Tracker tracks progress for analysis operations. It is safe for
// concurrent use from multiple goroutines.
type Tracker struct {
	total    atomic.Int64
	current  atomic.Int64
	callback ProgressFunc
}

// NewTracker creates a progress tracker with the given callback.
func NewTracker(callback ProgressFunc) *Tracker {
	return &Tracker{callback: callback}
}

// Add increments the total count by n.
func (t *Tracker) Add(n int) {
	t.total.Add(int64(n))
}

// Tick marks one entity as completed.
func (t *Tracker) Tick(name string) {
	current := int(t.current.Add(1))
	if t.callback != nil {
		t.callback(current, int(t.total.Load()), name)
	}
}

// Current returns the number of completed entities.
func (t *Tracker) Current() int {
	return int(t.current.Load())
}

// Total returns the total entity count.
func (t *Tracker) Total() int {
	return int(t.total.Load())
}

type trackerKey struct{}

// WithTracker returns a context carrying a progress tracker.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// TrackerFromContext extracts the progress tracker from the context,
// or nil if none was set.
func TrackerFromContext(ctx context.Context) *Tracker {
	if t, ok := ctx.Value(trackerKey{}).(*Tracker); ok {
		return t
	}
	return nil
}
