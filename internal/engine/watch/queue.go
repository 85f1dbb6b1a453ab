// Package watch implements the change queue, reset gate, and single-flight
// build coordinator for watch mode.
package watch

import (
	"sync"
	"unique"

	"github.com/kilnworks/kiln/internal/core/domain"
)

// Queue is an ordered set of changed paths not yet assigned to a build pass.
// Membership is path-set semantics: paths are normalized on insert and
// deduplicated by interned handle, insertion order is preserved.
type Queue struct {
	mu     sync.Mutex
	order  []unique.Handle[string]
	member map[unique.Handle[string]]struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		member: make(map[unique.Handle[string]]struct{}),
	}
}

// Enqueue inserts the normalized form of path. It reports whether the path
// was newly added.
func (q *Queue) Enqueue(path string) bool {
	h := unique.Make(domain.NormalizePath(path))

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.member[h]; ok {
		return false
	}
	q.member[h] = struct{}{}
	q.order = append(q.order, h)
	return true
}

// Drain snapshots the queued paths as the active queue for a cycle and
// clears the queue.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.order) == 0 {
		return nil
	}
	out := make([]string, len(q.order))
	for i, h := range q.order {
		out[i] = h.Value()
	}
	q.order = nil
	q.member = make(map[unique.Handle[string]]struct{})
	return out
}

// Len returns the number of queued paths.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}
