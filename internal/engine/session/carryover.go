package session

import (
	"sync"

	"github.com/kilnworks/kiln/internal/core/ports"
)

// Carryover preserves selected write-pipeline state across recreation of
// the pipeline object, so orthogonal cross-build bookkeeping is not lost
// merely because the pipeline was rebuilt.
type Carryover struct {
	mu    sync.Mutex
	slots map[string]ports.WriterCarryover
}

// NewCarryover creates an empty carryover cache.
func NewCarryover() *Carryover {
	return &Carryover{
		slots: make(map[string]ports.WriterCarryover),
	}
}

// Sync restores a previously captured snapshot for key onto w, then
// re-captures w's current snapshot under key. On first call for a key there
// is nothing to restore, so only the capture happens. Values are copied by
// reference; the pipeline declares only fields that are safe to alias.
func (c *Carryover) Sync(key string, w ports.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap, ok := c.slots[key]; ok {
		w.RestoreCarryover(snap)
	}
	c.slots[key] = w.Carryover()
}
