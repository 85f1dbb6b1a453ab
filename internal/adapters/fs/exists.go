// Package fs provides filesystem helpers: the fast-path existence index and
// the content hasher used for passthrough-copy skip detection.
package fs

import (
	"os"
	"sync"
	"unique"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
)

var _ ports.ExistsIndex = (*ExistsIndex)(nil)

// ExistsIndex caches file existence so hot paths avoid stat calls. The
// watcher keeps it current from add/unlink notifications.
type ExistsIndex struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]]bool
}

// NewExistsIndex creates an empty index.
func NewExistsIndex() *ExistsIndex {
	return &ExistsIndex{
		entries: make(map[unique.Handle[string]]bool),
	}
}

// MarkExists records that path exists.
func (e *ExistsIndex) MarkExists(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[unique.Make(domain.NormalizePath(path))] = true
}

// MarkRemoved records that path no longer exists.
func (e *ExistsIndex) MarkRemoved(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[unique.Make(domain.NormalizePath(path))] = false
}

// Exists reports whether path is known to exist. When the index has no
// knowledge of the path, known is false and the caller should fall back to
// the filesystem.
func (e *ExistsIndex) Exists(path string) (known bool, exists bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	exists, known = e.entries[unique.Make(domain.NormalizePath(path))]
	return known, exists
}

// StatFallback answers an existence query through the index when possible,
// falling back to a stat call otherwise.
func (e *ExistsIndex) StatFallback(path string) bool {
	if known, exists := e.Exists(path); known {
		return exists
	}
	_, err := os.Stat(domain.StripLeadingDotSlash(domain.NormalizePath(path)))
	return err == nil
}
