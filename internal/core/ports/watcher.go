package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system notification.
type WatchOp uint8

const (
	// OpChange indicates a file's content was modified.
	OpChange WatchOp = iota
	// OpAdd indicates a file was created.
	OpAdd
	// OpUnlink indicates a file was removed or renamed away.
	OpUnlink
)

// WatchEvent is one file system notification.
type WatchEvent struct {
	// Path is the path of the file that changed, as reported by the OS.
	Path string
	// Op is the type of change.
	Op WatchOp
}

// Watcher is the OS-level file watcher boundary.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given roots recursively.
	Start(ctx context.Context, roots []string) error

	// Add extends the watch set with additional paths without re-registering
	// the existing ones.
	Add(paths []string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events. The iterator ends
	// when the watcher stops.
	Events() iter.Seq[WatchEvent]
}
