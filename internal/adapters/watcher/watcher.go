// Package watcher implements the OS file-watching boundary using fsnotify.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify. Directories are
// registered recursively; individual files added via Add register their
// parent directory so edits through rename-and-replace are still seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	output    string
	events    chan ports.WatchEvent
}

// NewWatcher creates a file system watcher. Events under output are
// suppressed so the build's own writes never feed back into the queue.
func NewWatcher(output string, logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		output:    domain.StripLeadingDotSlash(domain.NormalizePath(output)),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given roots recursively.
func (w *Watcher) Start(ctx context.Context, roots []string) error {
	for _, root := range roots {
		root = domain.StripLeadingDotSlash(domain.NormalizePath(root))
		if root == "" {
			root = "."
		}
		for dir := range w.directoriesUnder(root) {
			if err := w.fsWatcher.Add(dir); err != nil {
				return err
			}
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Add extends the watch set with additional paths. For file paths the parent
// directory is registered.
func (w *Watcher) Add(paths []string) error {
	for _, p := range paths {
		p = domain.StripLeadingDotSlash(domain.NormalizePath(p))
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		target := p
		if !info.IsDir() {
			target = filepath.Dir(p)
		}
		if err := w.fsWatcher.Add(target); err != nil {
			return err
		}
	}
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// directoriesUnder walks the tree and yields every watchable directory.
func (w *Watcher) directoriesUnder(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories rather than aborting the walk.
				return nil //nolint:nilerr
			}
			if d.IsDir() {
				if w.shouldSkip(path, d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// shouldSkip reports whether a directory is excluded from watching.
func (w *Watcher) shouldSkip(path, name string) bool {
	if shouldSkipDirectories[name] {
		return true
	}
	return w.output != "" && domain.IsWithin(w.output, path)
}

// processEvents converts raw fsnotify events into ports.WatchEvent values.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			rel := domain.StripLeadingDotSlash(domain.NormalizePath(event.Name))
			if w.output != "" && domain.IsWithin(w.output, rel) {
				continue
			}

			watchEvent := w.convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

			// A created directory extends the watch set immediately so files
			// written into it are not missed.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.shouldSkip(event.Name, info.Name()) {
					for dir := range w.directoriesUnder(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(err)
		}
	}
}

// convertEvent maps an fsnotify event onto the watch-op vocabulary. Rename
// is treated as removal; if the file reappears a create event follows.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpChange}
	case event.Op&fsnotify.Create == fsnotify.Create:
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpAdd}
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpUnlink}
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		return &ports.WatchEvent{Path: event.Name, Op: ports.OpUnlink}
	default:
		return nil
	}
}
