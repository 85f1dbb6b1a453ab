package ports

import (
	"context"

	"github.com/kilnworks/kiln/internal/core/domain"
)

// Reloader is the live-reload collaborator. The coordinator only ships it
// payloads; the wire protocol is the adapter's concern.
//
//go:generate mockgen -source=reload.go -destination=mocks/mock_reload.go -package=mocks
type Reloader interface {
	// SetOutputDir tells the reload layer which directory it serves.
	SetOutputDir(dir string)

	// WatchPassthroughCopy announces passthrough copy targets so the layer
	// can serve them before the pipeline has written them.
	WatchPassthroughCopy(globs []string)

	// Reload publishes a payload to connected clients.
	Reload(ctx context.Context, payload domain.ReloadPayload) error

	// SendError forwards a build error to connected clients. Error display
	// preempts reload.
	SendError(ctx context.Context, buildErr error) error

	// Serve starts the dev server on the given port and blocks until the
	// context is cancelled or the server fails.
	Serve(ctx context.Context, port int) error

	// Close shuts the server down and disconnects clients.
	Close() error
}
