package ports

import (
	"context"
	"time"

	"github.com/kilnworks/kiln/internal/core/domain"
)

// Telemetry instruments build passes. Every pass, regardless of outcome,
// is finalized exactly once.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// BuildStarted opens a span for one build pass and returns the context
	// carrying it.
	BuildStarted(ctx context.Context, target domain.BuildTarget, incremental bool) context.Context

	// BuildFinished finalizes the pass: it records counters on the span,
	// ends it, and prints the one-line summary. A non-nil err colors the
	// summary without suppressing the counts.
	BuildFinished(ctx context.Context, counts domain.BuildCounts, elapsed time.Duration, err error)
}
