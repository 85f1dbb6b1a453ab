// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/kilnworks/kiln/internal/core/domain"
)

// WriterCarryover is the explicit snapshot of the cross-build bookkeeping a
// write pipeline opts into carrying across recreation. Values are aliased,
// not cloned; the pipeline guarantees they are safe to share.
type WriterCarryover struct {
	// ContentHashes maps input paths to content hashes, used to skip
	// passthrough copies whose content has not changed.
	ContentHashes map[string]uint64
}

// Writer is the write-pipeline collaborator: it renders and writes one build
// pass for the chosen output target.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type Writer interface {
	// Write runs a full pass against the filesystem output target.
	Write(ctx context.Context) (*domain.BuildRecord, error)

	// Document runs a pass that collects results in memory. For ModeNDJSON
	// the record is only meaningful once Document returns; callers must not
	// assume partial availability mid-stream.
	Document(ctx context.Context, mode domain.DocumentMode, out io.Writer) (*domain.BuildRecord, error)

	// Counts returns the telemetry counters for the most recent pass.
	Counts() domain.BuildCounts

	// SetIncrementalFile narrows the next pass to a single changed template.
	SetIncrementalFile(path string)

	// ResetIncrementalFile clears the incremental narrowing.
	ResetIncrementalFile()

	// SetRunInitialBuild marks the next pass as the first of a watch session.
	SetRunInitialBuild(initial bool)

	// SetIncrementalBuild toggles incremental mode for subsequent passes.
	SetIncrementalBuild(incremental bool)

	// Carryover returns the pipeline's current carryover snapshot.
	Carryover() WriterCarryover

	// RestoreCarryover copies a previously captured snapshot onto the
	// pipeline.
	RestoreCarryover(c WriterCarryover)
}
