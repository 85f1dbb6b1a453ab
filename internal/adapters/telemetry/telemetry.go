// Package telemetry instruments build passes with OpenTelemetry spans and a
// colored one-line summary.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.Telemetry = (*Tracer)(nil)

const tracerName = "github.com/kilnworks/kiln"

// Tracer implements ports.Telemetry: one span per build pass, counters as
// span attributes, and a summary line through the logger.
type Tracer struct {
	tracer trace.Tracer
	logger ports.Logger
}

// NewTracer creates a Tracer using the global tracer provider.
func NewTracer(logger ports.Logger) *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
}

// BuildStarted opens a span for one build pass.
func (t *Tracer) BuildStarted(ctx context.Context, target domain.BuildTarget, incremental bool) context.Context {
	ctx, _ = t.tracer.Start(ctx, "build",
		trace.WithAttributes(
			attribute.String("build.target", string(target)),
			attribute.Bool("build.incremental", incremental),
		),
	)
	return ctx
}

// BuildFinished records counters on the span, ends it, and prints the
// summary. Safe to call with a context that carries no span.
func (t *Tracer) BuildFinished(ctx context.Context, counts domain.BuildCounts, elapsed time.Duration, err error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("build.written", counts.Written),
		attribute.Int("build.skipped", counts.Skipped),
		attribute.Int("build.copied", counts.Copied),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	summary := fmt.Sprintf("wrote %d, skipped %d, copied %d in %s",
		counts.Written, counts.Skipped, counts.Copied, elapsed.Round(time.Millisecond))
	if err != nil {
		t.logger.Warn("build failed: " + summary)
		return
	}
	t.logger.Info(summary)
}
