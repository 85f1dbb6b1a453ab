// Package session executes single build passes against a chosen output
// target and owns write-pipeline initialization and recreation.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/kilnworks/kiln/internal/engine/graph"
	"go.trai.ch/zerr"
)

// carryoverKey identifies the write pipeline's slot in the carryover cache.
// There is one pipeline per session, so one slot suffices.
const carryoverKey = "writer"

// WriterFactory constructs a fresh write pipeline from current configuration.
type WriterFactory func(ctx context.Context) (ports.Writer, error)

// Session runs one build pass at a time. It holds no scheduling lock of its
// own; the watch coordinator guarantees passes never overlap.
type Session struct {
	config    ports.ConfigSource
	factory   WriterFactory
	graph     *graph.Graph
	telemetry ports.Telemetry
	logger    ports.Logger
	env       domain.Environment

	stream    io.Writer
	carryover *Carryover

	initOnce sync.Once
	initErr  error

	mu          sync.Mutex
	writer      ports.Writer
	incremental bool
}

// New creates a session. The factory is invoked lazily on Init and again on
// every Restart.
func New(
	config ports.ConfigSource,
	factory WriterFactory,
	g *graph.Graph,
	telemetry ports.Telemetry,
	logger ports.Logger,
	env domain.Environment,
) *Session {
	return &Session{
		config:    config,
		factory:   factory,
		graph:     g,
		telemetry: telemetry,
		logger:    logger,
		env:       env,
		carryover: NewCarryover(),
	}
}

// WithStream sets the destination for the stream output target.
func (s *Session) WithStream(w io.Writer) *Session {
	s.stream = w
	return s
}

// Init loads configuration and constructs the write pipeline. It is
// idempotent and concurrency-safe: concurrent callers await the one shared
// in-flight initialization instead of triggering a duplicate.
func (s *Session) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		if err := s.config.Init(ctx); err != nil {
			s.initErr = err
			return
		}
		w, err := s.factory(ctx)
		if err != nil {
			s.initErr = err
			return
		}
		s.carryover.Sync(carryoverKey, w)

		s.mu.Lock()
		s.writer = w
		s.mu.Unlock()
	})
	return s.initErr
}

// Restart recreates the write pipeline for the next cycle. For a config
// reset the configuration is reinitialized first and the carryover cache is
// left untouched; otherwise the carryover snapshot is synced onto the new
// pipeline instance.
func (s *Session) Restart(ctx context.Context, configReset bool) error {
	if configReset {
		if err := s.config.Reset(ctx); err != nil {
			return err
		}
	}

	w, err := s.factory(ctx)
	if err != nil {
		return err
	}
	if !configReset {
		s.carryover.Sync(carryoverKey, w)
	}

	s.mu.Lock()
	w.SetIncrementalBuild(s.incremental)
	s.writer = w
	s.mu.Unlock()
	return nil
}

// Writer returns the current write pipeline, or nil before Init.
func (s *Session) Writer() ports.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer
}

// SetIncremental toggles incremental mode for subsequent passes.
func (s *Session) SetIncremental(incremental bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incremental = incremental
	if s.writer != nil {
		s.writer.SetIncrementalBuild(incremental)
	}
}

// ExecuteBuild runs exactly one build pass against the requested output
// target. Telemetry is finalized and the summary line printed regardless of
// outcome, before any error reaches the caller.
func (s *Session) ExecuteBuild(ctx context.Context, target domain.BuildTarget) (rec *domain.BuildRecord, err error) {
	s.mu.Lock()
	w := s.writer
	incremental := s.incremental
	s.mu.Unlock()

	if w == nil {
		return nil, domain.ErrPipelineNotReady
	}

	ctx = s.telemetry.BuildStarted(ctx, target, incremental)
	start := time.Now()
	defer func() {
		s.telemetry.BuildFinished(ctx, w.Counts(), time.Since(start), err)
	}()

	lc := s.config.Lifecycle()
	payload := domain.LifecyclePayload{
		Layout:      s.config.Layout(),
		RunMode:     s.env.RunMode,
		Target:      target,
		Incremental: incremental,
	}
	if err = lc.Emit(ctx, domain.EventBeforeBuild, payload); err != nil {
		return nil, s.classify(err)
	}

	switch target {
	case domain.TargetFiles:
		rec, err = w.Write(ctx)
	case domain.TargetDocument:
		rec, err = w.Document(ctx, domain.ModeJSON, nil)
	case domain.TargetStream:
		// The record is only meaningful once the pipeline signals
		// completion by returning.
		if s.stream == nil {
			err = domain.ErrStreamUnavailable
			return nil, err
		}
		rec, err = w.Document(ctx, domain.ModeNDJSON, s.stream)
	default:
		err = zerr.With(domain.ErrInvalidBuildTarget, "target", string(target))
		return nil, err
	}
	if err != nil {
		rec = nil
		err = s.classify(err)
		return nil, err
	}

	rec.Templates = dropEmptyTemplates(rec.Templates)
	rec.Watched = s.graph.Targets()

	payload.Record = rec
	if err = lc.Emit(ctx, domain.EventAfterBuild, payload); err != nil {
		rec = nil
		return nil, s.classify(err)
	}
	return rec, nil
}

// classify applies the build-error policy: the error is reported always,
// re-raised to the caller only for script invocation, and otherwise
// replaced by the already-reported sentinel so watch mode can continue.
func (s *Session) classify(buildErr error) error {
	s.logger.Error(zerr.Wrap(buildErr, domain.ErrBuildFailed.Error()))

	if s.env.Source == domain.SourceScript {
		return errors.Join(domain.ErrBuildFailed, buildErr)
	}
	return domain.ErrBuildReported
}

// dropEmptyTemplates flattens the result entries, removing empty ones.
func dropEmptyTemplates(in []domain.TemplateResult) []domain.TemplateResult {
	out := in[:0]
	for _, t := range in {
		if t == (domain.TemplateResult{}) {
			continue
		}
		out = append(out, t)
	}
	return out
}
