// Package app implements the application layer for kiln.
package app

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/kilnworks/kiln/internal/adapters/detector"
	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/adapters/pipeline"
	"github.com/kilnworks/kiln/internal/build"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/kilnworks/kiln/internal/engine/graph"
	"github.com/kilnworks/kiln/internal/engine/session"
	"github.com/kilnworks/kiln/internal/engine/watch"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App carries the adapter collaborators and exposes the build and serve
// operations the CLI invokes.
type App struct {
	config    ports.ConfigSource
	logger    ports.Logger
	hasher    *fs.Hasher
	exists    ports.ExistsIndex
	resolver  ports.DependencyResolver
	watcher   ports.Watcher
	reloader  ports.Reloader
	telemetry ports.Telemetry

	stdout io.Writer
}

// New creates an App.
func New(
	config ports.ConfigSource,
	logger ports.Logger,
	hasher *fs.Hasher,
	exists ports.ExistsIndex,
	resolver ports.DependencyResolver,
	watcher ports.Watcher,
	reloader ports.Reloader,
	telemetry ports.Telemetry,
) *App {
	return &App{
		config:    config,
		logger:    logger,
		hasher:    hasher,
		exists:    exists,
		resolver:  resolver,
		watcher:   watcher,
		reloader:  reloader,
		telemetry: telemetry,
		stdout:    os.Stdout,
	}
}

// WithStdout overrides the destination for document and stream output.
// Primarily used by tests.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// BuildOptions configures a one-shot build.
type BuildOptions struct {
	// Target selects the output: "files", "json", or "ndjson".
	Target string
	// Incremental enables skip detection against previous output.
	Incremental bool
	// OutputMode overrides log format detection: "auto", "pretty", "json".
	OutputMode string
}

// Build runs exactly one build pass.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	a.setupLogging(opts.OutputMode)
	setupOTel()

	env := a.environment(domain.RunModeBuild)
	a.config.SetEnvironment(env)

	sess := a.newSession(env, graph.New(a.resolver, a.logger)).WithStream(a.stdout)
	sess.SetIncremental(opts.Incremental)

	if err := sess.Init(ctx); err != nil {
		return err
	}

	var target domain.BuildTarget
	switch opts.Target {
	case "", "files":
		target = domain.TargetFiles
	case "json":
		target = domain.TargetDocument
	case "ndjson":
		target = domain.TargetStream
	default:
		return zerr.With(domain.ErrInvalidBuildTarget, "target", opts.Target)
	}

	rec, err := sess.ExecuteBuild(ctx, target)
	if err != nil {
		return err
	}

	if target == domain.TargetDocument {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return zerr.Wrap(err, "failed to encode build document")
		}
	}
	return nil
}

// ServeOptions configures watch mode with the dev server.
type ServeOptions struct {
	// Port overrides the configured dev-server port. Zero keeps the config
	// value.
	Port int
	// DebounceMs overrides the debounce window. Zero keeps the config value.
	DebounceMs int
	// Incremental enables single-template narrowing on watch cycles.
	Incremental bool
	// OutputMode overrides log format detection.
	OutputMode string
}

// Serve runs the initial build, then watches for changes and serves the
// output directory with live reload until the context is cancelled.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	a.setupLogging(opts.OutputMode)
	setupOTel()

	env := a.environment(domain.RunModeServe)
	a.config.SetEnvironment(env)

	g := graph.New(a.resolver, a.logger)
	sess := a.newSession(env, g)

	// Configuration must be loaded before the dev server knows what to
	// serve. Init is idempotent; the coordinator's own call is a no-op.
	if err := sess.Init(ctx); err != nil {
		return err
	}

	layout := a.config.Layout()
	a.reloader.SetOutputDir(layout.Output)
	a.reloader.WatchPassthroughCopy(a.config.PassthroughGlobs())

	port := opts.Port
	if port == 0 {
		port = a.config.Port()
	}

	gate := watch.NewResetGate(g, a.config)
	broadcaster := watch.NewBroadcaster(a.reloader, a.config)

	coordinator := watch.NewCoordinator(
		sess, gate, g, broadcaster,
		a.watcher, a.exists, a.config, a.logger,
	).WithIncremental(opts.Incremental)

	if window := a.debounceWindow(opts.DebounceMs); window > 0 {
		coordinator = coordinator.WithDebounceWindow(window)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.reloader.Serve(ctx, port)
	})
	eg.Go(func() error {
		defer func() { _ = a.reloader.Close() }()
		return coordinator.Watch(ctx)
	})
	return eg.Wait()
}

// newSession wires a session whose factory builds a fresh write pipeline
// from current configuration. The graph is shared with the caller so watch
// targets recorded on build records stay consistent.
func (a *App) newSession(env domain.Environment, g *graph.Graph) *session.Session {
	factory := func(context.Context) (ports.Writer, error) {
		return pipeline.NewWriter(a.config, a.logger, a.hasher), nil
	}
	return session.New(a.config, factory, g, a.telemetry, a.logger, env)
}

// environment assembles the markers published to config and lifecycle
// listeners.
func (a *App) environment(mode domain.RunMode) domain.Environment {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return domain.Environment{
		Version: build.Version,
		Root:    root,
		Source:  domain.SourceCLI,
		RunMode: mode,
	}
}

// setupLogging applies the log-format override to auto-detection.
func (a *App) setupLogging(outputMode string) {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	a.logger.SetJSON(mode == detector.ModeJSON)
}

// debounceWindow resolves the flag override against the config value.
func (a *App) debounceWindow(flagMs int) time.Duration {
	ms := flagMs
	if ms == 0 {
		ms = a.config.DebounceWindow()
	}
	return time.Duration(ms) * time.Millisecond
}

// setupOTel installs a tracer provider so build spans have somewhere to go.
func setupOTel() {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())
}
