package watch

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/kilnworks/kiln/internal/engine/graph"
	"github.com/kilnworks/kiln/internal/engine/session"
)

// DefaultDebounceWindow is the quiet period required before a batch of
// notifications triggers a build cycle.
const DefaultDebounceWindow = 200 * time.Millisecond

// Coordinator turns asynchronous filesystem notifications into strictly
// serialized build cycles. At most one build is in flight per coordinator;
// notifications arriving mid-build seed the next cycle, which starts
// immediately after the current one finishes.
type Coordinator struct {
	session     *session.Session
	gate        *ResetGate
	graph       *graph.Graph
	broadcaster *Broadcaster
	watcher     ports.Watcher
	exists      ports.ExistsIndex
	config      ports.ConfigSource
	logger      ports.Logger

	window      time.Duration
	incremental bool

	mu           sync.Mutex
	queue        *Queue
	buildRunning bool
	timer        *time.Timer

	fatal chan error
}

// NewCoordinator creates a coordinator with the given collaborators.
func NewCoordinator(
	sess *session.Session,
	gate *ResetGate,
	g *graph.Graph,
	broadcaster *Broadcaster,
	watcher ports.Watcher,
	exists ports.ExistsIndex,
	config ports.ConfigSource,
	logger ports.Logger,
) *Coordinator {
	return &Coordinator{
		session:     sess,
		gate:        gate,
		graph:       g,
		broadcaster: broadcaster,
		watcher:     watcher,
		exists:      exists,
		config:      config,
		logger:      logger,
		window:      DefaultDebounceWindow,
		queue:       NewQueue(),
		fatal:       make(chan error, 1),
	}
}

// WithDebounceWindow overrides the debounce delay.
func (c *Coordinator) WithDebounceWindow(window time.Duration) *Coordinator {
	if window > 0 {
		c.window = window
	}
	return c
}

// WithIncremental enables incremental narrowing for single-template cycles.
func (c *Coordinator) WithIncremental(incremental bool) *Coordinator {
	c.incremental = incremental
	c.session.SetIncremental(incremental)
	return c
}

// Watch runs the initial build, starts the watcher, and blocks until the
// context is cancelled or an unrecognized cycle error stops watching. A
// failed initial build fails Watch before any watch state is entered.
func (c *Coordinator) Watch(ctx context.Context) error {
	if err := c.session.Init(ctx); err != nil {
		return err
	}

	w := c.session.Writer()
	w.SetRunInitialBuild(true)
	if _, err := c.session.ExecuteBuild(ctx, domain.TargetFiles); err != nil {
		return errors.Join(domain.ErrInitialBuildFailed, err)
	}
	w.SetRunInitialBuild(false)

	layout := c.config.Layout()
	cfgFiles := c.config.LocalProjectConfigFiles()
	c.graph.Add(layout.Input)
	c.graph.Add(cfgFiles...)
	c.graph.AddDependencies(ctx, cfgFiles, nil)

	lc := c.config.Lifecycle()
	if err := lc.Emit(ctx, domain.EventBeforeWatch, domain.LifecyclePayload{Layout: layout}); err != nil {
		return err
	}

	if err := c.watcher.Start(ctx, []string{layout.Input}); err != nil {
		return err
	}
	if targets := c.graph.GetNewTargetsSinceLastReset(); len(targets) > 0 {
		if err := c.watcher.Add(targets); err != nil {
			c.logger.Warn(fmt.Sprintf("could not extend watch set: %v", err))
		}
	}
	c.graph.Reset()

	go c.pump(ctx)
	c.logger.Info("watching for changes...")

	select {
	case <-ctx.Done():
		c.shutdown()
		return nil
	case err := <-c.fatal:
		c.shutdown()
		return err
	}
}

// OnEvent handles one watcher notification: it updates the existence index,
// enqueues the normalized path, and restarts the debounce timer unless a
// build is in flight.
func (c *Coordinator) OnEvent(ctx context.Context, ev ports.WatchEvent) {
	p := domain.NormalizePath(ev.Path)

	switch ev.Op {
	case ports.OpAdd:
		c.exists.MarkExists(p)
	case ports.OpUnlink:
		c.exists.MarkRemoved(p)
	case ports.OpChange:
	}

	c.queue.Enqueue(p)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buildRunning {
		// Seeds the next cycle; no timer while a build is in flight.
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.window, func() { c.onDebounce(ctx) })
}

func (c *Coordinator) pump(ctx context.Context) {
	for ev := range c.watcher.Events() {
		c.OnEvent(ctx, ev)
	}
}

func (c *Coordinator) onDebounce(ctx context.Context) {
	c.mu.Lock()
	if c.buildRunning {
		c.mu.Unlock()
		return
	}
	c.buildRunning = true
	c.timer = nil
	c.mu.Unlock()

	if err := c.runCycles(ctx); err != nil {
		select {
		case c.fatal <- err:
		default:
		}
	}
}

// runCycles drains the queue iteratively: while paths remain after a cycle,
// the next cycle starts immediately with no debounce delay. Recognized
// cycle errors keep the loop alive; anything else stops watching.
func (c *Coordinator) runCycles(ctx context.Context) error {
	for {
		active := c.queue.Drain()
		if len(active) == 0 {
			c.mu.Lock()
			if c.queue.Len() > 0 {
				// A notification slipped in between drain and here.
				c.mu.Unlock()
				continue
			}
			c.buildRunning = false
			c.mu.Unlock()
			c.logger.Info("watching for changes...")
			return nil
		}

		if err := c.runCycle(ctx, active); err != nil {
			if recognizedCycleError(err) {
				// Already reported; keep watching.
				continue
			}
			c.mu.Lock()
			c.buildRunning = false
			c.mu.Unlock()
			return err
		}
	}
}

func (c *Coordinator) runCycle(ctx context.Context, active []string) error {
	c.logger.Info(fmt.Sprintf("%d file(s) changed", len(active)))

	// Changed content invalidates any memoized resolution for those paths.
	c.graph.ClearImportCacheFor(active)

	reset := c.gate.ShouldReset(active)
	if err := c.session.Restart(ctx, reset); err != nil {
		return errors.Join(domain.ErrWatchCycle, err)
	}

	w := c.session.Writer()
	if c.incremental && len(active) == 1 && c.isTemplate(active[0]) {
		w.SetIncrementalFile(active[0])
	} else {
		w.ResetIncrementalFile()
	}

	rec, err := c.session.ExecuteBuild(ctx, domain.TargetFiles)
	if err != nil {
		if perr := c.broadcaster.PublishError(ctx, err); perr != nil {
			c.logger.Warn(fmt.Sprintf("could not forward build error to reload layer: %v", perr))
		}
		return err
	}

	outputDir := c.config.Layout().Output
	c.graph.AddDependencies(ctx, active, func(dep string) bool {
		return !domain.IsWithin(outputDir, dep)
	})
	if targets := c.graph.GetNewTargetsSinceLastReset(); len(targets) > 0 {
		if werr := c.watcher.Add(targets); werr != nil {
			c.logger.Warn(fmt.Sprintf("could not extend watch set: %v", werr))
		}
	}
	c.graph.Reset()

	if perr := c.broadcaster.Publish(ctx, active, rec); perr != nil {
		c.logger.Warn(fmt.Sprintf("could not publish reload: %v", perr))
	}
	return nil
}

func (c *Coordinator) isTemplate(p string) bool {
	_, ok := c.config.Extensions()[path.Ext(p)]
	return ok
}

func (c *Coordinator) shutdown() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	if err := c.watcher.Stop(); err != nil {
		c.logger.Warn(fmt.Sprintf("watcher shutdown: %v", err))
	}
}

// recognizedCycleError reports whether err belongs to the error classes a
// watch session survives.
func recognizedCycleError(err error) bool {
	return errors.Is(err, domain.ErrBuildFailed) ||
		errors.Is(err, domain.ErrBuildReported) ||
		errors.Is(err, domain.ErrWatchCycle)
}
