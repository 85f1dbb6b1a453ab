package domain

import (
	"context"
	"sync"

	"go.trai.ch/zerr"
)

// LifecycleEvent is one of the fixed coordination phases. Listeners of a
// phase are dispatched in registration order, and every listener completes
// before the emitter proceeds.
type LifecycleEvent uint8

const (
	// EventConfig fires after the configuration file has been loaded.
	EventConfig LifecycleEvent = iota
	// EventEnv fires after the environment markers have been published.
	EventEnv
	// EventExtensionMap fires after the template extension map is resolved.
	EventExtensionMap
	// EventDirectories fires after the directory layout is resolved.
	EventDirectories
	// EventBeforeBuild fires before each build pass.
	EventBeforeBuild
	// EventAfterBuild fires after each successful build pass.
	EventAfterBuild
	// EventBeforeWatch fires once before the first watch cycle.
	EventBeforeWatch
)

// String returns the event name.
func (e LifecycleEvent) String() string {
	switch e {
	case EventConfig:
		return "config"
	case EventEnv:
		return "env"
	case EventExtensionMap:
		return "extensionmap"
	case EventDirectories:
		return "directories"
	case EventBeforeBuild:
		return "beforeBuild"
	case EventAfterBuild:
		return "afterBuild"
	case EventBeforeWatch:
		return "beforeWatch"
	default:
		return "unknown"
	}
}

// LifecyclePayload is the fixed payload shape for lifecycle events. Only the
// fields relevant to a given event are populated.
type LifecyclePayload struct {
	Layout      DirLayout
	Env         Environment
	Extensions  map[string]string
	RunMode     RunMode
	Target      BuildTarget
	Incremental bool
	Record      *BuildRecord
}

// LifecycleListener handles one lifecycle event.
type LifecycleListener func(ctx context.Context, p LifecyclePayload) error

// Lifecycle is an ordered listener registry for the fixed event set.
type Lifecycle struct {
	mu        sync.Mutex
	listeners map[LifecycleEvent][]LifecycleListener
}

// NewLifecycle creates an empty lifecycle registry.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		listeners: make(map[LifecycleEvent][]LifecycleListener),
	}
}

// On registers a listener for the given event. Listeners run in the order
// they were registered.
func (l *Lifecycle) On(event LifecycleEvent, fn LifecycleListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners[event] = append(l.listeners[event], fn)
}

// Emit dispatches the event to every registered listener in order. Each
// listener runs to completion before the next starts; the first error stops
// dispatch and is returned to the emitter.
func (l *Lifecycle) Emit(ctx context.Context, event LifecycleEvent, p LifecyclePayload) error {
	l.mu.Lock()
	fns := make([]LifecycleListener, len(l.listeners[event]))
	copy(fns, l.listeners[event])
	l.mu.Unlock()

	for _, fn := range fns {
		if err := fn(ctx, p); err != nil {
			return zerr.With(zerr.Wrap(err, "lifecycle listener failed"), "event", event.String())
		}
	}
	return nil
}
