package ports

import (
	"context"

	"github.com/kilnworks/kiln/internal/core/domain"
)

// ConfigSource is the configuration collaborator. Init and Reset emit the
// config, env, extensionmap and directories lifecycle events in that order,
// awaiting each phase's listeners before proceeding.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigSource interface {
	// SetEnvironment sets the environment markers published during Init.
	SetEnvironment(env domain.Environment)

	// Init loads configuration and publishes the environment markers.
	// It is safe to call more than once; later calls are no-ops.
	Init(ctx context.Context) error

	// Reset discards loaded configuration and re-runs Init from scratch.
	Reset(ctx context.Context) error

	// LocalProjectConfigFiles returns the declared config entry paths, in
	// precedence order, normalized. Only files that exist are returned.
	LocalProjectConfigFiles() []string

	// Layout returns the resolved directory layout.
	Layout() domain.DirLayout

	// Extensions returns the template extension map (".md" -> engine name).
	Extensions() map[string]string

	// PassthroughGlobs returns the passthrough copy patterns.
	PassthroughGlobs() []string

	// PathPrefix returns the URL prefix rewritten onto output URLs.
	PathPrefix() string

	// DebounceWindow returns the configured watch debounce delay in
	// milliseconds. Zero means the built-in default.
	DebounceWindow() int

	// Port returns the configured dev-server port.
	Port() int

	// Lifecycle returns the event registry listeners attach to.
	Lifecycle() *domain.Lifecycle
}
