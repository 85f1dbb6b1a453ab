// Package config provides the configuration collaborator for kiln.
package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigSource = (*Loader)(nil)

// defaultPort is the dev-server port used when kiln.yaml does not set one.
const defaultPort = 8080

// defaultExtensions maps template extensions to engine names.
func defaultExtensions() map[string]string {
	return map[string]string{
		".md":   "markdown",
		".html": "html",
	}
}

// Loader implements ports.ConfigSource over kiln.yaml. Init loads the file
// (plus kiln.local.yaml override and .env when present), publishes the
// environment markers, and dispatches the config, env, extensionmap, and
// directories lifecycle phases in order.
type Loader struct {
	logger    ports.Logger
	lifecycle *domain.Lifecycle

	mu          sync.Mutex
	initialized bool
	env         domain.Environment

	layout      domain.DirLayout
	extensions  map[string]string
	passthrough []string
	pathPrefix  string
	debounceMs  int
	port        int
	configFiles []string
}

// NewLoader creates a loader with default settings.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:     logger,
		lifecycle:  domain.NewLifecycle(),
		layout:     domain.DefaultLayout(),
		extensions: defaultExtensions(),
		pathPrefix: "/",
		port:       defaultPort,
	}
}

// SetEnvironment sets the markers published during Init.
func (l *Loader) SetEnvironment(env domain.Environment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.env = env
}

// Init loads configuration. Safe to call more than once; later calls are
// no-ops until Reset.
func (l *Loader) Init(ctx context.Context) error {
	l.mu.Lock()
	if l.initialized {
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()
	return l.load(ctx)
}

// Reset discards loaded configuration and reloads from scratch.
func (l *Loader) Reset(ctx context.Context) error {
	l.mu.Lock()
	l.initialized = false
	l.layout = domain.DefaultLayout()
	l.extensions = defaultExtensions()
	l.passthrough = nil
	l.pathPrefix = "/"
	l.debounceMs = 0
	l.port = defaultPort
	l.configFiles = nil
	l.mu.Unlock()
	return l.load(ctx)
}

func (l *Loader) load(ctx context.Context) error {
	var files []string

	// .env is loaded first so config values may reference it downstream.
	if _, err := os.Stat(domain.EnvFileName); err == nil {
		if err := godotenv.Load(domain.EnvFileName); err != nil {
			return zerr.Wrap(err, "failed to load "+domain.EnvFileName)
		}
		files = append(files, domain.NormalizePath(domain.EnvFileName))
	}

	merged, configFiles, err := l.readConfigFiles()
	if err != nil {
		return err
	}
	files = append(files, configFiles...)

	l.mu.Lock()
	l.apply(merged)
	l.configFiles = files
	l.initialized = true
	lc := l.lifecycle
	env := l.env
	layout := l.layout
	extensions := l.extensions
	l.mu.Unlock()

	l.publishEnvironment(env)

	payload := domain.LifecyclePayload{
		Layout:     layout,
		Env:        env,
		Extensions: extensions,
		RunMode:    env.RunMode,
	}
	for _, event := range []domain.LifecycleEvent{
		domain.EventConfig,
		domain.EventEnv,
		domain.EventExtensionMap,
		domain.EventDirectories,
	} {
		if err := lc.Emit(ctx, event, payload); err != nil {
			return err
		}
	}
	return nil
}

// readConfigFiles reads kiln.yaml, its extends chain, and kiln.local.yaml.
// The chain is followed transitively, deepest base first, so later files win
// on conflicting scalar values. Every file in the chain becomes a declared
// config entry for the reset gate.
func (l *Loader) readConfigFiles() (*File, []string, error) {
	var merged File
	var files []string
	seen := make(map[string]bool)

	var read func(name string) error
	read = func(name string) error {
		norm := domain.NormalizePath(name)
		if seen[norm] {
			return nil
		}
		seen[norm] = true

		raw, err := os.ReadFile(name)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", name)
		}
		var f File
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", name)
		}

		// Bases merge before the file that declares them.
		for _, base := range f.Extends {
			base = filepath.Join(filepath.Dir(name), base)
			if _, err := os.Stat(base); err != nil {
				l.logger.Warn("extends target not found: " + base)
				continue
			}
			if err := read(base); err != nil {
				return err
			}
		}

		mergeFile(&merged, &f)
		files = append(files, norm)
		return nil
	}

	if _, err := os.Stat(domain.ConfigFileName); err == nil {
		if err := read(domain.ConfigFileName); err != nil {
			return nil, nil, err
		}
	}
	if _, err := os.Stat(domain.LocalConfigFileName); err == nil {
		if err := read(domain.LocalConfigFileName); err != nil {
			return nil, nil, err
		}
	}
	return &merged, files, nil
}

// mergeFile overlays src onto dst, src winning on set values.
func mergeFile(dst, src *File) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.PathPrefix != "" {
		dst.PathPrefix = src.PathPrefix
	}
	if src.Directories.Input != "" {
		dst.Directories.Input = src.Directories.Input
	}
	if src.Directories.Includes != "" {
		dst.Directories.Includes = src.Directories.Includes
	}
	if src.Directories.Data != "" {
		dst.Directories.Data = src.Directories.Data
	}
	if src.Directories.Output != "" {
		dst.Directories.Output = src.Directories.Output
	}
	if src.Extensions != nil {
		if dst.Extensions == nil {
			dst.Extensions = make(map[string]string, len(src.Extensions))
		}
		for k, v := range src.Extensions {
			dst.Extensions[k] = v
		}
	}
	if src.Passthrough != nil {
		dst.Passthrough = append(dst.Passthrough, src.Passthrough...)
	}
	if src.Watch.DebounceMs != 0 {
		dst.Watch.DebounceMs = src.Watch.DebounceMs
	}
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
}

// apply copies the merged file onto the loader. Caller holds l.mu.
func (l *Loader) apply(f *File) {
	if f.Directories.Input != "" {
		l.layout.Input = f.Directories.Input
	}
	if f.Directories.Includes != "" {
		l.layout.Includes = f.Directories.Includes
	}
	if f.Directories.Data != "" {
		l.layout.Data = f.Directories.Data
	}
	if f.Directories.Output != "" {
		l.layout.Output = f.Directories.Output
	}
	for k, v := range f.Extensions {
		l.extensions[k] = v
	}
	l.passthrough = f.Passthrough
	if f.PathPrefix != "" {
		l.pathPrefix = f.PathPrefix
	}
	l.debounceMs = f.Watch.DebounceMs
	if f.Server.Port != 0 {
		l.port = f.Server.Port
	}
}

// publishEnvironment exports the coordinator's markers for downstream
// consumption. The coordinator never reads these back.
func (l *Loader) publishEnvironment(env domain.Environment) {
	root := env.Root
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}
	_ = os.Setenv("KILN_VERSION", env.Version)
	_ = os.Setenv("KILN_ROOT", root)
	_ = os.Setenv("KILN_SOURCE", string(env.Source))
	_ = os.Setenv("KILN_RUN_MODE", string(env.RunMode))
}

// LocalProjectConfigFiles returns the declared config entry paths.
func (l *Loader) LocalProjectConfigFiles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.configFiles))
	copy(out, l.configFiles)
	return out
}

// Layout returns the resolved directory layout.
func (l *Loader) Layout() domain.DirLayout {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.layout
}

// Extensions returns the template extension map.
func (l *Loader) Extensions() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.extensions
}

// PassthroughGlobs returns the passthrough copy patterns.
func (l *Loader) PassthroughGlobs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.passthrough
}

// PathPrefix returns the URL prefix for output URLs.
func (l *Loader) PathPrefix() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pathPrefix
}

// DebounceWindow returns the configured debounce delay in milliseconds.
func (l *Loader) DebounceWindow() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debounceMs
}

// Port returns the configured dev-server port.
func (l *Loader) Port() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.port
}

// Lifecycle returns the event registry.
func (l *Loader) Lifecycle() *domain.Lifecycle {
	return l.lifecycle
}
