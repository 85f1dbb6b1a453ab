package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no kiln.yaml can be located.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPipelineNotReady is returned when a build is requested before the
	// write pipeline has been constructed.
	ErrPipelineNotReady = zerr.New("write pipeline not initialized")

	// ErrInvalidBuildTarget is returned for an unrecognized output target.
	ErrInvalidBuildTarget = zerr.New("invalid build target, expected 'files', 'document' or 'stream'")

	// ErrBuildFailed marks an error thrown during rendering or writing.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildReported marks a build failure that has already been logged by
	// the session. Callers exit non-zero without logging it again.
	ErrBuildReported = zerr.New("build failed (reported)")

	// ErrWatchCycle marks a recognized per-cycle watch failure. The watch
	// loop logs it and keeps watching; any other error stops the watcher.
	ErrWatchCycle = zerr.New("watch cycle failed")

	// ErrInitialBuildFailed is returned when the first build of a watch
	// session fails, which fails the watch entry point.
	ErrInitialBuildFailed = zerr.New("initial build failed")

	// ErrDependencyResolution is returned when resolving the dependency
	// closure of a path fails. Resolution failures never abort a cycle.
	ErrDependencyResolution = zerr.New("failed to resolve dependencies")

	// ErrRenderFailed is returned when rendering a template fails.
	ErrRenderFailed = zerr.New("failed to render template")

	// ErrWriteFailed is returned when writing an output file fails.
	ErrWriteFailed = zerr.New("failed to write output file")

	// ErrCopyFailed is returned when a passthrough copy fails.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrOutputOutsideRoot is returned when a computed output path escapes
	// the output directory.
	ErrOutputOutsideRoot = zerr.New("output path is outside output directory")

	// ErrStreamUnavailable is returned when the stream target is requested
	// without a destination writer.
	ErrStreamUnavailable = zerr.New("stream target requires a destination writer")

	// ErrReloadClosed is returned when a reload is published after the
	// reload layer has been closed.
	ErrReloadClosed = zerr.New("reload layer is closed")
)
