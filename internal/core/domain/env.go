package domain

// RunMode describes which top-level entry point is driving the process.
type RunMode string

const (
	// RunModeBuild is a one-shot build.
	RunModeBuild RunMode = "build"
	// RunModeServe is watch mode with the dev server attached.
	RunModeServe RunMode = "serve"
	// RunModeWatch is watch mode without the dev server.
	RunModeWatch RunMode = "watch"
)

// Source describes how kiln was invoked. It controls build-error
// classification: script invocations get errors returned to the caller,
// interactive invocations get them reported and swallowed so the watch
// loop can continue.
type Source string

const (
	// SourceCLI is an interactive command-line invocation.
	SourceCLI Source = "cli"
	// SourceScript is a programmatic invocation through the Go API.
	SourceScript Source = "script"
)

// Environment is the set of markers the coordinator publishes for
// downstream consumption. The coordinator itself never reads these back.
type Environment struct {
	Version string
	Root    string
	Source  Source
	RunMode RunMode
}
