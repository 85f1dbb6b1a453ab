package domain

// BuildTarget selects where a build pass sends its output.
type BuildTarget string

const (
	// TargetFiles writes rendered templates and copies to the output directory.
	TargetFiles BuildTarget = "files"
	// TargetDocument returns the rendered site as an in-memory structure.
	TargetDocument BuildTarget = "document"
	// TargetStream writes newline-delimited records to a caller-supplied writer.
	TargetStream BuildTarget = "stream"
)

// DocumentMode selects the shape of an in-memory build result.
type DocumentMode string

const (
	// ModeJSON returns the full document structure.
	ModeJSON DocumentMode = "json"
	// ModeNDJSON emits one JSON record per line.
	ModeNDJSON DocumentMode = "ndjson"
)

// TemplateResult is the outcome of rendering one template input.
type TemplateResult struct {
	InputPath  string `json:"inputPath"`
	OutputPath string `json:"outputPath,omitempty"`
	URL        string `json:"url"`
	Content    string `json:"content,omitempty"`
}

// CopyResult is the outcome of one passthrough copy operation.
type CopyResult struct {
	InputPath  string `json:"inputPath"`
	OutputPath string `json:"outputPath"`
	Skipped    bool   `json:"skipped,omitempty"`
}

// BuildCounts are the telemetry counters maintained by the write pipeline.
type BuildCounts struct {
	Written int
	Skipped int
	Copied  int
}

// BuildRecord is the uniform result of one build pass, regardless of target.
// Copies precede templates, matching the order the pipeline produces them.
type BuildRecord struct {
	Counts    BuildCounts
	Copies    []CopyResult
	Templates []TemplateResult

	// Watched is the dependency-graph snapshot attached after a successful
	// pass: every declared and discovered target known at that point.
	Watched []string
}

// ReloadBuild is the build portion of a reload payload.
type ReloadBuild struct {
	Templates []TemplateResult `json:"templates"`
}

// ReloadSubtypeCSS marks a style-only reload; clients swap stylesheets in
// place instead of reloading the page.
const ReloadSubtypeCSS = "css"

// ReloadPayload is what the live-reload layer receives after a successful
// watch-mode build.
type ReloadPayload struct {
	ChangedFiles []string    `json:"changedFiles"`
	Subtype      string      `json:"subtype,omitempty"`
	Build        ReloadBuild `json:"build"`
}
