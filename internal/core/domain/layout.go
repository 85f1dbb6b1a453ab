package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "kiln.yaml"

	// LocalConfigFileName is the name of the optional local override file.
	LocalConfigFileName = "kiln.local.yaml"

	// EnvFileName is the optional dotenv file loaded during config init.
	EnvFileName = ".env"

	// DefaultOutputDir is the default output directory.
	DefaultOutputDir = "_site"

	// DefaultIncludesDir is the default includes directory.
	DefaultIncludesDir = "_includes"

	// DefaultDataDir is the default data directory.
	DefaultDataDir = "_data"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for written files (rw-r--r--).
	FilePerm = 0o644
)

// DirLayout is the resolved directory layout for a project. All fields are
// relative to the project root.
type DirLayout struct {
	Input    string
	Includes string
	Data     string
	Output   string
}

// DefaultLayout returns the layout used when kiln.yaml does not override it.
func DefaultLayout() DirLayout {
	return DirLayout{
		Input:    ".",
		Includes: DefaultIncludesDir,
		Data:     DefaultDataDir,
		Output:   DefaultOutputDir,
	}
}

// IncludesPath returns the includes directory joined onto the input root.
func (d DirLayout) IncludesPath() string {
	return NormalizePath(filepath.Join(d.Input, d.Includes))
}

// DataPath returns the data directory joined onto the input root.
func (d DirLayout) DataPath() string {
	return NormalizePath(filepath.Join(d.Input, d.Data))
}
