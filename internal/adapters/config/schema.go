package config

// File represents the structure of the kiln.yaml configuration file.
type File struct {
	Version     string            `yaml:"version"`
	PathPrefix  string            `yaml:"pathPrefix"`
	Extends     []string          `yaml:"extends"`
	Directories DirectoriesDTO    `yaml:"directories"`
	Extensions  map[string]string `yaml:"extensions"`
	Passthrough []string          `yaml:"passthrough"`
	Watch       WatchDTO          `yaml:"watch"`
	Server      ServerDTO         `yaml:"server"`
}

// DirectoriesDTO configures the directory layout.
type DirectoriesDTO struct {
	Input    string `yaml:"input"`
	Includes string `yaml:"includes"`
	Data     string `yaml:"data"`
	Output   string `yaml:"output"`
}

// WatchDTO configures watch mode.
type WatchDTO struct {
	DebounceMs int `yaml:"debounceMs"`
}

// ServerDTO configures the dev server.
type ServerDTO struct {
	Port int `yaml:"port"`
}
