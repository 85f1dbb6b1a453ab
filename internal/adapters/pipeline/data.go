package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kilnworks/kiln/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// loadData reads every YAML file under the data directory into a map keyed by
// the file name without extension. A missing data directory yields an empty
// map.
func loadData(layout domain.DirLayout) (map[string]any, error) {
	data := make(map[string]any)

	dir := domain.StripLeadingDotSlash(layout.DataPath())
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read data directory"), "dir", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read data file"), "file", entry.Name())
		}
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse data file"), "file", entry.Name())
		}
		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		data[key] = doc
	}
	return data, nil
}
