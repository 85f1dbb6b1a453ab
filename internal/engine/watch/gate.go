package watch

import (
	"slices"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/kilnworks/kiln/internal/engine/graph"
)

// ResetGate classifies a batch of changed paths as requiring a full config
// reset versus an incremental rebuild.
type ResetGate struct {
	graph  *graph.Graph
	config ports.ConfigSource
}

// NewResetGate creates a gate over the given graph and config source.
func NewResetGate(g *graph.Graph, config ports.ConfigSource) *ResetGate {
	return &ResetGate{graph: g, config: config}
}

// ShouldReset reports whether any path in the active queue is a declared
// config entry, or a member of a config entry's dependency closure. Paths
// reachable only through template or data edges never trigger a reset.
func (rg *ResetGate) ShouldReset(activeQueue []string) bool {
	entries := domain.NormalizePaths(rg.config.LocalProjectConfigFiles())
	if len(entries) == 0 {
		return false
	}

	for _, changed := range activeQueue {
		changed = domain.NormalizePath(changed)

		if slices.Contains(entries, changed) {
			return true
		}
		for _, entry := range entries {
			if slices.Contains(rg.graph.GetDependenciesOf(entry), changed) {
				return true
			}
		}
	}
	return false
}
