// Package graph tracks declared and discovered watch targets and the
// dependency edges between them.
package graph

import (
	"context"
	"sort"
	"sync"
	"unique"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

type pathSet map[unique.Handle[string]]struct{}

// Graph is the authoritative set of paths whose modification matters, split
// into declared targets (explicit globs, config files, added paths) and
// discovered targets (transitive import targets resolved lazily). Forward
// and reverse edge maps are kept mutually consistent: every forward edge has
// a matching reverse edge.
type Graph struct {
	mu       sync.RWMutex
	resolver ports.DependencyResolver
	logger   ports.Logger

	declared   pathSet
	discovered pathSet
	forward    map[unique.Handle[string]]pathSet
	reverse    map[unique.Handle[string]]pathSet

	// newSinceReset holds targets added since the last Reset, used to
	// extend the OS watcher incrementally without full re-registration.
	newSinceReset pathSet
}

// New creates an empty graph using the given resolver for discovery.
func New(resolver ports.DependencyResolver, logger ports.Logger) *Graph {
	return &Graph{
		resolver:      resolver,
		logger:        logger,
		declared:      make(pathSet),
		discovered:    make(pathSet),
		forward:       make(map[unique.Handle[string]]pathSet),
		reverse:       make(map[unique.Handle[string]]pathSet),
		newSinceReset: make(pathSet),
	}
}

// Add merges declared paths into the graph. Idempotent.
func (g *Graph) Add(paths ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range paths {
		h := unique.Make(domain.NormalizePath(p))
		if _, ok := g.declared[h]; ok {
			continue
		}
		g.declared[h] = struct{}{}
		g.newSinceReset[h] = struct{}{}
	}
}

// AddDependencies resolves the transitive dependency closure of each path
// and merges the results into the discovered targets. The optional filter
// excludes a candidate dependency before insertion. A resolution failure for
// one path is reported through the logger and never blocks the others.
func (g *Graph) AddDependencies(ctx context.Context, paths []string, filter func(string) bool) {
	for _, p := range paths {
		p = domain.NormalizePath(p)

		deps, err := g.resolver.Resolve(ctx, p)
		if err != nil {
			// Degrade to "dependency unknown" for this path.
			g.logger.Error(zerr.With(
				zerr.Wrap(err, domain.ErrDependencyResolution.Error()),
				"path", p,
			))
			continue
		}

		g.mu.Lock()
		from := unique.Make(p)
		for _, dep := range deps {
			dep = domain.NormalizePath(dep)
			if filter != nil && !filter(dep) {
				continue
			}
			to := unique.Make(dep)

			if g.forward[from] == nil {
				g.forward[from] = make(pathSet)
			}
			g.forward[from][to] = struct{}{}

			if g.reverse[to] == nil {
				g.reverse[to] = make(pathSet)
			}
			g.reverse[to][from] = struct{}{}

			if _, known := g.discovered[to]; !known {
				g.discovered[to] = struct{}{}
				if _, decl := g.declared[to]; !decl {
					g.newSinceReset[to] = struct{}{}
				}
			}
		}
		g.mu.Unlock()
	}
}

// GetDependantsOf returns every previously discovered importer of path.
// Discovery is best-effort: the result reflects exactly what has been
// resolved so far, nothing more.
func (g *Graph) GetDependantsOf(path string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedPaths(g.reverse[unique.Make(domain.NormalizePath(path))])
}

// GetDependenciesOf returns the known forward dependencies of path.
func (g *Graph) GetDependenciesOf(path string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedPaths(g.forward[unique.Make(domain.NormalizePath(path))])
}

// GetNewTargetsSinceLastReset returns targets added since the last Reset.
func (g *Graph) GetNewTargetsSinceLastReset() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedPaths(g.newSinceReset)
}

// Reset clears the "since last reset" delta marker. Recorded edges and
// targets persist.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.newSinceReset = make(pathSet)
}

// ClearImportCacheFor invalidates memoized resolution state for the given
// paths so the next AddDependencies call re-resolves current content.
func (g *Graph) ClearImportCacheFor(paths []string) {
	g.resolver.ClearCache(domain.NormalizePaths(paths))
}

// Targets returns a snapshot of every declared and discovered target.
func (g *Graph) Targets() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := make(pathSet, len(g.declared)+len(g.discovered))
	for h := range g.declared {
		all[h] = struct{}{}
	}
	for h := range g.discovered {
		all[h] = struct{}{}
	}
	return sortedPaths(all)
}

func sortedPaths(set pathSet) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h.Value())
	}
	sort.Strings(out)
	return out
}
