// Package resolver discovers the transitive file dependencies of templates,
// stylesheets, and config files.
package resolver

import (
	"context"
	"os"
	"path"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DependencyResolver = (*Resolver)(nil)

// cacheSize bounds the per-file memoization cache.
const cacheSize = 2048

var importRe = regexp.MustCompile(`@import\s+(?:url\()?["']([^"')]+)["']`)

// Resolver parses files for references and memoizes the direct dependencies
// of each path. Stylesheets contribute @import targets, templates contribute
// their front-matter layout, and config files contribute their extends list.
type Resolver struct {
	config ports.ConfigSource
	cache  *lru.Cache[string, []string]
}

// New creates a resolver. The config source supplies the includes directory
// used to resolve layout references.
func New(config ports.ConfigSource) (*Resolver, error) {
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create resolution cache")
	}
	return &Resolver{config: config, cache: cache}, nil
}

// Resolve returns the transitive dependency closure of p, normalized.
func (r *Resolver) Resolve(ctx context.Context, p string) ([]string, error) {
	p = domain.NormalizePath(p)

	visited := map[string]struct{}{p: {}}
	queue := []string{p}
	var closure []string

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue[0]
		queue = queue[1:]

		deps, err := r.direct(current)
		if err != nil {
			if current == p {
				return nil, err
			}
			// Transitive reads are best-effort; the missing branch simply
			// stays unknown.
			continue
		}
		for _, dep := range deps {
			if _, ok := visited[dep]; ok {
				continue
			}
			visited[dep] = struct{}{}
			closure = append(closure, dep)
			queue = append(queue, dep)
		}
	}
	return closure, nil
}

// ClearCache drops memoized direct dependencies for the given paths.
func (r *Resolver) ClearCache(paths []string) {
	for _, p := range paths {
		r.cache.Remove(domain.NormalizePath(p))
	}
}

// direct returns the memoized direct dependencies of p, parsing the file on
// a cache miss.
func (r *Resolver) direct(p string) ([]string, error) {
	if deps, ok := r.cache.Get(p); ok {
		return deps, nil
	}

	content, err := os.ReadFile(domain.StripLeadingDotSlash(p))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "file", p)
	}

	var deps []string
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".css":
		deps = r.styleImports(p, content)
	case ".yaml", ".yml":
		deps = r.configExtends(p, content)
	default:
		if _, isTemplate := r.config.Extensions()[ext]; isTemplate {
			deps = r.layoutRef(content)
		}
	}

	r.cache.Add(p, deps)
	return deps, nil
}

// styleImports extracts @import targets, resolved relative to p's directory.
func (r *Resolver) styleImports(p string, content []byte) []string {
	var deps []string
	for _, m := range importRe.FindAllSubmatch(content, -1) {
		target := string(m[1])
		if strings.Contains(target, "://") {
			continue
		}
		if path.Ext(target) == "" {
			target += ".css"
		}
		deps = append(deps, domain.NormalizePath(path.Join(path.Dir(p), target)))
	}
	return deps
}

// configExtends reads the extends list of a config file.
func (r *Resolver) configExtends(p string, content []byte) []string {
	var doc struct {
		Extends []string `yaml:"extends"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil
	}
	var deps []string
	for _, target := range doc.Extends {
		deps = append(deps, domain.NormalizePath(path.Join(path.Dir(p), target)))
	}
	return deps
}

// layoutRef extracts the front-matter layout reference of a template,
// resolved into the includes directory.
func (r *Resolver) layoutRef(content []byte) []string {
	fm, ok := frontMatter(content)
	if !ok {
		return nil
	}
	var doc struct {
		Layout string `yaml:"layout"`
	}
	if err := yaml.Unmarshal(fm, &doc); err != nil || doc.Layout == "" {
		return nil
	}
	layout := doc.Layout
	if path.Ext(layout) == "" {
		layout += ".html"
	}
	includes := r.config.Layout().IncludesPath()
	return []string{domain.NormalizePath(path.Join(domain.StripLeadingDotSlash(includes), layout))}
}

// frontMatter returns the YAML block delimited by "---" lines at the top of
// content, if present.
func frontMatter(content []byte) ([]byte, bool) {
	s := string(content)
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return nil, false
	}
	rest := s[strings.Index(s, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, false
	}
	return []byte(rest[:end]), true
}
