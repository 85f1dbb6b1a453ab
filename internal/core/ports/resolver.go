package ports

import "context"

// DependencyResolver resolves the transitive dependency closure of a file.
// Resolution is best-effort: a failure for one path degrades to "dependency
// unknown" for that path and never aborts the caller's cycle.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the normalized transitive dependencies of path.
	Resolve(ctx context.Context, path string) ([]string, error)

	// ClearCache drops any memoized resolution state for the given paths so
	// the next Resolve re-reads current content.
	ClearCache(paths []string)
}
