// Package domain contains the core value types for kiln.
package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath converts p to the canonical project-relative form: forward
// slashes, cleaned, with a leading "./" for relative paths. All queue, graph,
// and config-set membership tests operate on normalized paths so platform
// separator differences cannot cause a mismatch.
func NormalizePath(p string) string {
	p = filepath.ToSlash(p)
	p = path.Clean(p)

	if p == "." {
		return "./"
	}
	if strings.HasPrefix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") {
		return p
	}
	return "./" + p
}

// NormalizePaths normalizes every path in ps, preserving order.
func NormalizePaths(ps []string) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = NormalizePath(p)
	}
	return out
}

// StripLeadingDotSlash removes the "./" prefix, if present. Useful when
// joining a normalized path onto a directory.
func StripLeadingDotSlash(p string) string {
	return strings.TrimPrefix(p, "./")
}

// IsStylesheet reports whether p has a recognized stylesheet extension.
func IsStylesheet(p string) bool {
	return strings.EqualFold(path.Ext(p), ".css")
}

// IsWithin reports whether p lies under dir. Both arguments are normalized
// before comparison.
func IsWithin(dir, p string) bool {
	dir = StripLeadingDotSlash(NormalizePath(dir))
	p = StripLeadingDotSlash(NormalizePath(p))
	if dir == "" {
		return true
	}
	return p == dir || strings.HasPrefix(p, dir+"/")
}
