package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsIndex_TracksMarks(t *testing.T) {
	idx := fs.NewExistsIndex()

	known, _ := idx.Exists("posts/a.md")
	assert.False(t, known)

	idx.MarkExists("posts/a.md")
	known, exists := idx.Exists("./posts/a.md")
	assert.True(t, known)
	assert.True(t, exists)

	idx.MarkRemoved("posts/a.md")
	known, exists = idx.Exists("posts/a.md")
	assert.True(t, known)
	assert.False(t, exists)
}

func TestExistsIndex_StatFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.md"), []byte("x"), 0o644))
	t.Chdir(dir)

	idx := fs.NewExistsIndex()

	// Unknown paths hit the filesystem.
	assert.True(t, idx.StatFallback("real.md"))
	assert.False(t, idx.StatFallback("ghost.md"))

	// Index knowledge wins over the filesystem.
	idx.MarkRemoved("real.md")
	assert.False(t, idx.StatFallback("real.md"))
	idx.MarkExists("ghost.md")
	assert.True(t, idx.StatFallback("ghost.md"))
}
