package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_FileAndBytesAgree(t *testing.T) {
	dir := t.TempDir()
	content := []byte("body { margin: 0; }\n")
	path := filepath.Join(dir, "style.css")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h := fs.NewHasher()

	fromFile, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h.HashBytes(content), fromFile)
	assert.NotEqual(t, fromFile, h.HashBytes([]byte("something else")))
}

func TestHasher_MissingFile(t *testing.T) {
	h := fs.NewHasher()
	_, err := h.HashFile(filepath.Join(t.TempDir(), "ghost.css"))
	require.Error(t, err)
}
