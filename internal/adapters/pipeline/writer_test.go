package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/adapters/pipeline"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupWriterTest(t *testing.T, passthrough []string) *pipeline.Writer {
	t.Helper()
	ctrl := gomock.NewController(t)

	config := mocks.NewMockConfigSource(ctrl)
	config.EXPECT().Layout().Return(domain.DefaultLayout()).AnyTimes()
	config.EXPECT().Extensions().Return(map[string]string{".md": "markdown", ".html": "html"}).AnyTimes()
	config.EXPECT().PassthroughGlobs().Return(passthrough).AnyTimes()
	config.EXPECT().PathPrefix().Return("/").AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return pipeline.NewWriter(config, logger, fs.NewHasher())
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func readOutput(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(raw)
}

func TestWriter_RendersMarkdownWithPrettyURLs(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	writeInput(t, dir, "about.md", "# About\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	rec, err := w.Write(context.Background())
	require.NoError(t, err)

	assert.Contains(t, readOutput(t, "_site/index.html"), "<h1>Home</h1>")
	assert.Contains(t, readOutput(t, "_site/about/index.html"), "<h1>About</h1>")

	require.Len(t, rec.Templates, 2)
	urls := []string{rec.Templates[0].URL, rec.Templates[1].URL}
	assert.ElementsMatch(t, []string{"/", "/about/"}, urls)
	assert.Equal(t, 2, rec.Counts.Written)
}

func TestWriter_AppliesLayoutFromIncludes(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "---\nlayout: default\ntitle: Welcome\n---\n# Hello\n")
	writeInput(t, dir, "_includes/default.html",
		"<html><head><title>{{.Page.title}}</title></head><body>{{.Content}}</body></html>")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	_, err := w.Write(context.Background())
	require.NoError(t, err)

	out := readOutput(t, "_site/index.html")
	assert.Contains(t, out, "<title>Welcome</title>")
	assert.Contains(t, out, "<h1>Hello</h1>")
}

func TestWriter_SkipsUnchangedContentOnSecondPass(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)

	rec, err := w.Write(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, rec.Counts.Written)

	rec, err = w.Write(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Counts.Written)
	assert.Equal(t, 1, rec.Counts.Skipped)
}

func TestWriter_InitialBuildDiscardsHashes(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	_, err := w.Write(context.Background())
	require.NoError(t, err)

	w.SetRunInitialBuild(true)
	rec, err := w.Write(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Counts.Written)
}

func TestWriter_IncrementalNarrowsToOneTemplate(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	writeInput(t, dir, "about.md", "# About\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	w.SetIncrementalBuild(true)
	w.SetIncrementalFile("about.md")

	rec, err := w.Write(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Counts.Written)
	assert.Equal(t, 1, rec.Counts.Skipped)
	assert.NoFileExists(t, "_site/index.html")
	assert.FileExists(t, "_site/about/index.html")

	w.ResetIncrementalFile()
	rec, err = w.Write(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, "_site/index.html")
	assert.Equal(t, 1, rec.Counts.Written)
}

func TestWriter_PassthroughCopiesAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	writeInput(t, dir, "assets/style.css", "body { margin: 0; }\n")
	t.Chdir(dir)

	w := setupWriterTest(t, []string{"assets/*.css"})

	rec, err := w.Write(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "body { margin: 0; }\n", readOutput(t, "_site/assets/style.css"))
	require.Len(t, rec.Copies, 1)
	assert.False(t, rec.Copies[0].Skipped)
	assert.Equal(t, 1, rec.Counts.Copied)

	rec, err = w.Write(context.Background())
	require.NoError(t, err)
	require.Len(t, rec.Copies, 1)
	assert.True(t, rec.Copies[0].Skipped)
	assert.Equal(t, 0, rec.Counts.Copied)
}

func TestWriter_DataAvailableToTemplates(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "_data/site.yaml", "title: Kiln\n")
	writeInput(t, dir, "page.html", "<p>{{.Data.site.title}}</p>")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	_, err := w.Write(context.Background())
	require.NoError(t, err)

	assert.Contains(t, readOutput(t, "_site/page/index.html"), "<p>Kiln</p>")
}

func TestWriter_DocumentTargetKeepsContentInMemory(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	rec, err := w.Document(context.Background(), domain.ModeJSON, nil)
	require.NoError(t, err)

	require.Len(t, rec.Templates, 1)
	assert.Contains(t, rec.Templates[0].Content, "<h1>Home</h1>")
	assert.NoDirExists(t, "_site")
}

func TestWriter_StreamTargetEmitsNDJSON(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	writeInput(t, dir, "about.md", "# About\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	var buf bytes.Buffer
	rec, err := w.Document(context.Background(), domain.ModeNDJSON, &buf)
	require.NoError(t, err)
	require.Equal(t, 2, rec.Counts.Written)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var result domain.TemplateResult
		require.NoError(t, json.Unmarshal(line, &result))
		assert.NotEmpty(t, result.URL)
	}
	assert.NoDirExists(t, "_site")
}

func TestWriter_DotfilesAndIncludesAreNotInputs(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "index.md", "# Home\n")
	writeInput(t, dir, ".draft.md", "# Hidden\n")
	writeInput(t, dir, "_includes/default.html", "<body>{{.Content}}</body>")
	writeInput(t, dir, "_data/site.yaml", "title: Kiln\n")
	t.Chdir(dir)

	w := setupWriterTest(t, nil)
	rec, err := w.Write(context.Background())
	require.NoError(t, err)

	require.Len(t, rec.Templates, 1)
	assert.Equal(t, "./index.md", rec.Templates[0].InputPath)
}
