package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"iter"
	"os"
	"testing"
	"testing/synctest"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/app"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/kilnworks/kiln/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	config    *mocks.MockConfigSource
	logger    *mocks.MockLogger
	resolver  *mocks.MockDependencyResolver
	watcher   *mocks.MockWatcher
	reloader  *mocks.MockReloader
	telemetry *mocks.MockTelemetry
}

func setupAppTest(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		config:    mocks.NewMockConfigSource(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		resolver:  mocks.NewMockDependencyResolver(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		reloader:  mocks.NewMockReloader(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	lc := domain.NewLifecycle()
	m.config.EXPECT().SetEnvironment(gomock.Any()).AnyTimes()
	m.config.EXPECT().Init(gomock.Any()).Return(nil).AnyTimes()
	m.config.EXPECT().Lifecycle().Return(lc).AnyTimes()
	m.config.EXPECT().Layout().Return(domain.DefaultLayout()).AnyTimes()
	m.config.EXPECT().Extensions().Return(map[string]string{".md": "markdown", ".html": "html"}).AnyTimes()
	m.config.EXPECT().PassthroughGlobs().Return(nil).AnyTimes()
	m.config.EXPECT().PathPrefix().Return("/").AnyTimes()
	m.config.EXPECT().LocalProjectConfigFiles().Return(nil).AnyTimes()
	m.config.EXPECT().DebounceWindow().Return(0).AnyTimes()
	m.config.EXPECT().Port().Return(8080).AnyTimes()

	m.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	m.telemetry.EXPECT().BuildStarted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.BuildTarget, _ bool) context.Context { return ctx },
	).AnyTimes()
	m.telemetry.EXPECT().BuildFinished(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.resolver.EXPECT().ClearCache(gomock.Any()).AnyTimes()

	a := app.New(
		m.config,
		m.logger,
		fs.NewHasher(),
		fs.NewExistsIndex(),
		m.resolver,
		m.watcher,
		m.reloader,
		m.telemetry,
	)
	return a, m
}

func TestApp_BuildWritesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/index.md", []byte("# Home\n"), 0o644))
	t.Chdir(dir)

	a, _ := setupAppTest(t)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))

	out, err := os.ReadFile("_site/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Home</h1>")
}

func TestApp_BuildJSONDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/index.md", []byte("# Home\n"), 0o644))
	t.Chdir(dir)

	a, _ := setupAppTest(t)
	var buf bytes.Buffer
	a.WithStdout(&buf)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{Target: "json"}))

	var doc struct {
		Templates []domain.TemplateResult
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Templates, 1)
	assert.Equal(t, "/", doc.Templates[0].URL)
	assert.Contains(t, doc.Templates[0].Content, "<h1>Home</h1>")
	assert.NoDirExists(t, "_site")
}

func TestApp_BuildNDJSONStream(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/index.md", []byte("# Home\n"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/about.md", []byte("# About\n"), 0o644))
	t.Chdir(dir)

	a, _ := setupAppTest(t)
	var buf bytes.Buffer
	a.WithStdout(&buf)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{Target: "ndjson"}))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var result domain.TemplateResult
		require.NoError(t, json.Unmarshal(line, &result))
	}
}

func TestApp_BuildInvalidTarget(t *testing.T) {
	t.Chdir(t.TempDir())

	a, _ := setupAppTest(t)

	err := a.Build(context.Background(), app.BuildOptions{Target: "carrier-pigeon"})
	require.ErrorIs(t, err, domain.ErrInvalidBuildTarget)
}

func TestApp_BuildReportsRenderFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/broken.html", []byte("{{.Page.title"), 0o644))
	t.Chdir(dir)

	a, _ := setupAppTest(t)

	err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrBuildReported)
}

func TestApp_ServeRunsUntilCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(dir+"/index.md", []byte("# Home\n"), 0o644))
		t.Chdir(dir)

		a, m := setupAppTest(t)

		m.reloader.EXPECT().SetOutputDir(domain.DefaultOutputDir)
		m.reloader.EXPECT().WatchPassthroughCopy(gomock.Any())
		m.reloader.EXPECT().Serve(gomock.Any(), 8080).DoAndReturn(
			func(ctx context.Context, _ int) error {
				<-ctx.Done()
				return nil
			},
		)
		m.reloader.EXPECT().Close().Return(nil).AnyTimes()

		m.watcher.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
		m.watcher.EXPECT().Add(gomock.Any()).Return(nil).AnyTimes()
		m.watcher.EXPECT().Stop().Return(nil)
		m.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](
			func(func(ports.WatchEvent) bool) {},
		))

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- a.Serve(ctx, app.ServeOptions{}) }()
		synctest.Wait()

		// The initial build ran before watching started.
		_, err := os.Stat("_site/index.html")
		require.NoError(t, err)

		cancel()
		require.NoError(t, <-errCh)
	})
}
