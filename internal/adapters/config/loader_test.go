package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kilnworks/kiln/internal/adapters/config"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_DefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	assert.Equal(t, domain.DefaultLayout(), loader.Layout())
	assert.Equal(t, "markdown", loader.Extensions()[".md"])
	assert.Equal(t, "html", loader.Extensions()[".html"])
	assert.Equal(t, "/", loader.PathPrefix())
	assert.Equal(t, 8080, loader.Port())
	assert.Empty(t, loader.LocalProjectConfigFiles())
}

func TestLoader_ReadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
pathPrefix: /docs
directories:
  input: site
  output: public
extensions:
  ".njk": nunjucks
passthrough:
  - "assets/**"
watch:
  debounceMs: 150
server:
  port: 3000
`)
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	layout := loader.Layout()
	assert.Equal(t, "site", layout.Input)
	assert.Equal(t, "public", layout.Output)
	assert.Equal(t, domain.DefaultIncludesDir, layout.Includes)
	assert.Equal(t, "/docs", loader.PathPrefix())
	assert.Equal(t, "nunjucks", loader.Extensions()[".njk"])
	// Defaults survive an extension-map extension.
	assert.Equal(t, "markdown", loader.Extensions()[".md"])
	assert.Equal(t, []string{"assets/**"}, loader.PassthroughGlobs())
	assert.Equal(t, 150, loader.DebounceWindow())
	assert.Equal(t, 3000, loader.Port())
	assert.Equal(t, []string{"./kiln.yaml"}, loader.LocalProjectConfigFiles())
}

func TestLoader_LocalOverrideWins(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
server:
  port: 3000
`)
	createFile(t, dir, domain.LocalConfigFileName, `
server:
  port: 4000
`)
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	assert.Equal(t, 4000, loader.Port())
	assert.Equal(t, []string{"./kiln.yaml", "./kiln.local.yaml"}, loader.LocalProjectConfigFiles())
}

func TestLoader_ExtendsMergesBaseFirst(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "base.yaml", `
pathPrefix: /base
server:
  port: 9000
`)
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
extends:
  - base.yaml
pathPrefix: /site
`)
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	// The declaring file wins over its base; base-only values survive.
	assert.Equal(t, "/site", loader.PathPrefix())
	assert.Equal(t, 9000, loader.Port())
	assert.Equal(t, []string{"./base.yaml", "./kiln.yaml"}, loader.LocalProjectConfigFiles())
}

func TestLoader_ExtendsChainIsFollowedTransitively(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "root.yaml", `
pathPrefix: /root
watch:
  debounceMs: 500
server:
  port: 9000
`)
	createFile(t, dir, "base.yaml", `
extends:
  - root.yaml
pathPrefix: /base
server:
  port: 9100
`)
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
extends:
  - base.yaml
pathPrefix: /site
`)
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	// Each level overrides its base; values set only at the deepest level
	// survive, and every file in the chain counts as a config entry.
	assert.Equal(t, "/site", loader.PathPrefix())
	assert.Equal(t, 9100, loader.Port())
	assert.Equal(t, 500, loader.DebounceWindow())
	assert.Equal(t, []string{"./root.yaml", "./base.yaml", "./kiln.yaml"},
		loader.LocalProjectConfigFiles())
}

func TestLoader_ExtendsCycleLoadsEachFileOnce(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "base.yaml", `
extends:
  - kiln.yaml
server:
  port: 9000
`)
	createFile(t, dir, domain.ConfigFileName, `
extends:
  - base.yaml
pathPrefix: /site
`)
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))

	assert.Equal(t, "/site", loader.PathPrefix())
	assert.Equal(t, 9000, loader.Port())
	assert.Equal(t, []string{"./base.yaml", "./kiln.yaml"},
		loader.LocalProjectConfigFiles())
}

func TestLoader_MissingExtendsTargetWarns(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
extends:
  - nowhere.yaml
server:
  port: 3000
`)
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(logger)

	require.NoError(t, loader.Init(context.Background()))
	assert.Equal(t, 3000, loader.Port())
}

func TestLoader_ParseErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "version: [unclosed")
	t.Chdir(dir)
	loader := newTestLoader(t)

	err := loader.Init(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoader_DotenvLoaded(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.EnvFileName, "KILN_TEST_DOTENV=from-dotenv\n")
	t.Chdir(dir)

	// Register restoration, then clear so godotenv actually sets it.
	t.Setenv("KILN_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("KILN_TEST_DOTENV"))

	loader := newTestLoader(t)
	require.NoError(t, loader.Init(context.Background()))

	assert.Equal(t, "from-dotenv", os.Getenv("KILN_TEST_DOTENV"))
	assert.Equal(t, []string{"./.env"}, loader.LocalProjectConfigFiles())
}

func TestLoader_PublishesEnvironmentMarkers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KILN_VERSION", "")
	t.Setenv("KILN_SOURCE", "")
	t.Setenv("KILN_RUN_MODE", "")

	loader := newTestLoader(t)
	loader.SetEnvironment(domain.Environment{
		Version: "1.2.3",
		Source:  domain.SourceCLI,
		RunMode: domain.RunModeBuild,
	})
	require.NoError(t, loader.Init(context.Background()))

	assert.Equal(t, "1.2.3", os.Getenv("KILN_VERSION"))
	assert.Equal(t, "cli", os.Getenv("KILN_SOURCE"))
	assert.Equal(t, "build", os.Getenv("KILN_RUN_MODE"))
}

func TestLoader_LifecyclePhasesInOrder(t *testing.T) {
	t.Chdir(t.TempDir())
	loader := newTestLoader(t)

	var order []string
	for _, ev := range []domain.LifecycleEvent{
		domain.EventConfig,
		domain.EventEnv,
		domain.EventExtensionMap,
		domain.EventDirectories,
	} {
		loader.Lifecycle().On(ev, func(_ context.Context, _ domain.LifecyclePayload) error {
			order = append(order, ev.String())
			return nil
		})
	}

	require.NoError(t, loader.Init(context.Background()))
	assert.Equal(t, []string{"config", "env", "extensionmap", "directories"}, order)
}

func TestLoader_InitIsIdempotentUntilReset(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "server:\n  port: 3000\n")
	t.Chdir(dir)
	loader := newTestLoader(t)

	require.NoError(t, loader.Init(context.Background()))
	require.Equal(t, 3000, loader.Port())

	createFile(t, dir, domain.ConfigFileName, "server:\n  port: 4000\n")

	// A second Init is a no-op.
	require.NoError(t, loader.Init(context.Background()))
	assert.Equal(t, 3000, loader.Port())

	// Reset reloads from scratch.
	require.NoError(t, loader.Reset(context.Background()))
	assert.Equal(t, 4000, loader.Port())
}
