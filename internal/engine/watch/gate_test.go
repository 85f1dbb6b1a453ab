package watch_test

import (
	"context"
	"testing"

	"github.com/kilnworks/kiln/internal/core/ports/mocks"
	"github.com/kilnworks/kiln/internal/engine/graph"
	"github.com/kilnworks/kiln/internal/engine/watch"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupGateTest(t *testing.T, configFiles []string) (*watch.ResetGate, *graph.Graph, *mocks.MockDependencyResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)

	resolver := mocks.NewMockDependencyResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	config := mocks.NewMockConfigSource(ctrl)
	config.EXPECT().LocalProjectConfigFiles().Return(configFiles).AnyTimes()

	g := graph.New(resolver, logger)
	return watch.NewResetGate(g, config), g, resolver
}

func TestResetGate_NoConfigEntries(t *testing.T) {
	gate, _, _ := setupGateTest(t, nil)

	assert.False(t, gate.ShouldReset([]string{"kiln.yaml"}))
}

func TestResetGate_DirectConfigChange(t *testing.T) {
	gate, _, _ := setupGateTest(t, []string{"kiln.yaml", "kiln.local.yaml"})

	assert.True(t, gate.ShouldReset([]string{"posts/a.md", "kiln.local.yaml"}))
}

func TestResetGate_ConfigDependencyChange(t *testing.T) {
	gate, g, resolver := setupGateTest(t, []string{"kiln.yaml"})

	resolver.EXPECT().
		Resolve(gomock.Any(), "./kiln.yaml").
		Return([]string{"base.yaml"}, nil)
	g.AddDependencies(context.Background(), []string{"kiln.yaml"}, nil)

	assert.True(t, gate.ShouldReset([]string{"base.yaml"}))
}

func TestResetGate_TemplateChangeNeverResets(t *testing.T) {
	gate, g, resolver := setupGateTest(t, []string{"kiln.yaml"})

	// Template edges exist in the graph but are not reachable from a config
	// entry, so they must not trigger a reset.
	resolver.EXPECT().
		Resolve(gomock.Any(), "./index.md").
		Return([]string{"_includes/default.html"}, nil)
	g.AddDependencies(context.Background(), []string{"index.md"}, nil)

	assert.False(t, gate.ShouldReset([]string{"index.md", "_includes/default.html"}))
}
