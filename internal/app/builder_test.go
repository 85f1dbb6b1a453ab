package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/app"
	"github.com/stretchr/testify/require"

	_ "github.com/kilnworks/kiln/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	t.Chdir(t.TempDir())

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
