// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/kilnworks/kiln/internal/adapters/config"
	_ "github.com/kilnworks/kiln/internal/adapters/fs"
	_ "github.com/kilnworks/kiln/internal/adapters/logger"
	_ "github.com/kilnworks/kiln/internal/adapters/reload"
	_ "github.com/kilnworks/kiln/internal/adapters/resolver"
	_ "github.com/kilnworks/kiln/internal/adapters/telemetry"
	_ "github.com/kilnworks/kiln/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/kilnworks/kiln/internal/app"
)
