package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/config"
	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/adapters/logger"
	"github.com/kilnworks/kiln/internal/adapters/reload"
	"github.com/kilnworks/kiln/internal/adapters/resolver"
	"github.com/kilnworks/kiln/internal/adapters/telemetry"
	"github.com/kilnworks/kiln/internal/adapters/watcher"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for the assembled application components.
const NodeID graft.ID = "app.components"

// Components is the root of the dependency graph: everything the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.HasherNodeID,
			fs.ExistsIndexNodeID,
			resolver.NodeID,
			watcher.NodeID,
			reload.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[ports.ConfigSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			exists, err := graft.Dep[ports.ExistsIndex](ctx)
			if err != nil {
				return nil, err
			}
			deps, err := graft.Dep[ports.DependencyResolver](ctx)
			if err != nil {
				return nil, err
			}
			fsw, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			reloader, err := graft.Dep[ports.Reloader](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(cfg, log, hasher, exists, deps, fsw, reloader, tel),
				Logger: log,
			}, nil
		},
	})
}
