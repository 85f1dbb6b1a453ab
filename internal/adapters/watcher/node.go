package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/config"
	"github.com/kilnworks/kiln/internal/adapters/logger"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for the file watcher.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			cfg, err := graft.Dep[ports.ConfigSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(cfg.Layout().Output, log)
		},
	})
}
