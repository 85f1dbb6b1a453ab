package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/logger"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for the configuration loader.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
