package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/config"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for the dependency resolver.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			cfg, err := graft.Dep[ports.ConfigSource](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg)
		},
	})
}
