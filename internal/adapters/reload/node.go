package reload

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/logger"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for the live-reload server.
const NodeID graft.ID = "adapter.reload"

func init() {
	graft.Register(graft.Node[ports.Reloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Reloader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log), nil
		},
	})
}
