package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/adapters/logger"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// NodeID is the graft node ID for build telemetry.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(log), nil
		},
	})
}
