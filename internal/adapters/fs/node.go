package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kilnworks/kiln/internal/core/ports"
)

const (
	// ExistsIndexNodeID is the graft node ID for the existence index.
	ExistsIndexNodeID graft.ID = "adapter.exists_index"
	// HasherNodeID is the graft node ID for the content hasher.
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ExistsIndex]{
		ID:        ExistsIndexNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExistsIndex, error) {
			return NewExistsIndex(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
