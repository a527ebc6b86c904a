package conda

import (
	"context"

	"github.com/condatools/autoconda/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.Conda]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Conda, error) {
			return NewClient(), nil
		},
	})
}
