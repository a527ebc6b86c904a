package fs

import (
	"context"

	"github.com/condatools/autoconda/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.filesystem"

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})
}
