package envfile

import (
	"context"

	"github.com/condatools/autoconda/internal/adapters/fs"
	"github.com/condatools/autoconda/internal/adapters/logger"
	"github.com/condatools/autoconda/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.env_resolver"

func init() {
	graft.Register(graft.Node[ports.EnvironmentResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(fsys, log), nil
		},
	})
}
