package app

import (
	"context"

	"github.com/condatools/autoconda/internal/adapters/conda"   //nolint:depguard // Wired in app layer
	"github.com/condatools/autoconda/internal/adapters/envfile" //nolint:depguard // Wired in app layer
	"github.com/condatools/autoconda/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/condatools/autoconda/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			envfile.NodeID,
			conda.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			resolver, err := graft.Dep[ports.EnvironmentResolver](ctx)
			if err != nil {
				return nil, err
			}

			condaClient, err := graft.Dep[ports.Conda](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, condaClient, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}
