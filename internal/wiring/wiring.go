// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/condatools/autoconda/internal/adapters/conda"
	_ "github.com/condatools/autoconda/internal/adapters/envfile"
	_ "github.com/condatools/autoconda/internal/adapters/fs"
	_ "github.com/condatools/autoconda/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/condatools/autoconda/internal/app"
)
