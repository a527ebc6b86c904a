// Package ports defines the core interfaces for the application.
package ports

import "github.com/condatools/autoconda/internal/core/domain"

// EnvironmentResolver locates and parses the nearest environment
// descriptor file.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type EnvironmentResolver interface {
	// Resolve walks upward from startDir and returns the nearest parsed
	// environment, or nil when no descriptor with a usable name exists
	// anywhere up to the filesystem root. Only unexpected failures (e.g.
	// an unreadable file) are returned as errors.
	Resolve(startDir string) (*domain.Environment, error)
}
