// Package envfile provides the environment descriptor resolver.
//
// It walks upward from a start directory looking for environment.yml
// (or environment.yaml) and extracts the environment name from it.
package envfile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/condatools/autoconda/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Locator implements ports.EnvironmentResolver.
type Locator struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewLocator creates a new Locator using the given filesystem and logger.
func NewLocator(fsys ports.FileSystem, logger ports.Logger) *Locator {
	return &Locator{
		fs:     fsys,
		logger: logger,
	}
}

// Locate walks upward from startDir and returns the path of the nearest
// environment descriptor. At each level environment.yml wins over
// environment.yaml; the two are never merged. The walk stops after
// checking the filesystem root itself and returns
// domain.ErrConfigNotFound when exhausted.
func (l *Locator) Locate(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve start directory")
	}

	currentDir := absDir
	for {
		for _, name := range []string{domain.EnvFileName, domain.EnvFileNameAlt} {
			candidate := filepath.Join(currentDir, name)
			if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, which was just checked
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "start_dir", absDir)
}

// envFileDTO mirrors the recognized top-level keys of the descriptor.
type envFileDTO struct {
	Name         string              `yaml:"name"`
	Channels     []string            `yaml:"channels"`
	Dependencies []domain.Dependency `yaml:"dependencies"`
}

// Parse reads and decodes the descriptor at path. A file that is not
// valid YAML or whose top level is not a mapping yields
// domain.ErrConfigUnparseable; read failures propagate wrapped so that
// a permission problem is never mistaken for a missing file.
func (l *Locator) Parse(path string) (*domain.Environment, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read environment file")
	}

	var dto envFileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(domain.ErrConfigUnparseable, "path", path)
	}

	return &domain.Environment{
		ConfigPath:   path,
		Name:         dto.Name,
		Channels:     dto.Channels,
		Dependencies: dto.Dependencies,
	}, nil
}

// Resolve chains Locate and Parse. A missing descriptor, an unparseable
// one and a missing name all collapse to (nil, nil): from the caller's
// perspective an unreadable config is equivalent to no config. The
// distinction survives as a diagnostic on the logger.
func (l *Locator) Resolve(startDir string) (*domain.Environment, error) {
	path, err := l.Locate(startDir)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	env, err := l.Parse(path)
	if errors.Is(err, domain.ErrConfigUnparseable) {
		l.logger.Warn(fmt.Sprintf("ignoring %s: %s", path, domain.ErrConfigUnparseable))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if env.Name == "" {
		l.logger.Warn(fmt.Sprintf("ignoring %s: %s", path, domain.ErrNameMissing))
		return nil, nil
	}

	return env, nil
}
