// Package app implements the application layer for autoconda.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/condatools/autoconda/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver ports.EnvironmentResolver
	conda    ports.Conda
	logger   ports.Logger
}

// New creates a new App instance.
func New(resolver ports.EnvironmentResolver, conda ports.Conda, logger ports.Logger) *App {
	return &App{
		resolver: resolver,
		conda:    conda,
		logger:   logger,
	}
}

// Run resolves the environment name starting at startDir and dispatches
// command to conda, returning the child's exit code. No subprocess is
// ever launched without a resolved name.
func (a *App) Run(ctx context.Context, startDir string, command []string) (int, error) {
	if len(command) == 0 {
		return 0, domain.ErrEmptyCommand
	}

	env, err := a.resolver.Resolve(startDir)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to resolve environment")
	}
	if env == nil {
		return 0, domain.ErrNoEnvironment
	}

	a.logger.Info(fmt.Sprintf("running command in conda environment '%s': %s", env.Name, strings.Join(command, " ")))
	return a.conda.Run(ctx, env.Name, command)
}

// Activate spawns an interactive shell inside the resolved environment.
// Unlike Run it verifies the environment exists first, since a missing
// environment would otherwise fail confusingly late inside the shell.
func (a *App) Activate(ctx context.Context, startDir, shell string) (int, error) {
	env, err := a.resolver.Resolve(startDir)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to resolve environment")
	}
	if env == nil {
		return 0, domain.ErrNoEnvironment
	}

	exists, err := a.conda.EnvironmentExists(ctx, env.Name)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, zerr.With(domain.ErrEnvironmentNotFound, "environment", env.Name)
	}

	a.logger.Info(fmt.Sprintf("activating conda environment '%s'", env.Name))
	return a.conda.Run(ctx, env.Name, []string{filepath.Base(shell)})
}

// Info writes a report about the resolved environment to w: descriptor
// location and contents, plus the conda side of the picture. The conda
// version and environment list are independent probes, gathered
// concurrently. Conda being unavailable degrades to a note rather than
// an error, so the descriptor part of the report always prints.
func (a *App) Info(ctx context.Context, startDir string, w io.Writer) error {
	env, err := a.resolver.Resolve(startDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve environment")
	}
	if env == nil {
		return domain.ErrNoEnvironment
	}

	fmt.Fprintf(w, "name: %s\n", env.Name)
	fmt.Fprintf(w, "config: %s\n", env.ConfigPath)
	if len(env.Channels) > 0 {
		fmt.Fprintf(w, "channels: %s\n", strings.Join(env.Channels, ", "))
	}
	if len(env.Dependencies) > 0 {
		fmt.Fprintln(w, "dependencies:")
		for _, dep := range env.Dependencies {
			fmt.Fprintf(w, "  - %s\n", dep)
		}
	}

	var (
		version string
		envs    []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := a.conda.Version(gctx)
		version = v
		return err
	})
	g.Go(func() error {
		e, err := a.conda.Environments(gctx)
		envs = e
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintln(w, "conda: not available")
		return nil
	}

	fmt.Fprintf(w, "conda: %s\n", version)
	fmt.Fprintf(w, "created: %t\n", slices.Contains(envs, env.Name))
	return nil
}

// Environments writes the names of the existing conda environments to
// w, one per line.
func (a *App) Environments(ctx context.Context, w io.Writer) error {
	envs, err := a.conda.Environments(ctx)
	if err != nil {
		return err
	}
	for _, name := range envs {
		fmt.Fprintln(w, name)
	}
	return nil
}
