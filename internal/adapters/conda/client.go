// Package conda provides the adapter for the external conda binary.
package conda

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/condatools/autoconda/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultBinary is the conda executable name, looked up via PATH.
const DefaultBinary = "conda"

const (
	// versionProbeTimeout bounds the availability probe. The dispatched
	// command itself runs without any timeout.
	versionProbeTimeout = 10 * time.Second

	// envListTimeout bounds the environment listing query.
	envListTimeout = 30 * time.Second
)

// Client implements ports.Conda using os/exec.
type Client struct {
	binary string
}

// NewClient creates a Client invoking the default conda binary.
func NewClient() *Client {
	return NewClientWithBinary(DefaultBinary)
}

// NewClientWithBinary creates a Client invoking the given binary.
// Used by tests to substitute a stub for conda.
func NewClientWithBinary(binary string) *Client {
	return &Client{binary: binary}
}

// runArgs builds the argument vector for a scoped invocation. The
// command passes through verbatim: no shell interpretation, no
// re-tokenization, so arguments with spaces or metacharacters survive.
func runArgs(envName string, command []string) []string {
	args := []string{"run", "--name", envName, "--no-capture-output"}
	return append(args, command...)
}

// Run executes command inside the named environment. The child inherits
// this process's stdin, stdout and stderr so interactive programs keep
// direct terminal control, and runs to natural completion: the context
// is deliberately not wired to the command, so cancellation (e.g. a
// signal to this process) never kills the child. Terminal signals reach
// it through the shared process group, and a program that handles its
// own SIGINT keeps running.
//
// A nonzero exit of the child is not an error: its code is returned as
// a value. Only a spawn failure yields domain.ErrCondaUnavailable.
func (c *Client) Run(_ context.Context, envName string, command []string) (int, error) {
	cmd := exec.Command(c.binary, runArgs(envName, command)...) //nolint:gosec // user provided command
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, spawnError(err)
	}
	return 0, nil
}

// Version returns the conda version string. A failure here means conda
// is not usable, so it doubles as the availability probe.
func (c *Client) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.binary, "--version").Output()
	if err != nil {
		return "", spawnError(err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Environments lists the names of the existing conda environments via
// `conda env list --json`.
func (c *Client) Environments(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, envListTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.binary, "env", "list", "--json").Output()
	if err != nil {
		return nil, spawnError(err)
	}
	return parseEnvironments(out)
}

// EnvironmentExists reports whether the named environment exists.
func (c *Client) EnvironmentExists(ctx context.Context, name string) (bool, error) {
	envs, err := c.Environments(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(envs, name), nil
}

// parseEnvironments extracts environment names from the JSON payload of
// `conda env list --json`. Names are the base names of the environment
// paths; the literal "envs" container directory is skipped.
func parseEnvironments(data []byte) ([]string, error) {
	var payload struct {
		Envs []string `json:"envs"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, zerr.Wrap(err, "failed to parse conda environment list")
	}

	names := make([]string, 0, len(payload.Envs))
	for _, envPath := range payload.Envs {
		name := filepath.Base(envPath)
		if name != "envs" {
			names = append(names, name)
		}
	}
	return names, nil
}

// spawnError classifies a failure to start the conda binary. The
// sentinel keeps spawn failures distinguishable from a nonzero exit of
// a successfully spawned command.
func spawnError(err error) error {
	return zerr.With(domain.ErrCondaUnavailable, "cause", err.Error())
}
