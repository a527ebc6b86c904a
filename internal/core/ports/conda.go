package ports

import "context"

// Conda is the narrow interface to the external environment-management
// tool. Alternative back ends can be substituted without touching the
// resolver.
//
//go:generate go run go.uber.org/mock/mockgen -source=conda.go -destination=mocks/mock_conda.go -package=mocks
type Conda interface {
	// Run executes command inside the named environment with inherited
	// stdio and blocks until it exits. Context cancellation does not
	// interrupt the child: it always runs to natural completion. The
	// child's exit code is returned as a value; the error is reserved
	// for spawn failures (domain.ErrCondaUnavailable).
	Run(ctx context.Context, envName string, command []string) (int, error)

	// Version returns the tool's version string. It doubles as the
	// availability probe.
	Version(ctx context.Context) (string, error)

	// Environments lists the names of the existing environments.
	Environments(ctx context.Context) ([]string, error)

	// EnvironmentExists reports whether the named environment exists.
	EnvironmentExists(ctx context.Context, name string) (bool, error)
}
