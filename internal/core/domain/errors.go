package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no environment descriptor exists
	// between the start directory and the filesystem root.
	ErrConfigNotFound = zerr.New("no environment.yml found")

	// ErrConfigUnparseable is returned when a descriptor exists but is not
	// valid YAML or its top level is not a mapping.
	ErrConfigUnparseable = zerr.New("environment file is not a valid YAML mapping")

	// ErrNameMissing is returned when a valid descriptor has no string
	// "name" key.
	ErrNameMissing = zerr.New("environment file has no name field")

	// ErrNoEnvironment is the user-facing resolution failure: no usable
	// environment name could be determined from the start directory.
	ErrNoEnvironment = zerr.New("no environment.yml file found or no environment name specified in the file")

	// ErrEmptyCommand is returned when the run command receives no command
	// vector. It maps to the usage exit code.
	ErrEmptyCommand = zerr.New("no command specified")

	// ErrCondaUnavailable is returned when the conda binary cannot be found
	// or spawned. It is never conflated with a nonzero exit of a
	// successfully spawned command.
	ErrCondaUnavailable = zerr.New("conda is not available in the system")

	// ErrEnvironmentNotFound is returned by activate when the resolved
	// environment does not exist in conda.
	ErrEnvironmentNotFound = zerr.New("environment does not exist")
)

// Exit codes of the autoconda binary. Anything else is the forwarded
// exit code of the dispatched command.
const (
	// ExitFailure covers resolution failures, conda spawn failures and
	// internal errors.
	ExitFailure = 1

	// ExitUsage is returned for an empty command vector.
	ExitUsage = 2
)
