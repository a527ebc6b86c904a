// Package commands implements the CLI commands for autoconda.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/condatools/autoconda/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for autoconda.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, startDir string, command []string) (int, error)
	Activate(ctx context.Context, startDir, shell string) (int, error)
	Info(ctx context.Context, startDir string, w io.Writer) error
	Environments(ctx context.Context, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "autoconda",
		Short: "Automatic conda environment management",
		Long: `Autoconda finds the nearest environment.yml by walking up the
directory tree and runs commands inside the conda environment it names.`,
		Example: `  autoconda run python script.py
  autoconda run python -c "import numpy; print(numpy.__version__)"
  autoconda run jupyter notebook
  autoconda run -- python --version`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newActivateCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newEnvsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the dispatched command, zero when
// nothing was dispatched.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// defaultStartDir materializes the process working directory once, at
// command construction. The core only ever sees an explicit path.
func defaultStartDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
