package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newActivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Spawn an interactive shell in the resolved conda environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			shell, _ := cmd.Flags().GetString("shell")

			code, err := c.app.Activate(cmd.Context(), path, shell)
			if err != nil {
				return err
			}
			c.exitCode = code
			return nil
		},
	}
	cmd.Flags().StringP("path", "p", defaultStartDir(), "Path to start searching for environment.yml")
	cmd.Flags().String("shell", defaultShell(), "Shell to spawn inside the environment")
	return cmd
}

func defaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}
