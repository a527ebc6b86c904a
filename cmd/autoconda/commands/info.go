package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the resolved environment and conda status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			return c.app.Info(cmd.Context(), path, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("path", "p", defaultStartDir(), "Path to start searching for environment.yml")
	return cmd
}

func (c *CLI) newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List the existing conda environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Environments(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
