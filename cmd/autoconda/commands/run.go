package commands

import (
	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command in the resolved conda environment",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrEmptyCommand
			}
			path, _ := cmd.Flags().GetString("path")

			code, err := c.app.Run(cmd.Context(), path, args)
			if err != nil {
				return err
			}
			c.exitCode = code
			return nil
		},
	}
	cmd.Flags().StringP("path", "p", defaultStartDir(), "Path to start searching for environment.yml")
	// Flags after the command belong to the command, not to autoconda
	cmd.Flags().SetInterspersed(false)
	return cmd
}
