package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Build the specified targets and patch their manifests",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts := app.RunOptions{}

			// Only override the configured clean behavior when the flag was
			// given explicitly.
			if cmd.Flags().Changed("clean") {
				clean, _ := cmd.Flags().GetBool("clean")
				opts.Clean = &clean
			}

			opts.Scope, _ = cmd.Flags().GetString("scope")

			return c.app.Run(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().Bool("clean", true, "Remove output directories before building")
	cmd.Flags().String("scope", "", "Override the package scope for all targets")

	return cmd
}
