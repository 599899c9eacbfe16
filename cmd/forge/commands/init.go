package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/adapters/config"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			if err := config.WriteStarter(path); err != nil {
				return err
			}

			cmd.Println("wrote " + path)
			return nil
		},
	}
}
