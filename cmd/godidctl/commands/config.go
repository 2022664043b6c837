package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openflightid/godid/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with godidbroadcast configuration files",
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print a sample godidbroadcast configuration in YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := config.Sample()
			if err != nil {
				return fmt.Errorf("render sample config: %w", err)
			}
			fmt.Print(doc)
			return nil
		},
	}
}
