package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/board-engine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration YAML. Save it to ~/.board/config.yaml
or ./configs/board.yaml and edit it to override the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
