package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrogrid/retris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration.

Save it and pass it back with --config to customize the game:

  retris config > my-retris.yaml
  retris play --config ./my-retris.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
