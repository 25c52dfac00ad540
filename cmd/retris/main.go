// retris is a terminal falling-block puzzle game.
//
// Usage:
//
//	retris                   - Play (same as "retris play")
//	retris play              - Play the game
//	retris scores            - Show high scores
//	retris config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.retris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retris",
	Short: "Retris - a falling-block puzzle for your terminal",
	Long: `Retris is a terminal-based falling-block puzzle game.

Available commands:
  play     - Play the game (default when no command is given)
  scores   - View recorded scores
  config   - Print the default configuration YAML

Examples:
  retris
  retris play --seed 42
  retris play --config ./my-retris.yaml
  retris scores
  retris scores --board`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.retris/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
