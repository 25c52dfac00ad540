package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retrogrid/retris/internal/core"
	"github.com/retrogrid/retris/internal/platform/tui"
	"github.com/retrogrid/retris/internal/storage"
	"github.com/retrogrid/retris/internal/tetris"
)

var (
	flagConfig string
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  Space/W/Up - Rotate
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  retris play
  retris play --seed 42
  retris play --config ./my-retris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log game events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "retris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tetris.SetConfigPath(flagConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game := tetris.NewGame()
	game.SetSoundSink(tui.LogSoundSink{Logger: logger})
	game.SetLogf(logger.Warnf)
	if store != nil {
		game.SetPersistenceSink(store)
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
