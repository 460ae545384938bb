package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  P/Esc      - Pause
  R          - Restart (after game over)
  B/Esc      - Leave (when paused or game over)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slowest start, 5 lives
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, 2 lives
  fixed  - No progression, stays at config's initial level

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --difficulty fixed --seed 42
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := openAudio(logger)

	game := localFactory(store, sound, logger)(selectedPreset())
	runErr := tui.Run(game, runtimeConfig(), logger)

	// Release resources before potential exit
	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
