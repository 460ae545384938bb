package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the game menu",
	Long: `Open the interactive menu.

Pick a difficulty with Left/Right on the Difficulty row; the best score for
that difficulty is shown next to it. Tab opens the high score table.

Controls:
  Up/Down      - Navigate
  Left/Right   - Change difficulty
  Enter        - Select
  Tab          - High scores
  Q/Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := openAudio(logger)

	runErr := tui.RunSession(store, runtimeConfig(), localFactory(store, sound, logger), selectedPreset(), logger)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}
