package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows every difficulty preset with its lives and obstacle fall speeds
(world units per tick) as resolved against the active config.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	base, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-11s  %s\n", "Preset", "Lives", "Start speed", "Max speed")
	fmt.Printf("  %-8s  %-5s  %-11s  %s\n", "------", "-----", "-----------", "---------")

	presets := append([]config.DifficultyPreset{""}, config.Presets()...)
	for _, preset := range presets {
		cfg := base
		config.ApplyDodgePreset(&cfg, preset)
		start, top := config.NewDifficultyManager(cfg.Difficulty).SpeedRange(cfg.Obstacles.BaseSpeed)
		fmt.Printf("  %-8s  %-5d  %-11.3f  %.3f\n", preset.Label(), cfg.Gameplay.Lives, start, top)
	}

	fmt.Println()
	fmt.Println("Run 'dodge play --difficulty <preset>' to play one.")
}
