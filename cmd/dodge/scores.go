package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/platform/tui"
	"github.com/vovakirdan/dodge/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores. Scores are kept per difficulty:
easy, normal, hard, fixed, and custom for games played without a preset.
Without an argument every difficulty that has been played is shown.

Examples:
  dodge scores
  dodge scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	tabs := tui.ScoreTabs()
	if len(args) == 1 {
		if !slices.Contains(tabs, args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintf(os.Stderr, "Valid difficulties: %v\n", tabs)
			os.Exit(1)
		}
		tabs = []string{args[0]}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetDifficultyStats(dodge.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	shown := 0
	for _, difficulty := range tabs {
		// Only list unplayed difficulties when asked for by name
		if stats[difficulty] == nil && len(args) == 0 {
			continue
		}
		if err := printScores(store, difficulty, stats[difficulty]); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		shown++
	}

	if shown == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
	}
}

// printScores prints the top scores table for one difficulty.
func printScores(store *storage.Store, difficulty string, stats *storage.GameStats) error {
	scores, err := store.TopScores(dodge.GameID, difficulty, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - Obstacle Dodge (%s)\n", difficulty)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats != nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		fmt.Println()
	}
	return nil
}
