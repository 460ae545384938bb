// dodge is a terminal obstacle-dodging game: slide left and right along the
// bottom of the playfield and avoid the obstacles falling from the top.
//
// Usage:
//
//	dodge play               - Play immediately
//	dodge menu               - Menu with difficulty picker and high scores
//	dodge serve              - Start SSH server for remote play
//	dodge scores [level]     - Show high scores
//	dodge presets            - List difficulty presets
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom dodge.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/platform/tui"
	"github.com/vovakirdan/dodge/internal/storage"
)

// maxFPS keeps round(60 * tick delta) at one or more so the displayed
// score always catches up.
const maxFPS = 120

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - avoid the falling obstacles in your terminal",
	Long: `Dodge is a terminal arcade game. Move left and right along the bottom
of the playfield and avoid the obstacles falling from the top. Every hit
costs a life and clears the field; the game ends when no lives remain.

Available commands:
  play     - Start a game right away
  menu     - Interactive menu with difficulty picker and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  presets  - List difficulty presets

Examples:
  dodge play
  dodge play --difficulty hard
  dodge menu
  dodge serve --ssh :2222
  dodge scores normal`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS < 1 || flagFPS > maxFPS {
			return fmt.Errorf("--fps must be between 1 and %d, got %d", maxFPS, flagFPS)
		}
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		// Fail early on a broken config instead of silently playing defaults
		if _, err := config.LoadDodge(flagConfig); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dodge config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger returns the logger for local play. The TUI owns the terminal,
// so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// selectedPreset returns the --difficulty preset. The flag was validated
// before any command ran.
func selectedPreset() config.DifficultyPreset {
	preset, _ := config.ParsePreset(flagDifficulty)
	return preset
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openAudio starts the hit sound player unless --mute is set.
// Returns nil when sound is unavailable.
func openAudio(logger *log.Logger) *audio.Player {
	if flagMute {
		return nil
	}
	player := audio.NewPlayer(-1)
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return player
}

// localFactory creates games for the local terminal with sound and score
// storage when available.
func localFactory(store *storage.Store, sound *audio.Player, logger *log.Logger) tui.GameFactory {
	return func(preset config.DifficultyPreset) core.Game {
		settings := dodge.Settings{
			ConfigPath: flagConfig,
			Preset:     preset,
			Logger:     logger,
		}
		if store != nil {
			settings.Scores = store
		}
		if sound != nil {
			settings.Hits = sound
		}
		return dodge.New(settings)
	}
}
