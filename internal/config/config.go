// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DodgeConfig contains all configuration for the obstacle dodge game.
// The simulation reads it but never mutates it.
type DodgeConfig struct {
	World      DodgeWorld       `yaml:"world"`
	HUD        DodgeHUD         `yaml:"hud"`
	Player     DodgePlayer      `yaml:"player"`
	Obstacles  DodgeObstacles   `yaml:"obstacles"`
	Score      DodgeScore       `yaml:"score"`
	Gameplay   DodgeGameplay    `yaml:"gameplay"`
	Render     DodgeRender      `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgeWorld defines the playfield size in world units.
type DodgeWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgeHUD defines the HUD reference resolution. Its aspect ratio shapes
// the playfield on screen.
type DodgeHUD struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Padding int `yaml:"padding"`
}

// DodgePlayer defines player parameters.
type DodgePlayer struct {
	Size         float64 `yaml:"size"`
	BoundsRadius float64 `yaml:"bounds_radius"`
	MaxSpeed     float64 `yaml:"max_speed"` // World units per tick
}

// DodgeObstacles defines obstacle parameters.
type DodgeObstacles struct {
	Size          float64 `yaml:"size"`
	BoundsRadius  float64 `yaml:"bounds_radius"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	BaseSpeed     float64 `yaml:"base_speed"`     // World units per tick at level 0
}

// DodgeScore defines how the score grows over time.
type DodgeScore struct {
	Interval     float64 `yaml:"interval"`      // Seconds between increments
	MinIncrement int     `yaml:"min_increment"` // Inclusive
	MaxIncrement int     `yaml:"max_increment"` // Inclusive
	DisplayRate  float64 `yaml:"display_rate"`  // Displayed score catch-up per second
}

// DodgeGameplay defines round rules.
type DodgeGameplay struct {
	Lives int `yaml:"lives"`
}

// DodgeRender defines glyphs used to draw entities.
type DodgeRender struct {
	PlayerGlyph   string `yaml:"player_glyph"`
	ObstacleGlyph string `yaml:"obstacle_glyph"`
}

// Validation errors.
var (
	ErrInvalidWorld     = errors.New("config: world width and height must be positive")
	ErrInvalidPlayer    = errors.New("config: player size and speed must be positive")
	ErrInvalidObstacles = errors.New("config: obstacle size, spawn interval and speed must be positive")
	ErrInvalidScore     = errors.New("config: score interval must be positive and increments ordered")
	ErrInvalidLives     = errors.New("config: lives must be at least 1")
)

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return ErrInvalidWorld
	}
	if c.Player.Size <= 0 || c.Player.BoundsRadius < 0 || c.Player.MaxSpeed <= 0 {
		return ErrInvalidPlayer
	}
	if c.Player.Size > c.World.Width {
		return fmt.Errorf("%w: player size %.2f exceeds world width %.2f",
			ErrInvalidPlayer, c.Player.Size, c.World.Width)
	}
	if c.Obstacles.Size <= 0 || c.Obstacles.BoundsRadius < 0 ||
		c.Obstacles.SpawnInterval <= 0 || c.Obstacles.BaseSpeed <= 0 {
		return ErrInvalidObstacles
	}
	if c.Obstacles.Size > c.World.Width {
		return fmt.Errorf("%w: obstacle size %.2f exceeds world width %.2f",
			ErrInvalidObstacles, c.Obstacles.Size, c.World.Width)
	}
	if c.Score.Interval <= 0 || c.Score.MinIncrement < 0 || c.Score.MaxIncrement < c.Score.MinIncrement {
		return ErrInvalidScore
	}
	if c.Gameplay.Lives < 1 {
		return ErrInvalidLives
	}
	return nil
}

// PlayerStart returns the player's starting position: horizontally centered,
// lifted half a body above the bottom edge.
func (c DodgeConfig) PlayerStart() (x, y float64) {
	return (c.World.Width - c.Player.Size) / 2, c.Player.Size / 2
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user-supplied name into a preset.
// An empty name yields the empty preset, meaning "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return "", nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal, "medium":
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Next returns the preset after p in menu order, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	all := Presets()
	for i, preset := range all {
		if preset == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Label returns the display name for the preset.
func (p DifficultyPreset) Label() string {
	if p == "" {
		return "Default"
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
