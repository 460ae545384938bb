package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default configuration. Speeds interpolate
// from 0.10 (easy) to 0.18 (hard) world units per tick.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: DodgeWorld{
			Width:  6.0,
			Height: 10.0,
		},
		HUD: DodgeHUD{
			Width:   480,
			Height:  800,
			Padding: 1,
		},
		Player: DodgePlayer{
			Size:         0.8,
			BoundsRadius: 0.4,
			MaxSpeed:     0.25,
		},
		Obstacles: DodgeObstacles{
			Size:          0.6,
			BoundsRadius:  0.3,
			SpawnInterval: 0.25,
			BaseSpeed:     0.1,
		},
		Score: DodgeScore{
			Interval:     1.25,
			MinIncrement: 1,
			MaxIncrement: 5,
			DisplayRate:  60,
		},
		Gameplay: DodgeGameplay{
			Lives: 3,
		},
		Render: DodgeRender{
			PlayerGlyph:   "▲",
			ObstacleGlyph: "●",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
