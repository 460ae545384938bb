package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultDodgeConfigValid(t *testing.T) {
	cfg := DefaultDodgeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, expected nil", err)
	}

	x, y := cfg.PlayerStart()
	if math.Abs(x-2.6) > 1e-9 || math.Abs(y-0.4) > 1e-9 {
		t.Errorf("PlayerStart() = (%f, %f), expected (2.6, 0.4)", x, y)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg DodgeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("failed to parse embedded yaml: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, DefaultDodgeConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*DodgeConfig)
		expected error
	}{
		{"zero width", func(c *DodgeConfig) { c.World.Width = 0 }, ErrInvalidWorld},
		{"negative height", func(c *DodgeConfig) { c.World.Height = -1 }, ErrInvalidWorld},
		{"zero player speed", func(c *DodgeConfig) { c.Player.MaxSpeed = 0 }, ErrInvalidPlayer},
		{"player wider than world", func(c *DodgeConfig) { c.Player.Size = 7 }, ErrInvalidPlayer},
		{"zero spawn interval", func(c *DodgeConfig) { c.Obstacles.SpawnInterval = 0 }, ErrInvalidObstacles},
		{"zero fall speed", func(c *DodgeConfig) { c.Obstacles.BaseSpeed = 0 }, ErrInvalidObstacles},
		{"inverted increments", func(c *DodgeConfig) { c.Score.MinIncrement = 6 }, ErrInvalidScore},
		{"zero score interval", func(c *DodgeConfig) { c.Score.Interval = 0 }, ErrInvalidScore},
		{"no lives", func(c *DodgeConfig) { c.Gameplay.Lives = 0 }, ErrInvalidLives},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := []byte("gameplay:\n  lives: 7\nobstacles:\n  spawn_interval: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() error = %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Obstacles.SpawnInterval != 0.5 {
		t.Errorf("SpawnInterval = %f, expected 0.5", cfg.Obstacles.SpawnInterval)
	}
	// Fields absent from the file keep their defaults.
	if cfg.World.Width != 6 {
		t.Errorf("World.Width = %f, expected 6", cfg.World.Width)
	}
}

func TestLoadDodgeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDodge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadDodge(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadDodge(invalid); !errors.Is(err, ErrInvalidLives) {
		t.Errorf("LoadDodge() error = %v, expected %v", err, ErrInvalidLives)
	}
}

func TestApplyDodgePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{"", true, 0.0, 3},
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.preset.Label(), func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			ApplyDodgePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"medium", DifficultyNormal, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestPresetNext(t *testing.T) {
	if got := DifficultyEasy.Next(); got != DifficultyNormal {
		t.Errorf("Next() = %q, expected %q", got, DifficultyNormal)
	}
	if got := DifficultyFixed.Next(); got != DifficultyEasy {
		t.Errorf("Next() = %q, expected %q", got, DifficultyEasy)
	}
	if got := DifficultyPreset("").Next(); got != DifficultyEasy {
		t.Errorf("Next() = %q, expected %q", got, DifficultyEasy)
	}
	if got := DifficultyHard.Label(); got != "Hard" {
		t.Errorf("Label() = %q, expected %q", got, "Hard")
	}
}
