package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.8},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); !approx(got, tc.expected) {
			t.Errorf("Level(%d, 0) = %f, expected %f", tc.score, got, tc.expected)
		}
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(50, 0); !approx(got, 0.75) {
		t.Errorf("Level(50, 0) = %f, expected 0.75", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := dm.Level(0, 300); !approx(got, 0.5) {
		t.Errorf("Level(0, 300) = %f, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	})
	dm.SetEnabled(false)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.Level(1000, 1000); !approx(got, 0.3) {
		t.Errorf("Level() = %f, expected 0.3", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultDodgeConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	if got := dm.Speed(cfg.Obstacles.BaseSpeed, 0, 0); !approx(got, 0.10) {
		t.Errorf("Speed() at start = %f, expected 0.10", got)
	}
	if got := dm.Speed(cfg.Obstacles.BaseSpeed, cfg.Difficulty.Progression.MaxAt, 0); !approx(got, 0.18) {
		t.Errorf("Speed() at max = %f, expected 0.18", got)
	}

	start, max := dm.SpeedRange(cfg.Obstacles.BaseSpeed)
	if !approx(start, 0.10) || !approx(max, 0.18) {
		t.Errorf("SpeedRange() = (%f, %f), expected (0.10, 0.18)", start, max)
	}

	dm.SetEnabled(false)
	start, max = dm.SpeedRange(cfg.Obstacles.BaseSpeed)
	if start != max {
		t.Errorf("SpeedRange() with progression off = (%f, %f), expected equal", start, max)
	}
}
