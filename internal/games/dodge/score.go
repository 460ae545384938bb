package dodge

import (
	"math"
	"math/rand"
)

// DefaultDisplayRate is how many points per second the displayed score
// catches up with the true score.
const DefaultDisplayRate = 60.0

// Score tracks the true score, which grows by a random amount on a timer,
// and the displayed score, which animates toward it.
type Score struct {
	value     int
	displayed int
	timer     float64

	interval    float64
	minInc      int
	maxInc      int
	displayRate float64
	rng         *rand.Rand
}

// ScoreConfig holds the fixed parameters of a Score.
type ScoreConfig struct {
	Interval     float64 // Seconds between increments
	MinIncrement int     // Inclusive
	MaxIncrement int     // Inclusive
	DisplayRate  float64 // Points per second; DefaultDisplayRate when <= 0
}

// NewScore creates a zeroed score.
func NewScore(cfg ScoreConfig, rng *rand.Rand) *Score {
	rate := cfg.DisplayRate
	if rate <= 0 {
		rate = DefaultDisplayRate
	}
	maxInc := cfg.MaxIncrement
	if maxInc < cfg.MinIncrement {
		maxInc = cfg.MinIncrement
	}
	return &Score{
		interval:    cfg.Interval,
		minInc:      cfg.MinIncrement,
		maxInc:      maxInc,
		displayRate: rate,
		rng:         rng,
	}
}

// Update advances the score timer and adds a random increment once the
// interval has passed.
func (s *Score) Update(delta float64) {
	s.timer += delta
	if s.timer < s.interval {
		return
	}
	s.value += s.minInc + s.rng.Intn(s.maxInc-s.minInc+1)
	s.timer = 0
}

// Animate moves the displayed score toward the true score without
// overshooting it.
func (s *Score) Animate(delta float64) {
	if s.displayed >= s.value {
		return
	}
	step := int(math.Round(s.displayRate * delta))
	s.displayed += min(s.value-s.displayed, step)
}

// Value returns the true score.
func (s *Score) Value() int {
	return s.value
}

// Displayed returns the animated score shown in the HUD.
func (s *Score) Displayed() int {
	return s.displayed
}

// Set overrides the true score. The displayed score is left to catch up.
func (s *Score) Set(value int) {
	s.value = value
}
