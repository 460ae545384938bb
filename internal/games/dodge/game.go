// Package dodge implements an obstacle avoidance game.
// The player slides left and right along the bottom of a vertical playfield
// while circular obstacles fall from the top. Touching one costs a life and
// clears the field; the game ends when no lives remain.
package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "dodge"

// ScoreStore persists final scores per difficulty.
type ScoreStore interface {
	SaveScore(gameID, difficulty string, score int) (int64, error)
}

// Settings configure a Game. The zero value plays with the embedded
// defaults, no sound and no score storage.
type Settings struct {
	ConfigPath string                  // Optional YAML override
	Preset     config.DifficultyPreset // Empty keeps the config's difficulty
	Logger     *log.Logger
	Hits       HitListener
	Scores     ScoreStore
}

// Game adapts a Simulation to core.Game: it loads configuration, applies the
// difficulty preset, handles pause and maps input to movement intent.
type Game struct {
	settings Settings
	logger   *log.Logger

	cfg        config.DodgeConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	sim        *Simulation

	paused        bool
	tickCount     int
	warnedMissing bool
}

// New creates a new dodge game instance.
func New(settings Settings) *Game {
	logger := settings.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings: settings,
		logger:   logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Obstacle Dodge"
}

// Preset returns the difficulty preset applied on the next Reset.
func (g *Game) Preset() config.DifficultyPreset {
	return g.settings.Preset
}

// SetPreset changes the difficulty preset. It takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.settings.Preset = p
}

// DifficultyKey returns the name scores are filed under for the current preset.
func (g *Game) DifficultyKey() string {
	return DifficultyKey(g.settings.Preset)
}

// DifficultyKey returns the score table key for a preset. Games started
// without a preset use whatever the config file says and are filed as custom.
func DifficultyKey(p config.DifficultyPreset) string {
	if p == "" {
		return "custom"
	}
	return string(p)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.tickCount = 0
	g.warnedMissing = false

	cfg, err := config.LoadDodge(g.settings.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "path", g.settings.ConfigPath, "err", err)
		cfg = config.DefaultDodgeConfig()
	}
	config.ApplyDodgePreset(&cfg, g.settings.Preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deps := Deps{
		Rand:   rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		Speed:  SpeedFunc(g.obstacleSpeed),
		Hits:   g.settings.Hits,
		Logger: g.logger,
	}
	if g.settings.Scores != nil {
		deps.Scores = &storeRecorder{
			store:      g.settings.Scores,
			difficulty: g.DifficultyKey(),
			logger:     g.logger,
		}
	}
	g.sim = NewSimulation(cfg, deps)

	g.logger.Debug("game reset",
		"difficulty", g.DifficultyKey(),
		"lives", cfg.Gameplay.Lives,
		"seed", seed,
	)
}

// obstacleSpeed returns the fall speed for the next spawned obstacle.
func (g *Game) obstacleSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Obstacles.BaseSpeed, g.sim.Score(), g.tickCount)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	res := g.sim.Step(g.runtime.TickDelta(), in.Intent())

	return core.StepResult{
		State:    g.State(),
		Collided: res.Collided,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Level returns the current difficulty level in [0, 1].
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.sim.Score(), g.tickCount)
}

// storeRecorder files final scores under the difficulty they were played at.
type storeRecorder struct {
	store      ScoreStore
	difficulty string
	logger     *log.Logger
}

func (r *storeRecorder) RecordScore(score int) {
	if _, err := r.store.SaveScore(GameID, r.difficulty, score); err != nil {
		r.logger.Warn("failed to save score", "score", score, "err", err)
		return
	}
	r.logger.Info("score saved", "score", score, "difficulty", r.difficulty)
}
