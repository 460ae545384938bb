package dodge

import (
	"io"
	"math/rand"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
)

// Glyphs used when the config does not name one.
const (
	DefaultPlayerGlyph   = '▲'
	DefaultObstacleGlyph = '●'
)

// HitListener is notified each time the player loses a life.
type HitListener interface {
	OnHit()
}

// ScoreRecorder receives the final score once a game ends.
type ScoreRecorder interface {
	RecordScore(score int)
}

// Deps are the collaborators a Simulation talks to. Any of them may be nil
// except Rand and Speed, which are defaulted when missing.
type Deps struct {
	Rand   *rand.Rand
	Speed  SpeedSource
	Hits   HitListener
	Scores ScoreRecorder
	Logger *log.Logger
}

// TickResult reports what happened during one Step.
type TickResult struct {
	GameOver bool // The game is over; nothing was simulated after it ended
	Spawned  bool // An obstacle entered the world
	Culled   int  // Obstacles removed after falling out of the world
	Collided bool // A life was lost
}

// Simulation owns the round state of one game: player, live obstacles,
// obstacle pool, spawner, score and lives. Step must be called from a
// single goroutine.
type Simulation struct {
	cfg config.DodgeConfig

	player    *Player
	obstacles []*Obstacle
	pool      *Pool[*Obstacle]
	spawner   *Spawner
	score     *Score
	lives     int

	startX, startY float64
	finalized      bool

	hits   HitListener
	scores ScoreRecorder
	logger *log.Logger
}

// NewSimulation creates a simulation for a fresh game.
func NewSimulation(cfg config.DodgeConfig, deps Deps) *Simulation {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
	}
	speed := deps.Speed
	if speed == nil {
		base := cfg.Obstacles.BaseSpeed
		speed = SpeedFunc(func() float64 { return base })
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pool := newObstaclePool(cfg.Obstacles.Size, cfg.Obstacles.BoundsRadius)
	s := &Simulation{
		cfg:    cfg,
		player: NewPlayer(cfg.Player.Size, cfg.Player.BoundsRadius),
		pool:   pool,
		spawner: NewSpawner(SpawnerConfig{
			Interval:     cfg.Obstacles.SpawnInterval,
			WorldWidth:   cfg.World.Width,
			WorldHeight:  cfg.World.Height,
			ObstacleSize: cfg.Obstacles.Size,
			Region:       glyph(cfg.Render.ObstacleGlyph, DefaultObstacleGlyph),
		}, rng, pool, speed),
		score: NewScore(ScoreConfig{
			Interval:     cfg.Score.Interval,
			MinIncrement: cfg.Score.MinIncrement,
			MaxIncrement: cfg.Score.MaxIncrement,
			DisplayRate:  cfg.Score.DisplayRate,
		}, rng),
		lives:  cfg.Gameplay.Lives,
		hits:   deps.Hits,
		scores: deps.Scores,
		logger: logger,
	}

	s.startX, s.startY = cfg.PlayerStart()
	s.player.SetPosition(s.startX, s.startY)
	s.player.Region = glyph(cfg.Render.PlayerGlyph, DefaultPlayerGlyph)
	return s
}

// glyph returns the first rune of s, or fallback when s is empty.
func glyph(s string, fallback rune) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		return r
	}
	return fallback
}

// Step advances the simulation by one tick. delta is the elapsed time in
// seconds and intent the horizontal input in [-1, 1]. The order of the
// phases is fixed: spawn, cull, fall, score, display, move, collide, then
// either finalize or reset the round.
func (s *Simulation) Step(delta, intent float64) TickResult {
	if s.GameOver() {
		return TickResult{GameOver: true}
	}

	var res TickResult

	if o := s.spawner.Tick(delta); o != nil {
		s.obstacles = append(s.obstacles, o)
		res.Spawned = true
	}

	res.Culled = s.cull()

	for _, o := range s.obstacles {
		o.Fall()
	}

	s.score.Update(delta)
	s.score.Animate(delta)

	s.player.Move(intent, s.cfg.Player.MaxSpeed, s.cfg.World.Width)

	res.Collided = s.collide()

	if s.GameOver() {
		s.finalize()
		res.GameOver = true
		return res
	}
	if res.Collided {
		s.restartRound()
	}
	return res
}

// cull releases every obstacle that has left the bottom of the world and
// compacts the rest in spawn order. Fall speeds can differ between
// obstacles, so all of them are checked rather than only the oldest.
func (s *Simulation) cull() int {
	kept := s.obstacles[:0]
	culled := 0
	for _, o := range s.obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
			continue
		}
		s.release(o)
		culled++
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
	return culled
}

// collide marks the first unhit obstacle touching the player and costs one
// life. Further overlaps in the same tick are ignored.
func (s *Simulation) collide() bool {
	for _, o := range s.obstacles {
		if o.Hit() || !o.CollidesWith(s.player) {
			continue
		}
		s.lives--
		s.logger.Debug("player hit", "lives", s.lives, "score", s.score.Value())
		if s.hits != nil {
			s.hits.OnHit()
		}
		return true
	}
	return false
}

// restartRound clears the world after a lost life. Lives, score and
// timers carry over.
func (s *Simulation) restartRound() {
	for _, o := range s.obstacles {
		s.release(o)
	}
	clear(s.obstacles)
	s.obstacles = s.obstacles[:0]
	s.player.SetPosition(s.startX, s.startY)
	s.logger.Debug("round reset", "lives", s.lives)
}

// finalize reports the final score exactly once.
func (s *Simulation) finalize() {
	if s.finalized {
		return
	}
	s.finalized = true
	s.logger.Info("game over", "score", s.score.Value())
	if s.scores != nil {
		s.scores.RecordScore(s.score.Value())
	}
}

func (s *Simulation) release(o *Obstacle) {
	if err := s.pool.Release(o); err != nil {
		s.logger.Error("obstacle release failed", "err", err)
	}
}

// GameOver reports whether all lives are spent.
func (s *Simulation) GameOver() bool {
	return s.lives <= 0
}

// Lives returns the remaining lives.
func (s *Simulation) Lives() int {
	return s.lives
}

// Score returns the true score.
func (s *Simulation) Score() int {
	return s.score.Value()
}

// DisplayedScore returns the animated score shown in the HUD.
func (s *Simulation) DisplayedScore() int {
	return s.score.Displayed()
}

// Player returns the player entity.
func (s *Simulation) Player() *Player {
	return s.player
}

// Obstacles returns the live obstacles in spawn order. The slice is owned
// by the simulation and is only valid until the next Step.
func (s *Simulation) Obstacles() []*Obstacle {
	return s.obstacles
}

// Pool returns the obstacle pool.
func (s *Simulation) Pool() *Pool[*Obstacle] {
	return s.pool
}

// Start returns the player's start position.
func (s *Simulation) Start() (x, y float64) {
	return s.startX, s.startY
}
