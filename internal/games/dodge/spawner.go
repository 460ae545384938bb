package dodge

import "math/rand"

// SpeedSource supplies the fall speed assigned to each new obstacle.
type SpeedSource interface {
	ObstacleSpeed() float64
}

// SpeedFunc adapts a plain function to SpeedSource.
type SpeedFunc func() float64

// ObstacleSpeed implements SpeedSource.
func (f SpeedFunc) ObstacleSpeed() float64 {
	return f()
}

// Spawner drops a new obstacle at the top of the world each time its
// interval elapses.
type Spawner struct {
	timer    float64
	interval float64

	worldW, worldH float64
	size           float64
	region         rune

	rng   *rand.Rand
	pool  *Pool[*Obstacle]
	speed SpeedSource
}

// SpawnerConfig holds the fixed parameters of a Spawner.
type SpawnerConfig struct {
	Interval     float64 // Seconds between spawns
	WorldWidth   float64
	WorldHeight  float64
	ObstacleSize float64
	Region       rune // Glyph assigned to spawned obstacles
}

// NewSpawner creates a spawner that draws obstacles from pool.
func NewSpawner(cfg SpawnerConfig, rng *rand.Rand, pool *Pool[*Obstacle], speed SpeedSource) *Spawner {
	return &Spawner{
		interval: cfg.Interval,
		worldW:   cfg.WorldWidth,
		worldH:   cfg.WorldHeight,
		size:     cfg.ObstacleSize,
		region:   cfg.Region,
		rng:      rng,
		pool:     pool,
		speed:    speed,
	}
}

// Tick advances the spawn timer by delta seconds and returns the obstacle
// spawned this tick, or nil. At most one obstacle spawns per tick: the
// timer is zeroed rather than decremented, so a long stall cannot burst.
func (s *Spawner) Tick(delta float64) *Obstacle {
	s.timer += delta
	if s.timer < s.interval {
		return nil
	}

	x := s.rng.Float64() * (s.worldW - s.size)
	o := s.pool.Acquire()
	o.SetFallSpeed(s.speed.ObstacleSpeed())
	o.SetPosition(x, s.worldH)
	o.Region = s.region

	s.timer = 0
	return o
}

// Timer returns the seconds accumulated toward the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}
