package dodge

import "math"

// Snapshot captures the observable simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      int
	Lives     int
	Score     int
	Displayed int
	PlayerX   float64
	PlayerY   float64

	// Each obstacle is 4 values: X, Y, FallSpeed, Hit (0 or 1)
	ObstacleCount int
	ObstacleData  []float64

	PoolFree    int
	PoolCreated int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot()
	snap.Tick = g.tickCount
	return snap
}

// Snapshot returns the current simulation state. Tick is left at zero since
// the simulation does not count ticks.
func (s *Simulation) Snapshot() Snapshot {
	data := make([]float64, 0, len(s.obstacles)*4)
	for _, o := range s.obstacles {
		hit := 0.0
		if o.Hit() {
			hit = 1
		}
		data = append(data, o.X(), o.Y(), o.FallSpeed(), hit)
	}

	return Snapshot{
		Lives:         s.lives,
		Score:         s.score.Value(),
		Displayed:     s.score.Displayed(),
		PlayerX:       s.player.X(),
		PlayerY:       s.player.Y(),
		ObstacleCount: len(s.obstacles),
		ObstacleData:  data,
		PoolFree:      s.pool.Free(),
		PoolCreated:   s.pool.Created(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Displayed)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.PoolFree)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PoolCreated) //#nosec G115 -- hash computation

	return h
}
