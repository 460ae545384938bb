package dodge

import (
	"math/rand"
	"testing"
)

func newTestSpawner(seed int64, speed float64) (*Spawner, *Pool[*Obstacle]) {
	pool := newObstaclePool(0.6, 0.3)
	s := NewSpawner(SpawnerConfig{
		Interval:     0.25,
		WorldWidth:   6,
		WorldHeight:  10,
		ObstacleSize: 0.6,
		Region:       'o',
	}, rand.New(rand.NewSource(seed)), pool, SpeedFunc(func() float64 { return speed }))
	return s, pool
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	s, _ := newTestSpawner(1, 0.1)

	for i := 0; i < 3; i++ {
		if o := s.Tick(0.0625); o != nil {
			t.Fatalf("tick %d: spawned before interval elapsed", i)
		}
	}
	if o := s.Tick(0.0625); o == nil {
		t.Fatal("expected spawn once 0.25s accumulated")
	}
	if s.Timer() != 0 {
		t.Errorf("Timer() = %f, expected 0 after spawn", s.Timer())
	}
}

func TestSpawnerSingleSpawnPerTick(t *testing.T) {
	s, pool := newTestSpawner(1, 0.1)

	// One second spans four intervals but only one obstacle spawns.
	if o := s.Tick(1.0); o == nil {
		t.Fatal("expected a spawn")
	}
	if pool.Created() != 1 {
		t.Errorf("Created() = %d, expected 1", pool.Created())
	}
	if s.Timer() != 0 {
		t.Errorf("Timer() = %f, expected 0 (zeroed, not decremented)", s.Timer())
	}
	if o := s.Tick(0); o != nil {
		t.Error("zero delta tick should not spawn")
	}
}

func TestSpawnerPlacement(t *testing.T) {
	s, _ := newTestSpawner(99, 0.17)

	for i := 0; i < 200; i++ {
		o := s.Tick(0.25)
		if o == nil {
			t.Fatalf("spawn %d: expected obstacle", i)
		}
		if o.X() < 0 || o.X() > 6-0.6 {
			t.Errorf("spawn %d: X() = %f, expected within [0, 5.4]", i, o.X())
		}
		if o.Y() != 10 {
			t.Errorf("spawn %d: Y() = %f, expected 10", i, o.Y())
		}
		if o.FallSpeed() != 0.17 {
			t.Errorf("spawn %d: FallSpeed() = %f, expected 0.17", i, o.FallSpeed())
		}
		if o.Region != 'o' {
			t.Errorf("spawn %d: Region = %q, expected 'o'", i, o.Region)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a, _ := newTestSpawner(42, 0.1)
	b, _ := newTestSpawner(42, 0.1)

	for i := 0; i < 20; i++ {
		oa := a.Tick(0.3)
		ob := b.Tick(0.3)
		if oa.X() != ob.X() {
			t.Fatalf("spawn %d: X differs %f vs %f", i, oa.X(), ob.X())
		}
	}
}
