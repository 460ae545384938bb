package dodge

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPoolAcquireCreatesWhenEmpty(t *testing.T) {
	pool := newObstaclePool(0.6, 0.3)

	a := pool.Acquire()
	b := pool.Acquire()
	if a == b {
		t.Fatal("Acquire() returned the same item twice")
	}
	if pool.Created() != 2 {
		t.Errorf("Created() = %d, expected 2", pool.Created())
	}
	if pool.Free() != 0 {
		t.Errorf("Free() = %d, expected 0", pool.Free())
	}
}

func TestPoolReusesReleasedItems(t *testing.T) {
	pool := newObstaclePool(0.6, 0.3)

	o := pool.Acquire()
	o.Region = 'o'
	o.SetFallSpeed(0.2)
	o.hit = true

	if err := pool.Release(o); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	again := pool.Acquire()
	if again != o {
		t.Error("Acquire() should reuse the released item")
	}
	if again.Hit() || again.HasRegion() || again.FallSpeed() != 0 {
		t.Errorf("reused item not reset: hit=%v region=%q speed=%f",
			again.Hit(), again.Region, again.FallSpeed())
	}
	if pool.Created() != 1 {
		t.Errorf("Created() = %d, expected 1", pool.Created())
	}
}

func TestPoolDoubleRelease(t *testing.T) {
	pool := newObstaclePool(0.6, 0.3)
	o := pool.Acquire()

	if err := pool.Release(o); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := pool.Release(o); !errors.Is(err, ErrAlreadyFree) {
		t.Errorf("second Release() = %v, expected %v", err, ErrAlreadyFree)
	}
	if pool.Free() != 1 {
		t.Errorf("Free() = %d, expected 1", pool.Free())
	}

	// Re-acquired items can be released again
	o = pool.Acquire()
	if err := pool.Release(o); err != nil {
		t.Errorf("Release() after re-acquire error = %v", err)
	}
}

func TestPoolRoundTripAccounting(t *testing.T) {
	pool := newObstaclePool(0.6, 0.3)
	rng := rand.New(rand.NewSource(7))
	var live []*Obstacle

	for i := 0; i < 1000; i++ {
		if len(live) == 0 || rng.Intn(3) > 0 {
			o := pool.Acquire()
			if o.Hit() || o.HasRegion() {
				t.Fatalf("step %d: acquired item not in reset state", i)
			}
			o.Region = 'o'
			o.hit = rng.Intn(2) == 0
			live = append(live, o)
		} else {
			idx := rng.Intn(len(live))
			o := live[idx]
			live = append(live[:idx], live[idx+1:]...)
			if err := pool.Release(o); err != nil {
				t.Fatalf("step %d: Release() error = %v", i, err)
			}
		}

		if len(live)+pool.Free() != pool.Created() {
			t.Fatalf("step %d: live(%d) + free(%d) != created(%d)",
				i, len(live), pool.Free(), pool.Created())
		}
	}
}
