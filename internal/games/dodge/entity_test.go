package dodge

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBodyShapeFollowsPosition(t *testing.T) {
	b := newBody(0.8, 0.4)

	tests := []struct {
		name       string
		mutate     func(*Body)
		cx, cy, rr float64
	}{
		{"initial", func(*Body) {}, 0.4, 0.4, 0.4},
		{"set position", func(b *Body) { b.SetPosition(2, 3) }, 2.4, 3.4, 0.4},
		{"set x", func(b *Body) { b.SetX(-1) }, -0.6, 3.4, 0.4},
		{"set y", func(b *Body) { b.SetY(12) }, -0.6, 12.4, 0.4},
		{"set size", func(b *Body) { b.SetSize(2, 4) }, 0, 14, 0.4},
		{"set radius", func(b *Body) { b.SetCollisionRadius(1) }, 0, 14, 1},
		{"set rotation", func(b *Body) { b.SetRotation(90) }, 0, 14, 1},
		{"set scale", func(b *Body) { b.SetScale(2) }, 0, 14, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mutate(&b)
			c := b.Shape()
			if !approx(c.X, tc.cx) || !approx(c.Y, tc.cy) || !approx(c.Radius, tc.rr) {
				t.Errorf("Shape() = %+v, expected center (%f, %f) radius %f", c, tc.cx, tc.cy, tc.rr)
			}
		})
	}
}

func TestBodyRotationAndScale(t *testing.T) {
	b := newBody(1, 0.5)
	if b.Scale() != 1 {
		t.Errorf("Scale() = %f, expected 1", b.Scale())
	}

	b.SetRotation(45)
	b.SetScale(1.5)
	if b.Rotation() != 45 {
		t.Errorf("Rotation() = %f, expected 45", b.Rotation())
	}
	if b.Scale() != 1.5 {
		t.Errorf("Scale() = %f, expected 1.5", b.Scale())
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer(0.8, 0.4)
	p.SetPosition(2.6, 0.4)

	tests := []struct {
		name     string
		startX   float64
		intent   float64
		expected float64
	}{
		{"right", 2.6, 1, 2.85},
		{"left", 2.6, -1, 2.35},
		{"idle", 2.6, 0, 2.6},
		{"left wall", 0.1, -1, 0},
		{"right wall", 5.1, 1, 5.2},
		{"far beyond right", 100, 0, 5.2},
		{"far beyond left", -100, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p.SetX(tc.startX)
			p.Move(tc.intent, 0.25, 6)
			if !approx(p.X(), tc.expected) {
				t.Errorf("X() = %f, expected %f", p.X(), tc.expected)
			}
			if !approx(p.Shape().X, p.X()+0.4) {
				t.Errorf("Shape().X = %f, expected %f", p.Shape().X, p.X()+0.4)
			}
		})
	}
}

func TestObstacleFallIsPerTick(t *testing.T) {
	o := NewObstacle(0.6, 0.3)
	o.SetPosition(1, 10)
	o.SetFallSpeed(0.15)

	for i := 0; i < 4; i++ {
		o.Fall()
	}
	if !approx(o.Y(), 9.4) {
		t.Errorf("Y() = %f, expected 9.4", o.Y())
	}
	if !approx(o.Shape().Y, 9.7) {
		t.Errorf("Shape().Y = %f, expected 9.7", o.Shape().Y)
	}
}

func TestObstacleHitLatch(t *testing.T) {
	p := NewPlayer(0.8, 0.4)
	p.SetPosition(2.6, 0.4)

	o := NewObstacle(0.6, 0.3)
	o.SetPosition(0, 8)
	if o.CollidesWith(p) {
		t.Fatal("distant obstacle should not collide")
	}
	if o.Hit() {
		t.Fatal("Hit() should stay false without overlap")
	}

	o.SetPosition(2.7, 0.5)
	if !o.CollidesWith(p) {
		t.Fatal("overlapping obstacle should collide")
	}
	if !o.Hit() {
		t.Fatal("Hit() should latch after overlap")
	}

	// Moving away does not clear the latch
	o.SetPosition(0, 8)
	o.CollidesWith(p)
	if !o.Hit() {
		t.Error("Hit() should stay latched until reset")
	}

	o.Region = 'x'
	o.reset()
	if o.Hit() || o.HasRegion() {
		t.Errorf("reset() left hit=%v region=%q", o.Hit(), o.Region)
	}
	if o.Width() != 0.6 || o.Shape().Radius != 0.3 {
		t.Errorf("reset() changed size to %f radius %f", o.Width(), o.Shape().Radius)
	}
}

func TestObstacleOffScreen(t *testing.T) {
	o := NewObstacle(0.6, 0.3)

	tests := []struct {
		y        float64
		expected bool
	}{
		{10, false},
		{0, false},
		{-0.6, false},
		{-0.61, true},
	}

	for _, tc := range tests {
		o.SetY(tc.y)
		if got := o.OffScreen(); got != tc.expected {
			t.Errorf("OffScreen() at y=%f = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}
