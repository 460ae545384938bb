// Package core provides fundamental types and utilities for the dodge game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Circle is the bounding shape used for collision detection between the
// player and falling obstacles. X and Y are the center in world units.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle creates a circle with the given center and radius.
// Negative radii are clamped to zero.
func NewCircle(x, y, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{X: x, Y: y, Radius: radius}
}

// SetCenter moves the circle without changing its radius.
func (c *Circle) SetCenter(x, y float64) {
	c.X = x
	c.Y = y
}

// Overlaps reports whether two circles touch or intersect.
// Tangent circles count as overlapping.
func (c Circle) Overlaps(other Circle) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	r := c.Radius + other.Radius
	return dx*dx+dy*dy <= r*r
}

// Rect represents an axis-aligned box in screen cells.
// Used for HUD boxes and overlays, not for gameplay collision.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
