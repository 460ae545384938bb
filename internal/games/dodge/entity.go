package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Body holds the positional state shared by the player and obstacles.
// Position is anchored at the bottom-left corner in world units; the
// collision circle is centered on the body and is kept in sync by every
// setter, so it is always valid before a collision test runs.
type Body struct {
	x, y          float64
	width, height float64
	rotation      float64
	scale         float64
	radius        float64
	shape         core.Circle

	// Region is the glyph drawn for this body. Zero means no region has
	// been assigned and the renderer skips the body.
	Region rune
}

func newBody(size, radius float64) Body {
	b := Body{scale: 1}
	b.SetSize(size, size)
	b.SetCollisionRadius(radius)
	return b
}

// SetPosition moves the body and its collision shape.
func (b *Body) SetPosition(x, y float64) {
	b.x = x
	b.y = y
	b.syncShape()
}

// SetX moves the body horizontally.
func (b *Body) SetX(x float64) {
	b.x = x
	b.syncShape()
}

// SetY moves the body vertically.
func (b *Body) SetY(y float64) {
	b.y = y
	b.syncShape()
}

// SetSize resizes the body. The collision shape is re-centered.
func (b *Body) SetSize(w, h float64) {
	b.width = w
	b.height = h
	b.syncShape()
}

// SetCollisionRadius sets the radius of the collision circle.
func (b *Body) SetCollisionRadius(r float64) {
	b.radius = r
	b.shape = core.NewCircle(b.x+b.width/2, b.y+b.height/2, r)
}

// SetRotation sets the rotation in degrees. Collision ignores it.
func (b *Body) SetRotation(deg float64) {
	b.rotation = deg
}

// SetScale sets the draw scale. Collision ignores it.
func (b *Body) SetScale(s float64) {
	b.scale = s
}

func (b *Body) syncShape() {
	b.shape.SetCenter(b.x+b.width/2, b.y+b.height/2)
}

// X returns the left edge in world units.
func (b *Body) X() float64 {
	return b.x
}

// Y returns the bottom edge in world units.
func (b *Body) Y() float64 {
	return b.y
}

func (b *Body) Width() float64 {
	return b.width
}

func (b *Body) Height() float64 {
	return b.height
}

func (b *Body) Rotation() float64 {
	return b.rotation
}

func (b *Body) Scale() float64 {
	return b.scale
}

// Shape returns the collision circle.
func (b *Body) Shape() core.Circle {
	return b.shape
}

// HasRegion reports whether a glyph has been assigned.
func (b *Body) HasRegion() bool {
	return b.Region != 0
}

// Player is the sprite moved left and right along the bottom of the world.
type Player struct {
	Body
}

// NewPlayer creates a player with a square body of the given size.
func NewPlayer(size, radius float64) *Player {
	return &Player{Body: newBody(size, radius)}
}

// Move shifts the player by intent scaled by maxSpeed and clamps it inside
// [0, worldWidth - width]. Intent is -1, 0 or +1 for keyboard input but any
// value is accepted.
func (p *Player) Move(intent, maxSpeed, worldWidth float64) {
	p.SetX(core.ClampF(p.x+intent*maxSpeed, 0, worldWidth-p.width))
}

// Obstacle is a falling circle. Instances are recycled through a Pool.
type Obstacle struct {
	Body
	fallSpeed float64
	hit       bool
}

// NewObstacle creates an obstacle in its reset state.
func NewObstacle(size, radius float64) *Obstacle {
	return &Obstacle{Body: newBody(size, radius)}
}

// SetFallSpeed sets the per-tick fall distance.
func (o *Obstacle) SetFallSpeed(speed float64) {
	o.fallSpeed = speed
}

// FallSpeed returns the per-tick fall distance.
func (o *Obstacle) FallSpeed() float64 {
	return o.fallSpeed
}

// Fall moves the obstacle down by its fall speed. The step is fixed per
// tick and does not scale with elapsed time.
func (o *Obstacle) Fall() {
	o.SetY(o.y - o.fallSpeed)
}

// CollidesWith tests the obstacle against the player and latches the hit
// flag on overlap. Once latched it stays set until the obstacle is recycled.
func (o *Obstacle) CollidesWith(p *Player) bool {
	overlaps := o.shape.Overlaps(p.shape)
	if overlaps {
		o.hit = true
	}
	return overlaps
}

// Hit reports whether this obstacle has already struck the player.
func (o *Obstacle) Hit() bool {
	return o.hit
}

// OffScreen reports whether the obstacle has fully left the bottom of the world.
func (o *Obstacle) OffScreen() bool {
	return o.y < -o.height
}

// reset returns the obstacle to the state Pool.Acquire guarantees.
// Size and radius are left alone since pool items are homogeneous.
func (o *Obstacle) reset() {
	o.hit = false
	o.Region = 0
	o.fallSpeed = 0
}
