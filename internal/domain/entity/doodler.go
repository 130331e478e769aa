package entity

// Physics holds the per-tick constants of the doodler's vertical motion
type Physics struct {
	Gravity       float64 // added to velocity every tick (units/tick²)
	BounceImpulse float64 // velocity after landing; negative = upward
	Tolerance     float64 // landing slop above a platform's top edge
}

// Doodler is the player-controlled character.
// It falls under gravity and bounces off platforms while falling.
type Doodler struct {
	Body

	velocity float64 // vertical, units/tick, positive = falling
	physics  Physics
}

// NewDoodler creates a doodler at rest at pos
func NewDoodler(pos Vector2, size Size, speed float64, physics Physics) *Doodler {
	return &Doodler{
		Body:    NewBody(pos, size, speed),
		physics: physics,
	}
}

// Velocity returns the vertical velocity
func (d *Doodler) Velocity() float64 {
	return d.velocity
}

// Physics returns the doodler's motion constants
func (d *Doodler) Physics() Physics {
	return d.physics
}

// ApplyGravity integrates one tick of gravity
func (d *Doodler) ApplyGravity() {
	d.velocity += d.physics.Gravity
	d.pos.Y += d.velocity
}

// MoveHorizontal steps the doodler by its speed in dir.
// Callers wrap afterwards with WrapHorizontal.
func (d *Doodler) MoveHorizontal(dir Direction) {
	switch dir {
	case DirLeft:
		d.pos.X -= d.speed
	case DirRight:
		d.pos.X += d.speed
	}
}

// WrapHorizontal teleports the doodler to the opposite edge once it leaves
// [0, worldWidth].
func (d *Doodler) WrapHorizontal(worldWidth float64) {
	if d.pos.X > worldWidth {
		d.pos.X = 0
	} else if d.pos.X < 0 {
		d.pos.X = worldWidth - d.size.Width
	}
}

// CheckCollision bounces the doodler off p if it is falling and overlaps p.
// Returns true if a bounce happened.
func (d *Doodler) CheckCollision(p *Platform) bool {
	// Rising doodlers pass through platforms; this also stops a bounce
	// from re-triggering on the next check.
	if d.velocity <= 0 {
		return false
	}

	if !d.Rect().Overlaps(p.Rect().Raise(d.physics.Tolerance)) {
		return false
	}

	d.velocity = d.physics.BounceImpulse
	return true
}

// MarkDead takes the doodler out of play for good
func (d *Doodler) MarkDead() {
	d.alive = false
}

// ScrollTo moves the doodler vertically to y and returns the shift applied
func (d *Doodler) ScrollTo(y float64) float64 {
	delta := y - d.pos.Y
	d.pos.Y = y
	return delta
}
