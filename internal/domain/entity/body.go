package entity

// Vector2 is a position in world units. Y grows downward.
type Vector2 struct {
	X, Y float64
}

// Size is the extent of an entity, fixed after construction
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether r and o share interior area.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Raise returns r with its top edge moved up by margin; the bottom edge stays put.
func (r Rect) Raise(margin float64) Rect {
	return Rect{X: r.X, Y: r.Y - margin, Width: r.Width, Height: r.Height + margin}
}

// Body is the state shared by every entity in the world.
// Fields are unexported; mutation goes through named methods so that
// alive can only ever go from true to false.
type Body struct {
	pos   Vector2
	size  Size
	speed float64
	alive bool
}

// NewBody creates a live body at pos
func NewBody(pos Vector2, size Size, speed float64) Body {
	return Body{
		pos:   pos,
		size:  size,
		speed: speed,
		alive: true,
	}
}

// Position returns the top-left corner
func (b *Body) Position() Vector2 {
	return b.pos
}

// Size returns the body's extent
func (b *Body) Size() Size {
	return b.size
}

// Speed returns the horizontal step applied per input event
func (b *Body) Speed() float64 {
	return b.speed
}

// Alive reports whether the body is still in play
func (b *Body) Alive() bool {
	return b.alive
}

// Rect returns the body's bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, Width: b.size.Width, Height: b.size.Height}
}

// ScrollBy shifts the body vertically by dy (world scroll)
func (b *Body) ScrollBy(dy float64) {
	b.pos.Y += dy
}
