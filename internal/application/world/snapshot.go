package world

import "github.com/younwookim/doodle/internal/domain/entity"

// EntityView is a read-only copy of an entity's renderable state
type EntityView struct {
	Position entity.Vector2
	Size     entity.Size
	Alive    bool
}

// Rect returns the view's bounding box
func (v EntityView) Rect() entity.Rect {
	return entity.Rect{X: v.Position.X, Y: v.Position.Y, Width: v.Size.Width, Height: v.Size.Height}
}

// Snapshot is everything a renderer needs, copied between ticks
type Snapshot struct {
	Width, Height float64

	Doodler   EntityView
	Velocity  float64
	Platforms []EntityView
	Over      bool
}

// Snapshot copies the current state. The copy does not change when the world does.
func (w *World) Snapshot() Snapshot {
	w.mustBeInitialized()

	s := Snapshot{
		Width:     w.width,
		Height:    w.height,
		Doodler:   view(&w.doodler.Body),
		Velocity:  w.doodler.Velocity(),
		Platforms: make([]EntityView, len(w.platforms)),
		Over:      !w.doodler.Alive(),
	}
	for i, p := range w.platforms {
		s.Platforms[i] = view(&p.Body)
	}
	return s
}

func view(b *entity.Body) EntityView {
	return EntityView{
		Position: b.Position(),
		Size:     b.Size(),
		Alive:    b.Alive(),
	}
}
