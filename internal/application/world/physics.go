package world

// scroll keeps the doodler at or below mid-screen. When it climbs above the
// midpoint it is pinned there and every platform moves down by the same amount.
func (w *World) scroll() float64 {
	mid := w.height / 2
	if w.doodler.Position().Y >= mid {
		return 0
	}

	delta := w.doodler.ScrollTo(mid)
	for _, p := range w.platforms {
		p.ScrollBy(delta)
	}
	return delta
}

// collide tests the doodler against every platform.
// Platform order does not matter: after the first bounce the velocity guard
// rejects the rest.
func (w *World) collide() bool {
	bounced := false
	for _, p := range w.platforms {
		if w.doodler.CheckCollision(p) {
			bounced = true
		}
	}
	return bounced
}

func (w *World) checkDeath() bool {
	if w.doodler.Position().Y > w.height {
		w.doodler.MarkDead()
		return true
	}
	return false
}
