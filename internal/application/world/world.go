// Package world owns the doodler and the platforms and advances them one tick at a time.
package world

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// TickResult reports what happened during one Update
type TickResult struct {
	Scrolled float64 // vertical shift applied to every entity, 0 if none
	Bounced  bool
	Died     bool
}

// World is the single authority over per-tick state.
// The zero value is not usable; build one with New or FromLayout.
type World struct {
	width, height float64

	doodler   *entity.Doodler
	platforms []*entity.Platform
	cfg       config.GameConfig
}

// New creates a world from cfg with a layout generated from seed
func New(cfg *config.GameConfig, seed uint64) (*World, error) {
	w := &World{}
	if err := w.Init(cfg, seed); err != nil {
		return nil, err
	}
	return w, nil
}

// FromLayout creates a world around an explicit doodler and platform set.
// Only world size is taken from cfg; collision tolerance comes from the
// doodler's own physics.
func FromLayout(cfg *config.GameConfig, doodler *entity.Doodler, platforms []*entity.Platform) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if doodler == nil {
		return nil, errors.New("world: layout has no doodler")
	}
	if len(platforms) == 0 {
		return nil, errors.New("world: layout has no platforms")
	}

	return &World{
		width:     cfg.World.Width,
		height:    cfg.World.Height,
		doodler:   doodler,
		platforms: platforms,
		cfg:       *cfg,
	}, nil
}

// Init (re)populates the world: a centered doodler standing on a start
// platform, plus cfg.Platform.Count platforms at random positions.
// The same cfg and seed always produce the same layout.
func (w *World) Init(cfg *config.GameConfig, seed uint64) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))

	width, height := cfg.World.Width, cfg.World.Height
	dc, pc := cfg.Doodler, cfg.Platform
	platformSize := entity.Size{Width: pc.Width, Height: pc.Height}

	doodler := entity.NewDoodler(
		entity.Vector2{X: width/2 - dc.Size/2, Y: height - (dc.Size + pc.Height)},
		entity.Size{Width: dc.Size, Height: dc.Size},
		dc.Speed,
		entity.Physics{
			Gravity:       dc.Gravity,
			BounceImpulse: dc.BounceImpulse,
			Tolerance:     cfg.Collision.Tolerance,
		},
	)

	platforms := make([]*entity.Platform, 0, pc.Count+1)
	platforms = append(platforms, entity.NewPlatform(
		entity.Vector2{X: width/2 - pc.Width/2, Y: height - pc.Height},
		platformSize,
	))
	for i := 0; i < pc.Count; i++ {
		pos := entity.Vector2{
			X: rng.Float64() * (width - pc.Width),
			Y: rng.Float64() * (height - pc.Height),
		}
		platforms = append(platforms, entity.NewPlatform(pos, platformSize))
	}

	w.width, w.height = width, height
	w.doodler = doodler
	w.platforms = platforms
	w.cfg = *cfg
	return nil
}

// MoveHorizontal applies one input event: move, then wrap around the edges.
// It is the only mutation allowed between ticks.
func (w *World) MoveHorizontal(dir entity.Direction) {
	w.mustBeInitialized()
	if !w.doodler.Alive() {
		return
	}
	w.doodler.MoveHorizontal(dir)
	w.doodler.WrapHorizontal(w.width)
}

// Update advances the world by one tick: scroll, gravity, collisions, death.
// After the doodler dies Update does nothing.
func (w *World) Update() TickResult {
	w.mustBeInitialized()

	var res TickResult
	if !w.doodler.Alive() {
		return res
	}

	res.Scrolled = w.scroll()
	w.doodler.ApplyGravity()
	res.Bounced = w.collide()
	res.Died = w.checkDeath()

	return res
}

// IsOver reports whether the doodler has fallen out of the world
func (w *World) IsOver() bool {
	w.mustBeInitialized()
	return !w.doodler.Alive()
}

// Config returns a copy of the config the world was built from
func (w *World) Config() config.GameConfig {
	return w.cfg
}

// Width returns the world width
func (w *World) Width() float64 { return w.width }

// Height returns the world height
func (w *World) Height() float64 { return w.height }

func (w *World) mustBeInitialized() {
	if w.doodler == nil || len(w.platforms) == 0 {
		panic("world: used before Init")
	}
}
