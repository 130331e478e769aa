package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Validate
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable world.
// All problems are reported together.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	// NaN fails every comparison below, so it is rejected too.
	// Infinity passes the sign checks and needs its own.
	finite := func(name string, v float64) {
		check(!math.IsInf(v, 0), "%s must be finite, got %v", name, v)
	}
	finite("world.width", c.World.Width)
	finite("world.height", c.World.Height)
	finite("doodler.size", c.Doodler.Size)
	finite("doodler.speed", c.Doodler.Speed)
	finite("doodler.gravity", c.Doodler.Gravity)
	finite("doodler.bounceImpulse", c.Doodler.BounceImpulse)
	finite("platform.width", c.Platform.Width)
	finite("platform.height", c.Platform.Height)
	finite("collision.tolerance", c.Collision.Tolerance)

	w := c.World
	check(w.Width > 0, "world.width must be positive, got %v", w.Width)
	check(w.Height > 0, "world.height must be positive, got %v", w.Height)

	d := c.Doodler
	check(d.Size > 0, "doodler.size must be positive, got %v", d.Size)
	check(d.Size <= w.Width, "doodler.size %v does not fit world.width %v", d.Size, w.Width)
	check(d.Speed >= 0, "doodler.speed must not be negative, got %v", d.Speed)
	check(d.Gravity > 0, "doodler.gravity must be positive, got %v", d.Gravity)
	check(d.BounceImpulse < 0, "doodler.bounceImpulse must be negative (upward), got %v", d.BounceImpulse)

	p := c.Platform
	check(p.Width > 0, "platform.width must be positive, got %v", p.Width)
	check(p.Height > 0, "platform.height must be positive, got %v", p.Height)
	check(p.Width <= w.Width, "platform.width %v does not fit world.width %v", p.Width, w.Width)
	check(p.Height <= w.Height, "platform.height %v does not fit world.height %v", p.Height, w.Height)
	check(p.Count >= 0, "platform.count must not be negative, got %d", p.Count)

	// The doodler starts standing on the start platform at the bottom.
	check(d.Size+p.Height <= w.Height,
		"doodler.size + platform.height (%v) does not fit world.height %v", d.Size+p.Height, w.Height)

	check(c.Collision.Tolerance >= 0, "collision.tolerance must not be negative, got %v", c.Collision.Tolerance)

	check(c.Display.TPS > 0, "display.tps must be positive, got %d", c.Display.TPS)
	check(c.Display.Scale >= 1, "display.scale must be at least 1, got %d", c.Display.Scale)

	check(c.Input.RepeatDelay >= 0, "input.repeatDelay must not be negative, got %d", c.Input.RepeatDelay)
	check(c.Input.RepeatInterval > 0, "input.repeatInterval must be positive, got %d", c.Input.RepeatInterval)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
