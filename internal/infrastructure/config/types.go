package config

// GameConfig is the root config for game.json / game.toml
type GameConfig struct {
	Name      string          `json:"name" toml:"name"`
	World     WorldConfig     `json:"world" toml:"world"`
	Doodler   DoodlerConfig   `json:"doodler" toml:"doodler"`
	Platform  PlatformConfig  `json:"platform" toml:"platform"`
	Collision CollisionConfig `json:"collision" toml:"collision"`
	Display   DisplayConfig   `json:"display" toml:"display"`
	Input     InputConfig     `json:"input" toml:"input"`

	// Seed fixes the platform layout. Nil picks a fresh seed per session.
	Seed *uint64 `json:"seed,omitempty" toml:"seed,omitempty"`
}

// WorldConfig is the size of the play area in world units
type WorldConfig struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

type DoodlerConfig struct {
	Size          float64 `json:"size" toml:"size"`                   // square side
	Speed         float64 `json:"speed" toml:"speed"`                 // units per input event
	Gravity       float64 `json:"gravity" toml:"gravity"`             // units/tick²
	BounceImpulse float64 `json:"bounceImpulse" toml:"bounceImpulse"` // units/tick, negative = up
}

type PlatformConfig struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Count  int     `json:"count" toml:"count"` // random platforms, not counting the start platform
}

// CollisionConfig tunes landing detection
type CollisionConfig struct {
	// Tolerance raises each platform's top edge for landing checks.
	// 0 is a strict AABB test.
	Tolerance float64 `json:"tolerance" toml:"tolerance"`
}

type DisplayConfig struct {
	Scale int `json:"scale" toml:"scale"`
	TPS   int `json:"tps" toml:"tps"` // ticks per second
}

// InputConfig controls key auto-repeat for polled input (ticks)
type InputConfig struct {
	RepeatDelay    int `json:"repeatDelay" toml:"repeatDelay"`
	RepeatInterval int `json:"repeatInterval" toml:"repeatInterval"`
}

// SeedValue returns the configured seed and whether one is set
func (c *GameConfig) SeedValue() (uint64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}
