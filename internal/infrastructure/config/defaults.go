package config

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Name: "default",
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Doodler: DoodlerConfig{
			Size:          60,
			Speed:         10,
			Gravity:       0.2,
			BounceImpulse: -10,
		},
		Platform: PlatformConfig{
			Width:  100,
			Height: 20,
			Count:  10,
		},
		Collision: CollisionConfig{
			Tolerance: 0,
		},
		Display: DisplayConfig{
			Scale: 1,
			TPS:   120,
		},
		Input: InputConfig{
			RepeatDelay:    30,
			RepeatInterval: 4,
		},
	}
}
