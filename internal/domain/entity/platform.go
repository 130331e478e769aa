package entity

// Platform is a stationary rectangle the doodler lands on.
// It never moves horizontally; only world scroll moves it.
type Platform struct {
	Body
}

// NewPlatform creates a platform at pos
func NewPlatform(pos Vector2, size Size) *Platform {
	return &Platform{Body: NewBody(pos, size, 0)}
}
