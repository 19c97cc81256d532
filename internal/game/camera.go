package game

// Camera carries the only camera state that survives a frame: screen shake.
// The view origin itself is derived from the ship every frame.
type Camera struct {
	Shake float64
}

// AddShake raises the shake magnitude to at least m.
func (c *Camera) AddShake(m float64) {
	if m > c.Shake {
		c.Shake = m
	}
}

// Offset returns a random offset within the current shake magnitude.
func (c *Camera) Offset(rng Rand) (dx, dy float64) {
	if c.Shake == 0 {
		return 0, 0
	}
	return (rng.Float64()*2 - 1) * c.Shake, (rng.Float64()*2 - 1) * c.Shake
}

// Decay shrinks the shake geometrically and snaps it to zero below snap.
func (c *Camera) Decay(factor, snap float64) {
	c.Shake *= factor
	if c.Shake < snap {
		c.Shake = 0
	}
}

// CameraOrigin returns the world point drawn at the top-left of a view of the
// given size, without shake.
func (s *Session) CameraOrigin(viewW, viewH float64) (x, y float64) {
	return s.Ship.X - viewW/2, s.Ship.Y - viewH/2
}
