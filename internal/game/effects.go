package game

import (
	"image/color"
	"math"
)

// Effect colors.
var (
	colorSpark   = color.RGBA{255, 240, 160, 255}
	colorExhaust = color.RGBA{255, 150, 40, 255}
	colorDust    = color.RGBA{140, 130, 120, 255}
	colorAlien   = color.RGBA{120, 255, 120, 255}
	colorReward  = color.RGBA{120, 255, 140, 255}
	colorWarning = color.RGBA{255, 80, 80, 255}
)

// burst describes one sub-burst of an explosion.
type burst struct {
	count    int
	color    color.RGBA
	minSize  float64
	maxSize  float64
	minSpeed float64
	maxSpeed float64
	minLife  int
	maxLife  int
}

// emitBurst scatters count particles outward from (x, y).
func (s *Session) emitBurst(x, y float64, b burst) {
	for range b.count {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := between(s.rng, b.minSpeed, b.maxSpeed)
		life := b.minLife + s.rng.IntN(b.maxLife-b.minLife+1)
		s.Particles.Spawn(
			Position{X: x, Y: y},
			Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			life,
			Look{Color: b.color, Size: between(s.rng, b.minSize, b.maxSize)},
		)
	}
}

// explode emits the chunk and dust sub-bursts for a destroyed body.
func (s *Session) explode(x, y float64, chunks, dust int, chunkColor color.RGBA) {
	s.emitBurst(x, y, burst{
		count: chunks, color: chunkColor,
		minSize: 3, maxSize: 6, minSpeed: 1, maxSpeed: 4, minLife: 40, maxLife: 70,
	})
	s.emitBurst(x, y, burst{
		count: dust, color: colorDust,
		minSize: 1, maxSize: 2, minSpeed: 0.5, maxSpeed: 2.5, minLife: 20, maxLife: 45,
	})
}

// spark emits a single short-lived spark at a laser impact point.
func (s *Session) spark(x, y float64) {
	angle := s.rng.Float64() * 2 * math.Pi
	speed := between(s.rng, 1, 3)
	s.Particles.Spawn(
		Position{X: x, Y: y},
		Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		10+s.rng.IntN(10),
		Look{Color: colorSpark, Size: 2},
	)
}

// exhaust emits a flame particle behind the engine.
func (s *Session) exhaust() {
	ship := &s.Ship
	back := math.Pi + ship.Rotation + (s.rng.Float64()-0.5)*0.5
	x := ship.X + math.Cos(ship.Rotation+math.Pi)*14
	y := ship.Y + math.Sin(ship.Rotation+math.Pi)*14
	speed := between(s.rng, 1, 2.5)
	s.Particles.Spawn(
		Position{X: x, Y: y},
		Velocity{X: ship.VX + math.Cos(back)*speed, Y: ship.VY + math.Sin(back)*speed},
		10+s.rng.IntN(10),
		Look{Color: colorExhaust, Size: between(s.rng, 1.5, 3)},
	)
}

// floatText emits a rising text particle.
func (s *Session) floatText(x, y float64, text string, c color.RGBA) {
	s.Particles.Spawn(
		Position{X: x, Y: y},
		Velocity{X: 0, Y: -0.8},
		60,
		Look{Color: c, Text: text},
	)
}

func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
