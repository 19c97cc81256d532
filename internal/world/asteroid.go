package world

import "math"

// Point is an offset or position in world space.
type Point struct {
	X, Y float64
}

// Asteroid is a mineable rock. The shape is fixed at creation. Heating is
// set by the mining laser on the frame it hits and cleared at the start of
// the next frame.
type Asteroid struct {
	ID            int
	X, Y          float64
	VX, VY        float64
	Radius        float64
	Shape         []Point // vertices relative to the center, unrotated
	Mineral       Mineral
	Health        float64
	MaxHealth     float64
	Rotation      float64
	RotationSpeed float64
	Heating       bool
}

// Damaged reports whether the asteroid has taken any damage.
func (a *Asteroid) Damaged() bool { return a.Health < a.MaxHealth }

// Destroyed reports whether health has run out.
func (a *Asteroid) Destroyed() bool { return a.Health <= 0 }

// Spin advances the cosmetic rotation.
func (a *Asteroid) Spin() { a.Rotation += a.RotationSpeed }

// Outline returns the shape rotated by the current spin and translated to (cx, cy).
// dst is reused when it has enough capacity.
func (a *Asteroid) Outline(cx, cy float64, dst []Point) []Point {
	dst = dst[:0]
	sin, cos := math.Sincos(a.Rotation)
	for _, p := range a.Shape {
		dst = append(dst, Point{
			X: cx + p.X*cos - p.Y*sin,
			Y: cy + p.X*sin + p.Y*cos,
		})
	}
	return dst
}

// JaggedShape builds a polygon of 6-11 vertices evenly spaced in angle, each
// at the radius perturbed by up to ±20%.
func JaggedShape(rng Rand, radius float64) []Point {
	n := 6 + rng.IntN(6)
	pts := make([]Point, n)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		r := radius * (0.8 + rng.Float64()*0.4)
		pts[i] = Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return pts
}
