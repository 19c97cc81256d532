// Package world generates the static mission world: background layers and
// the asteroid field around the station.
package world

import (
	"math"

	"github.com/spacehole-rogue/deepminer/internal/config"
)

// Rand is the random source the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Star is a background point with a parallax depth in [0.1, 1.0].
type Star struct {
	X, Y    float64
	Size    float64
	Depth   float64
	Twinkle float64 // phase offset for brightness flicker
}

// Nebula is a soft background blob drawn at very low parallax.
type Nebula struct {
	X, Y   float64
	Radius float64
	Depth  float64
	Tint   uint8 // palette index
}

// Galaxy is a vector spiral drawn at very low parallax.
type Galaxy struct {
	X, Y   float64
	Radius float64
	Depth  float64
	Angle  float64
	Arms   int
}

// Field is everything generated for one mission.
type Field struct {
	Stars     []Star
	Nebulae   []Nebula
	Galaxies  []Galaxy
	Asteroids []*Asteroid
}

// maxBackgroundDepth caps nebula and galaxy parallax so they read as the deepest layer.
const maxBackgroundDepth = 0.05

// Generate builds a fresh field. It draws only from rng, so a fresh stream
// gives a fresh world.
func Generate(rng Rand, cfg config.World) *Field {
	f := &Field{
		Stars:     make([]Star, cfg.Stars),
		Nebulae:   make([]Nebula, cfg.Nebulae),
		Galaxies:  make([]Galaxy, cfg.Galaxies),
		Asteroids: make([]*Asteroid, 0, cfg.Asteroids),
	}

	extent := cfg.Bound + cfg.StarMargin
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:       between(rng, -extent, extent),
			Y:       between(rng, -extent, extent),
			Size:    between(rng, 0.5, 2.5),
			Depth:   between(rng, 0.1, 1.0),
			Twinkle: rng.Float64() * 2 * math.Pi,
		}
	}

	for i := range f.Nebulae {
		f.Nebulae[i] = Nebula{
			X:      between(rng, -extent, extent),
			Y:      between(rng, -extent, extent),
			Radius: between(rng, 200, 600),
			Depth:  between(rng, 0.01, maxBackgroundDepth),
			Tint:   uint8(rng.IntN(4)),
		}
	}

	for i := range f.Galaxies {
		f.Galaxies[i] = Galaxy{
			X:      between(rng, -extent, extent),
			Y:      between(rng, -extent, extent),
			Radius: between(rng, 80, 220),
			Depth:  between(rng, 0.01, maxBackgroundDepth),
			Angle:  rng.Float64() * 2 * math.Pi,
			Arms:   2 + rng.IntN(3),
		}
	}

	for i := 0; i < cfg.Asteroids; i++ {
		f.Asteroids = append(f.Asteroids, newAsteroid(rng, cfg, i+1))
	}
	return f
}

func newAsteroid(rng Rand, cfg config.World, id int) *Asteroid {
	angle := rng.Float64() * 2 * math.Pi
	dist := between(rng, cfg.MinSpawnRadius, cfg.Bound)
	radius := between(rng, cfg.MinRadius, cfg.MaxRadius)
	health := radius * cfg.HealthPerSize

	return &Asteroid{
		ID:            id,
		X:             math.Cos(angle) * dist,
		Y:             math.Sin(angle) * dist,
		Radius:        radius,
		Shape:         JaggedShape(rng, radius),
		Mineral:       MineralAt(dist, rng.Float64(), cfg),
		Health:        health,
		MaxHealth:     health,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: between(rng, -cfg.MaxSpin, cfg.MaxSpin),
	}
}

// MineralAt applies the banded rarity rule: the farther out, the more bands
// a roll can clear. Rarest band is checked first; Iron is the fallback.
func MineralAt(dist, roll float64, cfg config.World) Mineral {
	if dist > cfg.CrystalBand.Distance && roll > cfg.CrystalBand.Threshold {
		return Crystal
	}
	if dist > cfg.GoldBand.Distance && roll > cfg.GoldBand.Threshold {
		return Gold
	}
	if dist > cfg.CopperBand.Distance && roll > cfg.CopperBand.Threshold {
		return Copper
	}
	return Iron
}

func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
