package game

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/deepminer/internal/world"
)

// AlienState is the predator's behavior.
type AlienState uint8

const (
	AlienChasing AlienState = iota
	AlienDraining
)

func (st AlienState) String() string {
	if st == AlienDraining {
		return "draining"
	}
	return "chasing"
}

// Alien is the roaming cargo thief. At most one is alive per mission.
type Alien struct {
	ID         int
	X, Y       float64
	VX, VY     float64
	HP, MaxHP  float64
	Stolen     world.Cargo
	State      AlienState
	DrainTimer int
	Wobble     float64 // cosmetic phase
}

// Damaged reports whether the alien has taken any hits.
func (a *Alien) Damaged() bool {
	return a.HP < a.MaxHP
}

// spawnAlien places a fresh alien around the ship, at the spawn distance or
// just past the corner of the view, whichever is farther.
func (s *Session) spawnAlien(viewW, viewH float64) *Alien {
	angle := s.rng.Float64() * 2 * math.Pi
	d := max(s.tun.Alien.SpawnDistance, math.Hypot(viewW, viewH)/2+s.tun.Alien.SpawnMargin)
	a := &Alien{
		ID:    s.newID(),
		X:     s.Ship.X + math.Cos(angle)*d,
		Y:     s.Ship.Y + math.Sin(angle)*d,
		HP:    s.tun.Alien.MaxHP,
		MaxHP: s.tun.Alien.MaxHP,
	}
	s.Alien = a
	s.Comms.Add(s.Frame, "Unknown contact closing in. It's after your cargo.", MsgCritical)
	s.log.Debug("alien spawned", "id", a.ID, "x", a.X, "y", a.Y)
	return a
}

// updateAlien rolls for a spawn when none is alive, otherwise steers the
// alien and runs its drain timer.
func (s *Session) updateAlien(in Input) {
	cfg := s.tun.Alien
	a := s.Alien
	if a == nil {
		if s.rng.Float64() < cfg.SpawnChance {
			s.spawnAlien(in.ViewW, in.ViewH)
		}
		return
	}

	a.Wobble += cfg.WobbleStep

	dx, dy := s.Ship.X-a.X, s.Ship.Y-a.Y
	d := math.Hypot(dx, dy)
	if d > 0.7*cfg.DrainRange {
		a.State = AlienChasing
		if d > 0 {
			a.VX += dx / d * cfg.Acceleration
			a.VY += dy / d * cfg.Acceleration
		}
		if speed := math.Hypot(a.VX, a.VY); speed > cfg.MaxSpeed {
			a.VX *= cfg.MaxSpeed / speed
			a.VY *= cfg.MaxSpeed / speed
		}
	} else {
		a.State = AlienDraining
		a.VX *= cfg.HoverDamping
		a.VY *= cfg.HoverDamping
	}
	a.X += a.VX
	a.Y += a.VY

	if a.State == AlienDraining && d <= cfg.DrainRange {
		a.DrainTimer++
		if a.DrainTimer >= cfg.DrainInterval {
			a.DrainTimer = 0
			s.drain(a)
		}
	}
}

// drain moves one unit of a random carried mineral from the ship to the alien.
// An empty hold loses nothing.
func (s *Session) drain(a *Alien) {
	present := s.Ship.Cargo.Present()
	if len(present) == 0 {
		return
	}
	m := present[s.rng.IntN(len(present))]
	s.Ship.Cargo[m]--
	a.Stolen[m]++
	s.Stats.Stolen++

	s.floatText(s.Ship.X, s.Ship.Y-24, fmt.Sprintf("-1 %s", m), colorWarning)
	s.sounds.Play(CueZap)
	s.Camera.AddShake(s.tun.Camera.ShakeTheft)
	if a.Stolen.Total() == 1 {
		s.Comms.Add(s.Frame, "Cargo breach! The alien is siphoning your hold.", MsgWarning)
	}
}
