package game

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/deepminer/internal/world"
)

// Loot is a drifting pickup carrying Amount units of one mineral.
type Loot struct {
	ID      int
	X, Y    float64
	VX, VY  float64
	Mineral world.Mineral
	Amount  int
	Life    int // frames until despawn; zero means gone
}

// spawnLoot drops a pickup at (x, y) with a small random scatter velocity.
func (s *Session) spawnLoot(x, y float64, m world.Mineral, amount int) *Loot {
	angle := s.rng.Float64() * 2 * math.Pi
	speed := s.rng.Float64() * s.tun.Loot.ScatterSpeed
	l := &Loot{
		ID:      s.newID(),
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Mineral: m,
		Amount:  amount,
		Life:    s.tun.Loot.Life,
	}
	s.Loot = append(s.Loot, l)
	return l
}

// updateLoot drifts, ages and collects pickups, then drops the dead ones.
func (s *Session) updateLoot() {
	cfg := s.tun.Loot
	ship := &s.Ship

	for _, l := range s.Loot {
		l.X += l.VX
		l.Y += l.VY
		l.VX *= cfg.Drag
		l.VY *= cfg.Drag
		l.Life--
		if l.Life <= 0 {
			continue
		}
		if dist(ship.X, ship.Y, l.X, l.Y) >= cfg.CollectRange {
			continue
		}

		if ship.Cargo.Total()+l.Amount <= ship.Config.MaxCargo {
			ship.Cargo[l.Mineral] += l.Amount
			l.Life = 0
			s.Stats.Collected += l.Amount
			s.floatText(l.X, l.Y, fmt.Sprintf("+%d %s", l.Amount, l.Mineral), l.Mineral.Color())
			s.sounds.Play(CueCollect)
			continue
		}
		if s.rng.Float64() < cfg.FullWarningChance {
			s.floatText(ship.X, ship.Y-30, "CARGO FULL", colorWarning)
			if !s.cargoFullLogged {
				s.Comms.Add(s.Frame, "Cargo hold full. Return to the station to sell.", MsgWarning)
				s.cargoFullLogged = true
			}
		}
	}

	kept := s.Loot[:0]
	for _, l := range s.Loot {
		if l.Life > 0 {
			kept = append(kept, l)
		}
	}
	clear(s.Loot[len(kept):])
	s.Loot = kept
}
