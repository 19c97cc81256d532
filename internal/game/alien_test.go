package game

import (
	"math"
	"testing"

	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

func TestAlienSpawnsAtDistance(t *testing.T) {
	s := newTestSession(t, func(tun *config.Tuning) { tun.Alien.SpawnChance = 1 })
	s.Ship.X, s.Ship.Y = 1000, 1000

	s.Tick(view)

	a := s.Alien
	if a == nil {
		t.Fatal("Expected alien to spawn")
	}
	d := dist(s.Ship.X, s.Ship.Y, a.X, a.Y)
	if math.Abs(d-s.tun.Alien.SpawnDistance) > 1e-6 {
		t.Errorf("Expected spawn %v from ship, got %v", s.tun.Alien.SpawnDistance, d)
	}
	if a.HP != a.MaxHP || a.VX != 0 || a.VY != 0 {
		t.Errorf("Expected full HP and zero velocity, got hp=%v v=(%v,%v)", a.HP, a.VX, a.VY)
	}
}

func TestAlienStates(t *testing.T) {
	s := newTestSession(t, nil)
	s.Ship.X, s.Ship.Y = 1000, 1000

	s.Alien = &Alien{X: 2000, Y: 1000, HP: 60, MaxHP: 60}
	s.updateAlien(view)
	if s.Alien.State != AlienChasing {
		t.Errorf("Expected chasing when far, got %v", s.Alien.State)
	}
	if s.Alien.VX >= 0 {
		t.Errorf("Expected alien to accelerate toward ship, vx=%v", s.Alien.VX)
	}

	s.Alien = &Alien{X: 1100, Y: 1000, VX: 2, HP: 60, MaxHP: 60}
	s.updateAlien(view)
	if s.Alien.State != AlienDraining {
		t.Errorf("Expected draining when close, got %v", s.Alien.State)
	}
	if s.Alien.VX != 2*s.tun.Alien.HoverDamping {
		t.Errorf("Expected hover damping, vx=%v", s.Alien.VX)
	}
}

func TestAlienSpeedCapped(t *testing.T) {
	s := newTestSession(t, nil)
	s.Alien = &Alien{X: 5000, Y: 200, VX: -20, HP: 60, MaxHP: 60}

	s.updateAlien(view)

	if speed := math.Hypot(s.Alien.VX, s.Alien.VY); speed > s.tun.Alien.MaxSpeed+1e-9 {
		t.Errorf("Expected speed capped at %v, got %v", s.tun.Alien.MaxSpeed, speed)
	}
}

func TestDrainTransfersOneUnit(t *testing.T) {
	s := newTestSession(t, nil)
	s.rng = fixedRand{f: 0.5, n: 1}
	s.Ship.Cargo[world.Iron] = 1
	s.Ship.Cargo[world.Gold] = 2
	a := &Alien{HP: 60, MaxHP: 60}

	s.drain(a)

	if s.Ship.Cargo[world.Gold] != 1 || a.Stolen[world.Gold] != 1 {
		t.Errorf("Expected one Gold moved, ship=%v alien=%v", s.Ship.Cargo, a.Stolen)
	}
	if s.Ship.Cargo[world.Iron] != 1 {
		t.Errorf("Expected Iron untouched, got %d", s.Ship.Cargo[world.Iron])
	}
	if s.Stats.Stolen != 1 {
		t.Errorf("Expected 1 unit stolen, got %d", s.Stats.Stolen)
	}
}

func TestDrainNeverGoesNegative(t *testing.T) {
	s := newTestSession(t, nil)
	s.Ship.Cargo[world.Iron] = 2
	s.Ship.Cargo[world.Crystal] = 1
	a := &Alien{HP: 60, MaxHP: 60}

	for range 10 {
		s.drain(a)
		for m, n := range s.Ship.Cargo {
			if n < 0 {
				t.Fatalf("%v went negative: %d", world.Mineral(m), n)
			}
		}
	}

	if !s.Ship.Cargo.Empty() {
		t.Errorf("Expected hold emptied, got %v", s.Ship.Cargo)
	}
	if a.Stolen[world.Iron] != 2 || a.Stolen[world.Crystal] != 1 {
		t.Errorf("Expected alien to hold everything, got %v", a.Stolen)
	}
}

func TestDrainTimerResetsOnEmptyHold(t *testing.T) {
	s := newTestSession(t, nil)
	s.Ship.X, s.Ship.Y = 1000, 1000
	interval := s.tun.Alien.DrainInterval
	s.Alien = &Alien{X: 1100, Y: 1000, HP: 60, MaxHP: 60, State: AlienDraining, DrainTimer: interval - 1}

	s.updateAlien(view)

	if s.Alien.DrainTimer != 0 {
		t.Errorf("Expected timer reset, got %d", s.Alien.DrainTimer)
	}
	if !s.Alien.Stolen.Empty() {
		t.Errorf("Expected nothing stolen from an empty hold, got %v", s.Alien.Stolen)
	}
}

func TestDrainTimerOnlyRunsWhileDraining(t *testing.T) {
	s := newTestSession(t, nil)
	s.Ship.X, s.Ship.Y = 1000, 1000
	s.Ship.Cargo[world.Iron] = 5
	s.Alien = &Alien{X: 1500, Y: 1000, HP: 60, MaxHP: 60, DrainTimer: 10}

	s.updateAlien(view)

	if s.Alien.DrainTimer != 10 {
		t.Errorf("Expected chasing alien to leave the timer alone, got %d", s.Alien.DrainTimer)
	}
}

func TestAlienSpawnsOutsideLargeView(t *testing.T) {
	s := newTestSession(t, func(tun *config.Tuning) { tun.Alien.SpawnChance = 1 })
	s.Ship.X, s.Ship.Y = 1000, 1000

	s.Tick(Input{ViewW: 4000, ViewH: 3000})

	if s.Alien == nil {
		t.Fatal("Expected alien to spawn")
	}
	want := 2500 + s.tun.Alien.SpawnMargin
	if d := dist(s.Ship.X, s.Ship.Y, s.Alien.X, s.Alien.Y); math.Abs(d-want) > 1e-6 {
		t.Errorf("Expected spawn %v from ship for a 4000x3000 view, got %v", want, d)
	}
}
