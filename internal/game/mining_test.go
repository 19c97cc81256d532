package game

import (
	"math"
	"testing"

	"github.com/spacehole-rogue/deepminer/internal/world"
)

// miningSetup parks the ship at (2000, 0) and puts a 100 HP asteroid 100px to
// its right, which is under the cursor at screen (740, 360).
func miningSetup(t *testing.T) (*Session, *world.Asteroid, Input) {
	t.Helper()
	s := newTestSession(t, nil)
	s.Ship.X, s.Ship.Y = 2000, 0
	ast := &world.Asteroid{ID: 1, X: 2100, Y: 0, Radius: 20, Health: 100, MaxHealth: 100, Mineral: world.Copper}
	s.Asteroids = []*world.Asteroid{ast}

	in := view
	in.Mining = true
	in.MouseX = 740
	return s, ast, in
}

func TestAsteroidDestroyedAfterExactHits(t *testing.T) {
	s, ast, in := miningSetup(t)

	for i := 1; i < 67; i++ {
		s.Tick(in)
		if len(s.Asteroids) != 1 {
			t.Fatalf("Asteroid destroyed early after %d hits (health %v)", i, ast.Health)
		}
	}
	s.Tick(in)

	if len(s.Asteroids) != 0 {
		t.Fatalf("Expected asteroid removed after 67 hits, health %v", ast.Health)
	}
	if len(s.Loot) != 1 {
		t.Fatalf("Expected exactly one loot, got %d", len(s.Loot))
	}
	if l := s.Loot[0]; l.Mineral != world.Copper || l.Amount != 4 {
		t.Errorf("Expected 4 Copper, got %d %v", l.Amount, l.Mineral)
	}
	if n := s.Particles.Len(); n < 8+15 {
		t.Errorf("Expected at least 23 particles, got %d", n)
	}
	if s.Stats.AsteroidsMined != 1 {
		t.Errorf("Expected 1 asteroid mined, got %d", s.Stats.AsteroidsMined)
	}

	// Nothing left to hit.
	s.Tick(in)
	if s.Laser.Active {
		t.Error("Expected no target after destruction")
	}
	if s.Stats.AsteroidsMined != 1 || len(s.Loot) != 1 {
		t.Error("Destroyed asteroid was resolved twice")
	}
}

func TestHealthOnlyDropsWhileTargeted(t *testing.T) {
	s, ast, in := miningSetup(t)

	idle := in
	idle.Mining = false
	s.Tick(idle)
	if ast.Health != 100 {
		t.Errorf("Expected untouched asteroid, got health %v", ast.Health)
	}

	away := in
	away.MouseX, away.MouseY = 100, 100
	s.Tick(away)
	if ast.Health != 100 {
		t.Errorf("Expected miss to leave health alone, got %v", ast.Health)
	}

	s.Tick(in)
	if ast.Health != 98.5 {
		t.Errorf("Expected health 98.5 after one hit, got %v", ast.Health)
	}
	if !ast.Heating {
		t.Error("Expected hit asteroid to be heating")
	}
}

func TestMiningNeedsRangeAndFuel(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		s, ast, in := miningSetup(t)
		ast.X = 2400
		in.MouseX = 1040
		s.Tick(in)
		if ast.Health != 100 || s.Laser.Active {
			t.Error("Expected asteroid beyond mining range to be ignored")
		}
	})

	t.Run("empty tank", func(t *testing.T) {
		s, ast, in := miningSetup(t)
		s.Ship.Fuel = 0
		s.Tick(in)
		if ast.Health != 100 {
			t.Error("Expected laser to stay off with no fuel")
		}
	})
}

func TestLaserCostsHalfThrust(t *testing.T) {
	s, _, in := miningSetup(t)
	s.Tick(in)

	cfg := s.Ship.Config
	want := cfg.MaxFuel - cfg.ThrustConsumptionRate/2 - cfg.FuelConsumptionRate
	if diff := s.Ship.Fuel - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected fuel %v, got %v", want, s.Ship.Fuel)
	}
}

func TestFirstOverlappingAsteroidWins(t *testing.T) {
	s, first, in := miningSetup(t)
	second := &world.Asteroid{ID: 2, X: 2105, Y: 0, Radius: 20, Health: 100, MaxHealth: 100}
	s.Asteroids = append(s.Asteroids, second)

	s.Tick(in)

	if first.Health != 98.5 {
		t.Errorf("Expected first asteroid hit, health %v", first.Health)
	}
	if second.Health != 100 {
		t.Errorf("Expected one target per frame, second health %v", second.Health)
	}
}

func TestAlienTakesPriority(t *testing.T) {
	s, ast, in := miningSetup(t)
	s.Alien = &Alien{ID: 99, X: 2110, Y: 5, HP: 60, MaxHP: 60}

	s.Tick(in)

	if s.Alien == nil || s.Alien.HP >= 60 {
		t.Fatal("Expected alien to be hit")
	}
	if ast.Health != 100 {
		t.Errorf("Expected asteroid spared while alien is targeted, got %v", ast.Health)
	}
	if !s.Laser.AtAlien {
		t.Error("Expected laser locked on alien")
	}
}

func TestAlienDropsStolenCargo(t *testing.T) {
	s := newTestSession(t, nil)
	s.Alien = &Alien{X: 500, Y: -300, HP: 1, MaxHP: 60}
	s.Alien.Stolen[world.Iron] = 3

	s.hitAlien(s.Alien)

	if s.Alien != nil {
		t.Fatal("Expected alien removed")
	}
	if len(s.Loot) != 1 {
		t.Fatalf("Expected exactly one loot, got %d", len(s.Loot))
	}
	l := s.Loot[0]
	if l.Mineral != world.Iron || l.Amount != 3 {
		t.Errorf("Expected 3 Iron, got %d %v", l.Amount, l.Mineral)
	}
	if l.X != 500 || l.Y != -300 {
		t.Errorf("Expected loot at (500,-300), got (%v,%v)", l.X, l.Y)
	}
	if n := s.Particles.Len(); n != 50 {
		t.Errorf("Expected 50 explosion particles, got %d", n)
	}
}

func TestEmptyAlienDropsNothing(t *testing.T) {
	s := newTestSession(t, nil)
	s.Alien = &Alien{X: 500, Y: 500, HP: 1, MaxHP: 60}

	s.hitAlien(s.Alien)

	if len(s.Loot) != 0 {
		t.Errorf("Expected no loot from an empty alien, got %d", len(s.Loot))
	}
	if s.Stats.AliensDestroyed != 1 {
		t.Errorf("Expected kill counted, got %d", s.Stats.AliensDestroyed)
	}
}

func TestHeatLastsOneFrame(t *testing.T) {
	s, ast, in := miningSetup(t)

	s.Tick(in)
	if !ast.Heating {
		t.Fatal("Expected hit asteroid to be heating")
	}

	idle := in
	idle.Mining = false
	s.Tick(idle)
	if ast.Heating {
		t.Error("Expected heat cleared on the next frame without a hit")
	}

	s.Tick(in)
	s.Tick(in)
	if !ast.Heating {
		t.Error("Expected heat to hold while the laser stays on")
	}
}

func TestShakeMagnitudes(t *testing.T) {
	t.Run("laser hit", func(t *testing.T) {
		s, _, in := miningSetup(t)
		s.Tick(in)
		if s.Camera.Shake != s.tun.Camera.ShakeHit {
			t.Errorf("Expected shake %v after a hit, got %v", s.tun.Camera.ShakeHit, s.Camera.Shake)
		}
	})

	t.Run("asteroid destroyed", func(t *testing.T) {
		s, ast, in := miningSetup(t)
		ast.Health = 1
		s.Tick(in)
		if len(s.Asteroids) != 0 {
			t.Fatal("Expected asteroid destroyed")
		}
		if s.Camera.Shake != s.tun.Camera.ShakeAsteroid {
			t.Errorf("Expected shake %v after a kill, got %v", s.tun.Camera.ShakeAsteroid, s.Camera.Shake)
		}
	})

	t.Run("alien destroyed", func(t *testing.T) {
		s, _, in := miningSetup(t)
		s.Alien = &Alien{ID: 99, X: 2110, Y: 5, HP: 1, MaxHP: 60}
		s.Tick(in)
		if s.Alien != nil {
			t.Fatal("Expected alien destroyed")
		}
		if s.Camera.Shake != s.tun.Camera.ShakeAlien {
			t.Errorf("Expected shake %v after an alien kill, got %v", s.tun.Camera.ShakeAlien, s.Camera.Shake)
		}
	})

	t.Run("decays once per frame", func(t *testing.T) {
		s, _, in := miningSetup(t)
		s.Tick(in)
		idle := in
		idle.Mining = false
		s.Tick(idle)
		want := s.tun.Camera.ShakeHit * s.tun.Camera.ShakeDecay
		if math.Abs(s.Camera.Shake-want) > 1e-9 {
			t.Errorf("Expected shake %v one frame after a hit, got %v", want, s.Camera.Shake)
		}
	})
}
