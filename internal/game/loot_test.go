package game

import (
	"slices"
	"testing"

	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

func lootSession(t *testing.T, mutate func(*config.Tuning)) *Session {
	t.Helper()
	s := newTestSession(t, mutate)
	s.Ship.X, s.Ship.Y = 2000, 0
	return s
}

func TestLootCollection(t *testing.T) {
	s := lootSession(t, nil)
	s.Loot = []*Loot{{ID: 1, X: 2010, Y: 0, Mineral: world.Gold, Amount: 3, Life: 100}}

	s.Tick(view)

	if s.Ship.Cargo[world.Gold] != 3 {
		t.Errorf("Expected 3 Gold collected, got %d", s.Ship.Cargo[world.Gold])
	}
	if len(s.Loot) != 0 {
		t.Errorf("Expected collected loot removed, %d left", len(s.Loot))
	}
	if !slices.Contains(s.Particles.Texts(), "+3 Gold") {
		t.Errorf("Expected pickup text, got %v", s.Particles.Texts())
	}
}

func TestLootCollectedOnce(t *testing.T) {
	s := lootSession(t, nil)
	l := &Loot{ID: 1, X: 2010, Y: 0, Mineral: world.Iron, Amount: 2, Life: 100}
	s.Loot = []*Loot{l}

	s.updateLoot()
	// Put the spent instance back, as if something held on to it.
	s.Loot = append(s.Loot, l)
	s.updateLoot()

	if s.Ship.Cargo[world.Iron] != 2 {
		t.Errorf("Expected loot counted once, got %d Iron", s.Ship.Cargo[world.Iron])
	}
	if len(s.Loot) != 0 {
		t.Errorf("Expected spent loot dropped, %d left", len(s.Loot))
	}
}

func TestLootCargoFull(t *testing.T) {
	s := lootSession(t, func(tun *config.Tuning) { tun.Loot.FullWarningChance = 1 })
	s.Ship.Cargo[world.Iron] = s.Ship.Config.MaxCargo - 1
	s.Loot = []*Loot{{ID: 1, X: 2010, Y: 0, Mineral: world.Crystal, Amount: 3, Life: 100}}

	s.Tick(view)

	if s.Ship.Cargo.Total() > s.Ship.Config.MaxCargo {
		t.Fatalf("Cargo %d exceeds max %d", s.Ship.Cargo.Total(), s.Ship.Config.MaxCargo)
	}
	if s.Ship.Cargo[world.Crystal] != 0 {
		t.Error("Expected no partial pickup")
	}
	if len(s.Loot) != 1 {
		t.Fatalf("Expected loot left in place, got %d", len(s.Loot))
	}
	if !slices.Contains(s.Particles.Texts(), "CARGO FULL") {
		t.Errorf("Expected cargo full warning, got %v", s.Particles.Texts())
	}
}

func TestLootFitsExactly(t *testing.T) {
	s := lootSession(t, nil)
	s.Ship.Cargo[world.Iron] = s.Ship.Config.MaxCargo - 3
	s.Loot = []*Loot{{ID: 1, X: 2010, Y: 0, Mineral: world.Iron, Amount: 3, Life: 100}}

	s.Tick(view)

	if s.Ship.Cargo.Total() != s.Ship.Config.MaxCargo {
		t.Errorf("Expected a full hold, got %d", s.Ship.Cargo.Total())
	}
}

func TestLootExpires(t *testing.T) {
	s := lootSession(t, nil)
	s.Loot = []*Loot{
		{ID: 1, X: 0, Y: 3000, Mineral: world.Iron, Amount: 1, Life: 1},
		{ID: 2, X: 0, Y: 3100, Mineral: world.Gold, Amount: 1, Life: 2},
	}

	s.updateLoot()
	if len(s.Loot) != 1 || s.Loot[0].ID != 2 {
		t.Fatalf("Expected only loot 2 left, got %d items", len(s.Loot))
	}
	s.updateLoot()
	if len(s.Loot) != 0 {
		t.Errorf("Expected all loot expired, %d left", len(s.Loot))
	}
	if !s.Ship.Cargo.Empty() {
		t.Errorf("Expected expired loot to give nothing, got %v", s.Ship.Cargo)
	}
}

func TestLootDrifts(t *testing.T) {
	s := lootSession(t, nil)
	l := &Loot{ID: 1, X: 0, Y: 3000, VX: 2, Mineral: world.Iron, Amount: 1, Life: 100}
	s.Loot = []*Loot{l}

	s.updateLoot()

	if l.X != 2 {
		t.Errorf("Expected loot moved to x=2, got %v", l.X)
	}
	if l.VX != 2*s.tun.Loot.Drag {
		t.Errorf("Expected drag applied, vx=%v", l.VX)
	}
	if l.Life != 99 {
		t.Errorf("Expected life 99, got %d", l.Life)
	}
}
