package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLoads(t *testing.T) {
	tun := Default()

	if tun.Ship.MaxFuel != 1000 {
		t.Errorf("Expected max fuel 1000, got %v", tun.Ship.MaxFuel)
	}
	if tun.Ship.MaxCargo != 50 {
		t.Errorf("Expected max cargo 50, got %d", tun.Ship.MaxCargo)
	}
	if tun.Ship.Drag != 0.99 {
		t.Errorf("Expected drag 0.99, got %v", tun.Ship.Drag)
	}
	if tun.Loot.Life != 1800 {
		t.Errorf("Expected loot life 1800 frames, got %d", tun.Loot.Life)
	}
	if got := tun.Station.Prices["crystal"]; got != 150 {
		t.Errorf("Expected crystal price 150, got %d", got)
	}
	if tun.World.CrystalBand.Distance <= tun.World.GoldBand.Distance {
		t.Error("Rarity bands should widen with distance")
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte("ship:\n  max_cargo: 80\nstation:\n  prices:\n    iron: 12\n")

	tun, err := Parse(data, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tun.Ship.MaxCargo != 80 {
		t.Errorf("Expected overridden max cargo 80, got %d", tun.Ship.MaxCargo)
	}
	if tun.Ship.MaxFuel != 1000 {
		t.Errorf("Expected untouched max fuel 1000, got %v", tun.Ship.MaxFuel)
	}
	if tun.Station.Prices["iron"] != 12 {
		t.Errorf("Expected iron price 12, got %d", tun.Station.Prices["iron"])
	}
	if tun.Station.Prices["gold"] != 60 {
		t.Errorf("Expected gold price kept at 60, got %d", tun.Station.Prices["gold"])
	}
}

func TestParseDoesNotMutateBase(t *testing.T) {
	base := Default()
	if _, err := Parse([]byte("station:\n  prices:\n    iron: 99\n"), base); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if base.Station.Prices["iron"] != 10 {
		t.Errorf("Base prices were mutated: iron = %d", base.Station.Prices["iron"])
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative max speed", "ship:\n  max_speed: -1\n"},
		{"zero cargo", "ship:\n  max_cargo: 0\n"},
		{"chance above one", "alien:\n  spawn_chance: 1.5\n"},
		{"spawn radius past bound", "world:\n  min_spawn_radius: 5000\n"},
		{"drag above one", "ship:\n  drag: 1.2\n"},
		{"inverted radius range", "world:\n  min_radius: 60\n"},
		{"negative spawn margin", "alien:\n  spawn_margin: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), nil)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("ship: [unterminated"), nil)
	if err == nil {
		t.Fatal("Expected parse error for malformed YAML")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("Malformed YAML should be a parse error, not a validation error")
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		tun, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if tun.Ship.MaxFuel != 1000 {
			t.Errorf("Expected default max fuel, got %v", tun.Ship.MaxFuel)
		}
	})

	t.Run("file overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte("alien:\n  spawn_chance: 0\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		tun, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if tun.Alien.SpawnChance != 0 {
			t.Errorf("Expected spawn chance 0, got %v", tun.Alien.SpawnChance)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestSeed(t *testing.T) {
	t.Setenv(SeedEnv, "42")
	seed, ok := Seed()
	if !ok || seed != 42 {
		t.Errorf("Expected seed 42, got %d (ok=%v)", seed, ok)
	}

	t.Setenv(SeedEnv, "not-a-number")
	if _, ok := Seed(); ok {
		t.Error("Expected invalid seed to be ignored")
	}
}
