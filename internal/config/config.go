// Package config loads the game's tuning document.
//
// Every gameplay constant lives in a YAML file. The defaults are embedded in
// the binary and a user file, when given, is decoded on top of them so it only
// needs to name the values it changes.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// SeedEnv fixes the random seed when set.
const SeedEnv = "DEEPMINER_SEED"

// Tuning is the full tuning document.
type Tuning struct {
	Ship    Ship    `yaml:"ship"`
	World   World   `yaml:"world"`
	Mining  Mining  `yaml:"mining"`
	Alien   Alien   `yaml:"alien"`
	Loot    Loot    `yaml:"loot"`
	Docking Docking `yaml:"docking"`
	Camera  Camera  `yaml:"camera"`
	Station Station `yaml:"station"`
}

// Ship holds the starting (un-upgraded) ship stats.
type Ship struct {
	Acceleration          float64 `yaml:"acceleration"`
	MaxSpeed              float64 `yaml:"max_speed"`
	RotationSpeed         float64 `yaml:"rotation_speed"`
	MiningPower           float64 `yaml:"mining_power"`
	MiningRange           float64 `yaml:"mining_range"`
	FuelConsumptionRate   float64 `yaml:"fuel_consumption_rate"`
	ThrustConsumptionRate float64 `yaml:"thrust_consumption_rate"`
	MaxFuel               float64 `yaml:"max_fuel"`
	MaxCargo              int     `yaml:"max_cargo"`
	Drag                  float64 `yaml:"drag"`
	StopThreshold         float64 `yaml:"stop_threshold"`
	NoseOffset            float64 `yaml:"nose_offset"`
	StartY                float64 `yaml:"start_y"`
}

// Band is one rarity step: past Distance, a roll above Threshold upgrades the mineral.
type Band struct {
	Distance  float64 `yaml:"distance"`
	Threshold float64 `yaml:"threshold"`
}

// World controls the generator.
type World struct {
	Bound          float64 `yaml:"bound"`
	StarMargin     float64 `yaml:"star_margin"`
	Stars          int     `yaml:"stars"`
	Nebulae        int     `yaml:"nebulae"`
	Galaxies       int     `yaml:"galaxies"`
	Asteroids      int     `yaml:"asteroids"`
	MinSpawnRadius float64 `yaml:"min_spawn_radius"`
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	HealthPerSize  float64 `yaml:"health_per_size"`
	MaxSpin        float64 `yaml:"max_spin"`
	CopperBand     Band    `yaml:"copper_band"`
	GoldBand       Band    `yaml:"gold_band"`
	CrystalBand    Band    `yaml:"crystal_band"`
}

// Mining controls the laser and destruction effects.
type Mining struct {
	AimAssistRadius float64 `yaml:"aim_assist_radius"`
	SparkChance     float64 `yaml:"spark_chance"`
	AsteroidChunks  int     `yaml:"asteroid_chunks"`
	AsteroidDust    int     `yaml:"asteroid_dust"`
	AlienChunks     int     `yaml:"alien_chunks"`
	AlienDust       int     `yaml:"alien_dust"`
}

// Alien controls the predator.
type Alien struct {
	SpawnChance   float64 `yaml:"spawn_chance"`
	SpawnDistance float64 `yaml:"spawn_distance"`
	SpawnMargin   float64 `yaml:"spawn_margin"` // beyond the view's half-diagonal
	MaxHP         float64 `yaml:"max_hp"`
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	DrainRange    float64 `yaml:"drain_range"`
	DrainInterval int     `yaml:"drain_interval"`
	HoverDamping  float64 `yaml:"hover_damping"`
	WobbleStep    float64 `yaml:"wobble_step"`
}

// Loot controls drifting pickups.
type Loot struct {
	Drag              float64 `yaml:"drag"`
	Life              int     `yaml:"life"`
	CollectRange      float64 `yaml:"collect_range"`
	FullWarningChance float64 `yaml:"full_warning_chance"`
	ScatterSpeed      float64 `yaml:"scatter_speed"`
}

// Docking controls the station gate and launch placement.
type Docking struct {
	Range        float64 `yaml:"range"`
	HoldSpeed    float64 `yaml:"hold_speed"`
	DockSpeed    float64 `yaml:"dock_speed"`
	LaunchOffset float64 `yaml:"launch_offset"`
	LaunchPush   float64 `yaml:"launch_push"`
}

// Camera controls screen shake.
type Camera struct {
	ShakeHit        float64 `yaml:"shake_hit"`
	ShakeAsteroid   float64 `yaml:"shake_asteroid"`
	ShakeAlien      float64 `yaml:"shake_alien"`
	ShakeTheft      float64 `yaml:"shake_theft"`
	ShakeDecay      float64 `yaml:"shake_decay"`
	ShakeSnap       float64 `yaml:"shake_snap"`
	RadarWorldRange float64 `yaml:"radar_world_range"`
}

// Upgrade prices one shop upgrade.
type Upgrade struct {
	BaseCost   float64 `yaml:"base_cost"`
	Multiplier float64 `yaml:"multiplier"`
	Step       float64 `yaml:"step"`
}

// Station controls the shop.
type Station struct {
	Prices       map[string]int `yaml:"prices"`
	FuelCost     float64        `yaml:"fuel_cost"`
	Acceleration Upgrade        `yaml:"acceleration"`
	MaxCargo     Upgrade        `yaml:"max_cargo"`
	MiningPower  Upgrade        `yaml:"mining_power"`
	MaxFuel      Upgrade        `yaml:"max_fuel"`
}

// Default returns the embedded tuning. It panics only if the embedded file is
// broken, which the package tests guard against.
func Default() *Tuning {
	var t Tuning
	if err := yaml.Unmarshal(defaultYAML, &t); err != nil {
		panic(fmt.Sprintf("embedded tuning: %v", err))
	}
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("embedded tuning: %v", err))
	}
	return &t
}

// Parse decodes data on top of base, or on top of the embedded defaults when
// base is nil, and validates the result.
func Parse(data []byte, base *Tuning) (*Tuning, error) {
	if base == nil {
		base = Default()
	}
	t := *base
	t.Station.Prices = make(map[string]int, len(base.Station.Prices))
	for k, v := range base.Station.Prices {
		t.Station.Prices[k] = v
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a user tuning file and overlays it on the defaults.
// An empty path returns the defaults.
func Load(path string) (*Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}
	return Parse(data, nil)
}

// Seed returns the seed from DEEPMINER_SEED, or ok=false when unset or invalid.
func Seed() (seed int64, ok bool) {
	v, set := os.LookupEnv(SeedEnv)
	if !set {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tuning")

// Validate rejects values that would break the simulation.
func (t *Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"ship.max_speed", t.Ship.MaxSpeed},
		{"ship.mining_range", t.Ship.MiningRange},
		{"ship.max_fuel", t.Ship.MaxFuel},
		{"ship.max_cargo", float64(t.Ship.MaxCargo)},
		{"world.bound", t.World.Bound},
		{"world.max_radius", t.World.MaxRadius},
		{"alien.drain_range", t.Alien.DrainRange},
		{"alien.drain_interval", float64(t.Alien.DrainInterval)},
		{"loot.life", float64(t.Loot.Life)},
		{"loot.collect_range", t.Loot.CollectRange},
		{"docking.range", t.Docking.Range},
		{"docking.dock_speed", t.Docking.DockSpeed},
		{"station.fuel_cost", t.Station.FuelCost},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	chances := []struct {
		name string
		v    float64
	}{
		{"mining.spark_chance", t.Mining.SparkChance},
		{"alien.spawn_chance", t.Alien.SpawnChance},
		{"loot.full_warning_chance", t.Loot.FullWarningChance},
	}
	for _, c := range chances {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%w: %s must be within [0,1], got %v", ErrInvalid, c.name, c.v)
		}
	}

	if t.World.MinSpawnRadius >= t.World.Bound {
		return fmt.Errorf("%w: world.min_spawn_radius (%v) must be below world.bound (%v)",
			ErrInvalid, t.World.MinSpawnRadius, t.World.Bound)
	}
	if t.Alien.SpawnMargin < 0 {
		return fmt.Errorf("%w: alien.spawn_margin must not be negative, got %v", ErrInvalid, t.Alien.SpawnMargin)
	}
	if t.World.MinRadius > t.World.MaxRadius {
		return fmt.Errorf("%w: world.min_radius exceeds world.max_radius", ErrInvalid)
	}
	if t.Ship.Drag <= 0 || t.Ship.Drag > 1 {
		return fmt.Errorf("%w: ship.drag must be within (0,1], got %v", ErrInvalid, t.Ship.Drag)
	}
	return nil
}
