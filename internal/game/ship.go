package game

import (
	"math"

	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

// ShipConfig holds the ship stats the station can upgrade.
type ShipConfig struct {
	Acceleration          float64
	MaxSpeed              float64
	RotationSpeed         float64
	MiningPower           float64
	MiningRange           float64
	FuelConsumptionRate   float64 // idle drain per frame
	ThrustConsumptionRate float64 // extra drain per thrusting frame
	MaxFuel               float64
	MaxCargo              int
}

// Ship is the player's vessel. It is a plain value so the screen flow can hold
// it between missions and hand a copy to each new session.
type Ship struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64 // radians, 0 = facing +X
	Fuel     float64
	Cargo    world.Cargo
	Credits  int
	Config   ShipConfig
}

// NewShip returns a fresh, fully fuelled ship parked just below the station.
func NewShip(cfg config.Ship) Ship {
	return Ship{
		Y:        cfg.StartY,
		Rotation: -math.Pi / 2,
		Fuel:     cfg.MaxFuel,
		Config: ShipConfig{
			Acceleration:          cfg.Acceleration,
			MaxSpeed:              cfg.MaxSpeed,
			RotationSpeed:         cfg.RotationSpeed,
			MiningPower:           cfg.MiningPower,
			MiningRange:           cfg.MiningRange,
			FuelConsumptionRate:   cfg.FuelConsumptionRate,
			ThrustConsumptionRate: cfg.ThrustConsumptionRate,
			MaxFuel:               cfg.MaxFuel,
			MaxCargo:              cfg.MaxCargo,
		},
	}
}

// Speed returns the current velocity magnitude.
func (s *Ship) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// FuelFraction returns fuel as a fraction of the tank (0-1).
func (s *Ship) FuelFraction() float64 {
	if s.Config.MaxFuel <= 0 {
		return 0
	}
	return s.Fuel / s.Config.MaxFuel
}

// CargoFree returns how many more units the hold accepts.
func (s *Ship) CargoFree() int {
	return s.Config.MaxCargo - s.Cargo.Total()
}

// Nose returns the point offset ahead of the ship along its heading.
func (s *Ship) Nose(offset float64) (x, y float64) {
	return s.X + math.Cos(s.Rotation)*offset, s.Y + math.Sin(s.Rotation)*offset
}

// Burn removes fuel, clamping at zero.
func (s *Ship) Burn(amount float64) {
	s.Fuel = math.Max(0, s.Fuel-amount)
}

// CapSpeed rescales velocity so its magnitude does not exceed MaxSpeed.
func (s *Ship) CapSpeed() {
	speed := s.Speed()
	if speed > s.Config.MaxSpeed && speed > 0 {
		scale := s.Config.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}
}

// Step advances ship physics by one frame: rotate, thrust, drag, cap speed,
// move, then idle drain. It reports whether the engine fired.
func (s *Ship) Step(in Input, drag float64) (thrusting bool) {
	if in.Left {
		s.Rotation -= s.Config.RotationSpeed
	}
	if in.Right {
		s.Rotation += s.Config.RotationSpeed
	}

	if in.Thrust && s.Fuel > 0 {
		s.VX += math.Cos(s.Rotation) * s.Config.Acceleration
		s.VY += math.Sin(s.Rotation) * s.Config.Acceleration
		s.Burn(s.Config.ThrustConsumptionRate)
		thrusting = true
	}

	s.VX *= drag
	s.VY *= drag
	s.CapSpeed()

	s.X += s.VX
	s.Y += s.VY

	if s.Fuel > 0 {
		s.Burn(s.Config.FuelConsumptionRate)
	}
	return thrusting
}

// Stranded reports whether the tank is empty and the ship has coasted to a stop.
func (s *Ship) Stranded(threshold float64) bool {
	return s.Fuel <= 0 && math.Abs(s.VX) < threshold && math.Abs(s.VY) < threshold
}
