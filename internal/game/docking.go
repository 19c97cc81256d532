package game

import "math"

// DockStatus describes the ship's approach to the station for the HUD.
type DockStatus uint8

const (
	DockOutOfRange DockStatus = iota
	DockTooFast               // inside range, above the hold speed
	DockHolding               // inside range and slow, settling to dock speed
)

// StationDistance returns the ship's distance from the station at the origin.
func (s *Session) StationDistance() float64 {
	return math.Hypot(s.Ship.X, s.Ship.Y)
}

// DockStatus reports where the ship stands relative to the docking gate.
func (s *Session) DockStatus() DockStatus {
	if s.StationDistance() > s.tun.Docking.Range {
		return DockOutOfRange
	}
	if s.Ship.Speed() >= s.tun.Docking.HoldSpeed {
		return DockTooFast
	}
	return DockHolding
}

// canDock reports whether the ship is inside the station range and slow
// enough to dock this frame.
func (s *Session) canDock() bool {
	speed := s.Ship.Speed()
	return s.StationDistance() <= s.tun.Docking.Range &&
		speed < s.tun.Docking.HoldSpeed &&
		speed < s.tun.Docking.DockSpeed
}
