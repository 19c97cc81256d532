// Package station is the shop the ship visits between missions: selling ore,
// buying fuel and buying upgrades. It only runs while the ship is docked.
package station

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/game"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

// UpgradeKind identifies a purchasable upgrade.
type UpgradeKind uint8

const (
	UpgradeAcceleration UpgradeKind = iota
	UpgradeMaxCargo
	UpgradeMiningPower
	UpgradeMaxFuel
	UpgradeKindCount
)

var upgradeNames = [UpgradeKindCount]string{
	UpgradeAcceleration: "Thrusters",
	UpgradeMaxCargo:     "Cargo Hold",
	UpgradeMiningPower:  "Mining Laser",
	UpgradeMaxFuel:      "Fuel Tank",
}

// String returns the display name.
func (k UpgradeKind) String() string {
	if k < UpgradeKindCount {
		return upgradeNames[k]
	}
	return "Unknown"
}

// Shop prices trades against the station tuning. Upgrade levels are inferred
// from how far a stat has moved from its starting value.
type Shop struct {
	cfg  config.Station
	base game.ShipConfig
}

// NewShop creates a shop. base is the un-upgraded ship the levels count from.
func NewShop(cfg config.Station, base config.Ship) *Shop {
	return &Shop{cfg: cfg, base: game.NewShip(base).Config}
}

// Price returns what the station pays per unit of m.
func (sh *Shop) Price(m world.Mineral) int {
	return sh.cfg.Prices[m.Key()]
}

// CargoValue returns what the whole hold would sell for.
func (sh *Shop) CargoValue(cargo world.Cargo) int {
	total := 0
	for m, n := range cargo {
		total += n * sh.Price(world.Mineral(m))
	}
	return total
}

// SellAll sells every unit in the hold and returns the credits earned.
func (sh *Shop) SellAll(ship *game.Ship) int {
	earned := sh.CargoValue(ship.Cargo)
	ship.Credits += earned
	ship.Cargo = world.Cargo{}
	return earned
}

// fuelEpsilon absorbs float error in fuel prices such as 1000 * 0.1.
const fuelEpsilon = 1e-9

// RefuelCost returns the credits needed to fill the tank.
func (sh *Shop) RefuelCost(ship *game.Ship) int {
	missing := ship.Config.MaxFuel - ship.Fuel
	if missing <= 0 {
		return 0
	}
	return int(math.Ceil(missing*sh.cfg.FuelCost - fuelEpsilon))
}

// Refuel fills the tank, or buys as much fuel as the credits allow and spends
// them all. It returns the fuel units bought.
func (sh *Shop) Refuel(ship *game.Ship) float64 {
	missing := ship.Config.MaxFuel - ship.Fuel
	if missing <= 0 || ship.Credits <= 0 {
		return 0
	}

	if cost := sh.RefuelCost(ship); ship.Credits >= cost {
		ship.Fuel = ship.Config.MaxFuel
		ship.Credits -= cost
		return missing
	}

	units := math.Floor(float64(ship.Credits)/sh.cfg.FuelCost + fuelEpsilon)
	units = math.Min(units, missing)
	ship.Fuel += units
	ship.Credits = 0
	return units
}

func (sh *Shop) upgrade(k UpgradeKind) config.Upgrade {
	switch k {
	case UpgradeAcceleration:
		return sh.cfg.Acceleration
	case UpgradeMaxCargo:
		return sh.cfg.MaxCargo
	case UpgradeMiningPower:
		return sh.cfg.MiningPower
	default:
		return sh.cfg.MaxFuel
	}
}

// stat returns the value k upgrades.
func stat(c *game.ShipConfig, k UpgradeKind) float64 {
	switch k {
	case UpgradeAcceleration:
		return c.Acceleration
	case UpgradeMaxCargo:
		return float64(c.MaxCargo)
	case UpgradeMiningPower:
		return c.MiningPower
	default:
		return c.MaxFuel
	}
}

// raise adds one upgrade step to the value k upgrades.
func raise(c *game.ShipConfig, k UpgradeKind, step float64) {
	switch k {
	case UpgradeAcceleration:
		c.Acceleration += step
	case UpgradeMaxCargo:
		c.MaxCargo += int(math.Round(step))
	case UpgradeMiningPower:
		c.MiningPower += step
	default:
		c.MaxFuel += step
	}
}

// Level returns how many times k has been bought for this ship.
func (sh *Shop) Level(ship *game.Ship, k UpgradeKind) int {
	up := sh.upgrade(k)
	if up.Step <= 0 {
		return 0
	}
	delta := stat(&ship.Config, k) - stat(&sh.base, k)
	return max(0, int(math.Round(delta/up.Step)))
}

// UpgradeCost returns base x multiplier^level for the next purchase of k.
func (sh *Shop) UpgradeCost(ship *game.Ship, k UpgradeKind) int {
	up := sh.upgrade(k)
	level := sh.Level(ship, k)
	return int(math.Round(up.BaseCost * math.Pow(up.Multiplier, float64(level))))
}

// Buy purchases one level of k. It does nothing and returns false when the
// ship can't afford it.
func (sh *Shop) Buy(ship *game.Ship, k UpgradeKind) bool {
	if k >= UpgradeKindCount {
		return false
	}
	cost := sh.UpgradeCost(ship, k)
	if ship.Credits < cost {
		return false
	}
	ship.Credits -= cost

	raise(&ship.Config, k, sh.upgrade(k).Step)
	return true
}

// Describe returns a one-line shop label for k.
func (sh *Shop) Describe(ship *game.Ship, k UpgradeKind) string {
	return fmt.Sprintf("%s Lv%d  (%d cr)", k, sh.Level(ship, k)+1, sh.UpgradeCost(ship, k))
}
