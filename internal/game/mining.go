package game

import (
	"math"
	"slices"
)

// Laser is the beam drawn this frame. Active is false when nothing is locked.
type Laser struct {
	Active  bool
	FromX   float64
	FromY   float64
	ToX     float64
	ToY     float64
	AtAlien bool
}

// resolveMining picks at most one target under the cursor and damages it.
// The alien wins over asteroids; among asteroids the first match in field
// order is taken.
func (s *Session) resolveMining(in Input) {
	s.Laser = Laser{}
	ship := &s.Ship
	if !in.Mining || ship.Fuel <= 0 {
		return
	}

	noseX, noseY := ship.Nose(s.tun.Ship.NoseOffset)
	camX, camY := s.CameraOrigin(in.ViewW, in.ViewH)

	if a := s.Alien; a != nil {
		cursorX, cursorY := in.MouseX+camX, in.MouseY+camY
		if dist(cursorX, cursorY, a.X, a.Y) <= s.tun.Mining.AimAssistRadius &&
			dist(noseX, noseY, a.X, a.Y) <= ship.Config.MiningRange {
			s.fire(noseX, noseY, a.X, a.Y, true)
			s.hitAlien(a)
			return
		}
	}

	for i, ast := range s.Asteroids {
		sx, sy := ast.X-camX, ast.Y-camY
		if dist(in.MouseX, in.MouseY, sx, sy) > ast.Radius {
			continue
		}
		if dist(ship.X, ship.Y, ast.X, ast.Y) > ship.Config.MiningRange {
			continue
		}
		s.fire(noseX, noseY, ast.X, ast.Y, false)
		s.hitAsteroid(i)
		return
	}
}

// fire locks the beam and pays the laser's fuel cost.
func (s *Session) fire(fromX, fromY, toX, toY float64, atAlien bool) {
	s.Laser = Laser{Active: true, FromX: fromX, FromY: fromY, ToX: toX, ToY: toY, AtAlien: atAlien}
	s.Ship.Burn(s.Ship.Config.ThrustConsumptionRate / 2)
	s.Camera.AddShake(s.tun.Camera.ShakeHit)
	if s.rng.Float64() < s.tun.Mining.SparkChance {
		s.spark(toX, toY)
	}
}

func (s *Session) hitAsteroid(i int) {
	ast := s.Asteroids[i]
	ast.Health -= s.Ship.Config.MiningPower
	ast.Heating = true
	if !ast.Destroyed() {
		return
	}

	amount := max(1, int(math.Floor(ast.Radius/5)))
	s.spawnLoot(ast.X, ast.Y, ast.Mineral, amount)
	s.explode(ast.X, ast.Y, s.tun.Mining.AsteroidChunks, s.tun.Mining.AsteroidDust, ast.Mineral.Color())
	s.Camera.AddShake(s.tun.Camera.ShakeAsteroid)
	s.sounds.Play(CueExplosion)
	s.Stats.AsteroidsMined++
	s.log.Debug("asteroid destroyed", "id", ast.ID, "mineral", ast.Mineral.String(), "loot", amount)
	s.Asteroids = slices.Delete(s.Asteroids, i, i+1)
}

func (s *Session) hitAlien(a *Alien) {
	a.HP -= s.Ship.Config.MiningPower
	if a.HP > 0 {
		return
	}
	s.destroyAlien(a)
}

// destroyAlien returns everything the alien stole as one pickup per mineral.
func (s *Session) destroyAlien(a *Alien) {
	for _, m := range a.Stolen.Present() {
		s.spawnLoot(a.X, a.Y, m, a.Stolen[m])
	}
	s.explode(a.X, a.Y, s.tun.Mining.AlienChunks, s.tun.Mining.AlienDust, colorAlien)
	s.Camera.AddShake(s.tun.Camera.ShakeAlien)
	s.sounds.Play(CueExplosion)
	s.Stats.AliensDestroyed++
	s.log.Debug("alien destroyed", "id", a.ID, "returned", a.Stolen.Total())
	s.Comms.Add(s.Frame, "Hostile destroyed. Recover any stolen cargo.", MsgReward)
	s.Alien = nil
}
