package game

import (
	"log/slog"
	"slices"

	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/logging"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

// Rand is the random source the simulation draws from. Tests inject a seeded
// or scripted one.
type Rand = world.Rand

// Outcome is the state of a mission after a tick.
type Outcome uint8

const (
	Running Outcome = iota
	Docked
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Docked:
		return "docked"
	case GameOver:
		return "game over"
	default:
		return "running"
	}
}

// Hooks are called once when a mission ends, with the final ship state.
type Hooks struct {
	OnDock     func(Ship)
	OnGameOver func(Ship)
}

// Options configures a session. Zero fields get working defaults except Rand,
// which is required.
type Options struct {
	Tuning *config.Tuning
	Rand   Rand
	Sounds Sounds
	Logger *slog.Logger
	Hooks  Hooks
}

// MissionStats counts what happened during one mission.
type MissionStats struct {
	Frames          uint64
	AsteroidsMined  int
	AliensDestroyed int
	Collected       int
	Stolen          int
}

// lowFuelFraction is where the fuel gauge turns red and comms warn once.
const lowFuelFraction = 0.2

// Session is one mission: every entity in play and the rules that move them.
// It is owned by a single goroutine; Tick mutates it and the renderer reads it.
type Session struct {
	Ship      Ship
	Field     *world.Field
	Asteroids []*world.Asteroid
	Alien     *Alien
	Loot      []*Loot
	Particles *Particles
	Camera    Camera
	Laser     Laser
	Thrusting bool
	Comms     *CommsLog
	Stats     MissionStats
	Frame     uint64

	tun     *config.Tuning
	rng     Rand
	sounds  Sounds
	log     *slog.Logger
	hooks   Hooks
	outcome Outcome
	nextID  int

	lowFuelWarned   bool
	cargoFullLogged bool
}

// NewSession generates a fresh world around ship and starts a mission.
func NewSession(ship Ship, opts Options) *Session {
	if opts.Tuning == nil {
		opts.Tuning = config.Default()
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	field := world.Generate(opts.Rand, opts.Tuning.World)
	s := &Session{
		Ship:      ship,
		Field:     field,
		Asteroids: slices.Clone(field.Asteroids),
		Particles: NewParticles(),
		Comms:     NewCommsLog(6),
		tun:       opts.Tuning,
		rng:       opts.Rand,
		sounds:    opts.Sounds,
		log:       opts.Logger,
		hooks:     opts.Hooks,
		nextID:    len(field.Asteroids) + 1,
	}
	s.lowFuelWarned = ship.FuelFraction() < lowFuelFraction
	s.Comms.Add(0, "Launch clear. Mine the field and dock to sell.", MsgInfo)
	s.log.Info("mission started",
		"asteroids", len(s.Asteroids),
		"fuel", ship.Fuel,
		"cargo", ship.Cargo.Total(),
		"credits", ship.Credits)
	return s
}

// Tuning returns the constants this session runs with.
func (s *Session) Tuning() *config.Tuning {
	return s.tun
}

// Outcome returns the mission state after the last tick.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Tick advances the mission by one frame. Once the mission has ended it does
// nothing and keeps returning the final outcome. A frame whose drawing surface
// has no size yet is skipped.
func (s *Session) Tick(in Input) Outcome {
	if s.outcome != Running || !in.ready() {
		return s.outcome
	}
	s.Frame++
	s.Stats.Frames = s.Frame
	s.settle()

	s.Thrusting = s.Ship.Step(in, s.tun.Ship.Drag)
	if s.Thrusting {
		s.exhaust()
	}
	loop(s.sounds, CueThrust, s.Thrusting)

	s.resolveMining(in)
	loop(s.sounds, CueLaser, s.Laser.Active)

	s.updateAlien(in)
	loop(s.sounds, CueAlienHum, s.Alien != nil)

	s.updateLoot()
	s.Particles.Update()
	for _, a := range s.Asteroids {
		a.Spin()
	}
	s.checkFuel()

	switch {
	case s.canDock():
		s.finish(Docked)
	case s.Ship.Stranded(s.tun.Ship.StopThreshold):
		s.finish(GameOver)
	}
	return s.outcome
}

// settle retires the last frame's presentation effects before new ones are
// raised: asteroid heat from the previous hit and one step of shake decay.
// It runs once per tick, never per draw.
func (s *Session) settle() {
	for _, a := range s.Asteroids {
		a.Heating = false
	}
	cam := s.tun.Camera
	s.Camera.Decay(cam.ShakeDecay, cam.ShakeSnap)
}

func (s *Session) checkFuel() {
	if !s.lowFuelWarned && s.Ship.FuelFraction() < lowFuelFraction {
		s.lowFuelWarned = true
		s.Comms.Add(s.Frame, "Fuel below 20%. Head back to the station.", MsgWarning)
	}
}

// Stop silences every loop this session may have started. It is safe to call
// more than once.
func (s *Session) Stop() {
	for c := Cue(0); c < CueCount; c++ {
		if c.Looping() {
			s.sounds.StopLoop(c)
		}
	}
}

// finish ends the mission and hands the ship to the matching hook. The alien,
// loot and particles are dropped with the session.
func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.Laser = Laser{}
	s.Thrusting = false
	s.Stop()

	s.log.Info("mission ended",
		"outcome", o.String(),
		"frames", s.Frame,
		"fuel", s.Ship.Fuel,
		"cargo", s.Ship.Cargo.Total(),
		"mined", s.Stats.AsteroidsMined,
		"stolen", s.Stats.Stolen)

	switch o {
	case Docked:
		if s.hooks.OnDock != nil {
			s.hooks.OnDock(s.Ship)
		}
	case GameOver:
		s.Comms.Add(s.Frame, "Tank dry. Drifting dead in the black.", MsgCritical)
		if s.hooks.OnGameOver != nil {
			s.hooks.OnGameOver(s.Ship)
		}
	}
}

func (s *Session) newID() int {
	id := s.nextID
	s.nextID++
	return id
}
