package game

import (
	"math"

	"github.com/spacehole-rogue/deepminer/internal/config"
)

// Screen is the top-level screen the player is on.
type Screen uint8

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenDocked
	ScreenGameOver
)

func (sc Screen) String() string {
	switch sc {
	case ScreenPlaying:
		return "playing"
	case ScreenDocked:
		return "docked"
	case ScreenGameOver:
		return "game over"
	default:
		return "start"
	}
}

// Record totals the whole run across missions.
type Record struct {
	Missions        int
	AsteroidsMined  int
	AliensDestroyed int
	Stolen          int
	Last            MissionStats
}

// Flow is the screen state machine. It holds the ship between missions and
// builds a fresh Session every time play starts.
type Flow struct {
	Screen  Screen
	Ship    Ship
	Session *Session
	Record  Record

	opts Options
}

// NewFlow returns a flow on the start screen with a default ship.
func NewFlow(opts Options) *Flow {
	f := &Flow{opts: opts}
	f.opts.Hooks = Hooks{OnDock: f.docked, OnGameOver: f.gameOver}
	f.Ship = NewShip(f.tuning().Ship)
	return f
}

// Start leaves the start screen.
func (f *Flow) Start() bool {
	if f.Screen != ScreenStart {
		return false
	}
	f.begin()
	return true
}

// Launch leaves the station with the ship parked just outside it and drifting
// away.
func (f *Flow) Launch() bool {
	if f.Screen != ScreenDocked {
		return false
	}
	dock := f.tuning().Docking
	f.Ship.X = 0
	f.Ship.Y = dock.LaunchOffset
	f.Ship.VX = 0
	f.Ship.VY = dock.LaunchPush
	f.Ship.Rotation = math.Pi / 2
	f.begin()
	return true
}

// Restart throws the old ship away and starts over.
func (f *Flow) Restart() bool {
	if f.Screen != ScreenGameOver {
		return false
	}
	f.Ship = NewShip(f.tuning().Ship)
	f.Record = Record{}
	f.begin()
	return true
}

// Tick runs one frame of the live mission, if any.
func (f *Flow) Tick(in Input) {
	if f.Screen != ScreenPlaying || f.Session == nil {
		return
	}
	f.Session.Tick(in)
}

// Shutdown releases the live mission's audio loops.
func (f *Flow) Shutdown() {
	if f.Session != nil {
		f.Session.Stop()
	}
}

func (f *Flow) begin() {
	f.Shutdown()
	f.Session = NewSession(f.Ship, f.opts)
	f.Screen = ScreenPlaying
	f.Record.Missions++
}

func (f *Flow) docked(ship Ship) {
	f.Ship = ship
	f.endMission()
	f.Screen = ScreenDocked
}

func (f *Flow) gameOver(ship Ship) {
	f.Ship = ship
	f.endMission()
	f.Screen = ScreenGameOver
}

func (f *Flow) endMission() {
	st := f.Session.Stats
	f.Record.Last = st
	f.Record.AsteroidsMined += st.AsteroidsMined
	f.Record.AliensDestroyed += st.AliensDestroyed
	f.Record.Stolen += st.Stolen
	f.Session = nil
}

func (f *Flow) tuning() *config.Tuning {
	if f.opts.Tuning == nil {
		f.opts.Tuning = config.Default()
	}
	return f.opts.Tuning
}
