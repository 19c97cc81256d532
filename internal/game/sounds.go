package game

// Cue names a sound the simulation can ask for.
type Cue uint8

const (
	// Looping cues.
	CueThrust Cue = iota
	CueLaser
	CueAlienHum

	// One-shot cues.
	CueZap
	CueExplosion
	CueCollect

	CueCount
)

var cueNames = [CueCount]string{
	CueThrust:    "thrust",
	CueLaser:     "laser",
	CueAlienHum:  "alien_hum",
	CueZap:       "zap",
	CueExplosion: "explosion",
	CueCollect:   "collect",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Looping reports whether the cue is a continuous loop rather than a one-shot.
func (c Cue) Looping() bool {
	return c <= CueAlienHum
}

// Sounds receives fire-and-forget audio requests from the simulation.
// StartLoop is called every frame a loop should be audible and must be
// idempotent; StopLoop likewise for every frame it should be silent.
type Sounds interface {
	StartLoop(c Cue)
	StopLoop(c Cue)
	Play(c Cue)
}

type nopSounds struct{}

func (nopSounds) StartLoop(Cue) {}
func (nopSounds) StopLoop(Cue)  {}
func (nopSounds) Play(Cue)      {}

// loop starts or stops c depending on on.
func loop(snd Sounds, c Cue, on bool) {
	if on {
		snd.StartLoop(c)
	} else {
		snd.StopLoop(c)
	}
}
