package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/spacehole-rogue/deepminer/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// wave computes one mono sample at time t (seconds since the voice started).
type wave func(t float64) float64

// tone streams a wave, forever when length is zero.
type tone struct {
	fn     wave
	pos    int
	length int
}

func (s *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.length > 0 && s.pos >= s.length {
			return i, i > 0
		}
		v := s.fn(float64(s.pos) / float64(sampleRate))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *tone) Err() error { return nil }

// fader scales a stream by a gain that ramps linearly toward a target.
type fader struct {
	s      beep.Streamer
	gain   float64
	target float64
	step   float64 // per sample
}

func newFader(s beep.Streamer, from float64) *fader {
	return &fader{s: s, gain: from, target: 1}
}

// rampTo moves the gain to target over d. Callers hold the speaker lock.
func (f *fader) rampTo(target float64, d time.Duration) {
	f.target = target
	n := sampleRate.N(d)
	if n <= 0 {
		f.gain = target
		f.step = 0
		return
	}
	f.step = math.Abs(target-f.gain) / float64(n)
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range samples[:n] {
		switch {
		case f.gain < f.target:
			f.gain = math.Min(f.target, f.gain+f.step)
		case f.gain > f.target:
			f.gain = math.Max(f.target, f.gain-f.step)
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error { return f.s.Err() }

// volume wraps s at a linear gain, silent at zero.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func noise() float64 {
	return rand.Float64()*2 - 1
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float64 {
	return 2 * (math.Mod(phase, 1) - 0.5)
}

// decay is an exponential envelope with time constant tau.
func decay(t, tau float64) float64 {
	return math.Exp(-t / tau)
}

// loopWave returns the endless wave for a looping cue.
func loopWave(c game.Cue) wave {
	switch c {
	case game.CueThrust:
		// Low rumble: smoothed noise over a 55 Hz drone.
		var last float64
		return func(t float64) float64 {
			last += (noise() - last) * 0.08
			return 0.5*last + 0.15*math.Sin(2*math.Pi*55*t)
		}
	case game.CueLaser:
		return func(t float64) float64 {
			freq := 440 + 30*math.Sin(2*math.Pi*9*t)
			return 0.18 * saw(freq*t)
		}
	default: // alien hum
		return func(t float64) float64 {
			wobble := 1 + 0.1*math.Sin(2*math.Pi*3*t)
			return 0.2*math.Sin(2*math.Pi*70*wobble*t) + 0.08*math.Sin(2*math.Pi*140*t)
		}
	}
}

// shot returns a finite streamer for a one-shot cue.
func shot(c game.Cue) beep.Streamer {
	var fn wave
	var d time.Duration
	switch c {
	case game.CueZap:
		d = 180 * time.Millisecond
		fn = func(t float64) float64 {
			freq := 1200 - 5000*t
			return 0.25 * square(freq*t) * decay(t, 0.06)
		}
	case game.CueExplosion:
		d = 700 * time.Millisecond
		var last float64
		fn = func(t float64) float64 {
			last += (noise() - last) * 0.2
			return 0.9 * last * decay(t, 0.18)
		}
	default: // collect
		d = 160 * time.Millisecond
		fn = func(t float64) float64 {
			freq := 880.0
			if t > 0.07 {
				freq = 1320
			}
			return 0.2 * math.Sin(2*math.Pi*freq*t) * decay(t, 0.1)
		}
	}
	return &tone{fn: fn, length: sampleRate.N(d)}
}
