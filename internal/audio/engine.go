// Package audio synthesizes the game's sound cues with beep. Loops fade out
// when stopped; a loop restarted during its fade keeps playing.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/spacehole-rogue/deepminer/internal/game"
	"github.com/spacehole-rogue/deepminer/internal/logging"
)

const (
	fadeIn  = 30 * time.Millisecond
	fadeOut = 150 * time.Millisecond
	buffer  = 100 * time.Millisecond
)

// voice is one looping cue in the mixer.
type voice struct {
	ctrl     *beep.Ctrl
	fader    *fader
	gen      uint64 // bumped on every stop and restart
	stopping bool
}

// Engine plays cues for the simulation. Its methods are safe to call from the
// game loop every frame. An engine that could not open the audio device keeps
// all its bookkeeping but makes no sound.
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	master *beep.Ctrl
	loops  [game.CueCount]*voice
	muted  bool
	live   bool
	log    *slog.Logger

	// schedule runs f after d. Tests replace it to fire releases by hand.
	schedule func(d time.Duration, f func())
}

// New opens the speaker. If that fails the error is logged and the returned
// engine is silent.
func New(log *slog.Logger, muted bool) *Engine {
	e := newEngine(log, muted)
	if err := speaker.Init(sampleRate, sampleRate.N(buffer)); err != nil {
		e.log.Warn("audio unavailable, running silent", "error", err)
		return e
	}
	speaker.Play(e.master)
	e.live = true
	return e
}

// NewSilent returns an engine that never touches the audio device.
func NewSilent(log *slog.Logger) *Engine {
	return newEngine(log, false)
}

func newEngine(log *slog.Logger, muted bool) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	mixer := &beep.Mixer{}
	e := &Engine{
		mixer: mixer,
		muted: muted,
		log:   log,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	e.master = &beep.Ctrl{Streamer: volume(mixer, 1), Paused: muted}
	return e
}

// lock guards mutation of streamers the speaker goroutine is reading.
func (e *Engine) lock() {
	if e.live {
		speaker.Lock()
	}
}

func (e *Engine) unlock() {
	if e.live {
		speaker.Unlock()
	}
}

// StartLoop makes c audible. Calling it on a playing loop does nothing; on a
// fading loop it cancels the pending release and fades back in.
func (e *Engine) StartLoop(c game.Cue) {
	if !c.Looping() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.loops[c]
	if v != nil && !v.stopping {
		return
	}

	e.lock()
	defer e.unlock()
	if v != nil {
		v.gen++
		v.stopping = false
		v.fader.rampTo(1, fadeIn)
		return
	}

	f := newFader(&tone{fn: loopWave(c)}, 0)
	f.rampTo(1, fadeIn)
	v = &voice{ctrl: &beep.Ctrl{Streamer: f}, fader: f}
	e.loops[c] = v
	e.mixer.Add(v.ctrl)
}

// StopLoop fades c out and releases it once the fade is over, unless it is
// restarted first.
func (e *Engine) StopLoop(c game.Cue) {
	if !c.Looping() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.loops[c]
	if v == nil || v.stopping {
		return
	}

	e.lock()
	v.stopping = true
	v.gen++
	v.fader.rampTo(0, fadeOut)
	e.unlock()

	gen := v.gen
	e.schedule(fadeOut, func() { e.release(c, gen) })
}

// release drops a faded loop from the mixer if nothing restarted it since the
// stop that scheduled this call.
func (e *Engine) release(c game.Cue, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.loops[c]
	if v == nil || v.gen != gen || !v.stopping {
		return
	}

	e.lock()
	// A Ctrl with no streamer reports drained, so the mixer drops it.
	v.ctrl.Streamer = nil
	e.unlock()
	e.loops[c] = nil
}

// Play fires a one-shot cue.
func (e *Engine) Play(c game.Cue) {
	if c.Looping() || c >= game.CueCount {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.live {
		return
	}

	e.lock()
	e.mixer.Add(shot(c))
	e.unlock()
}

// Playing reports whether loop c is audible or fading.
func (e *Engine) Playing(c game.Cue) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return c < game.CueCount && e.loops[c] != nil
}

// SetMuted silences or restores everything.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lock()
	e.muted = muted
	e.master.Paused = muted
	e.unlock()
}

// ToggleMute flips the mute state and returns the new one.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	muted := !e.muted
	e.mu.Unlock()
	e.SetMuted(muted)
	return muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close releases every loop immediately.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lock()
	for c, v := range e.loops {
		if v != nil {
			v.ctrl.Streamer = nil
			e.loops[c] = nil
		}
	}
	e.mixer.Clear()
	e.unlock()
}
