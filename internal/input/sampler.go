// Package input samples ebiten's keyboard and mouse state once per frame.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/deepminer/internal/game"
)

// Bindings maps each control to the keys that trigger it.
type Bindings struct {
	Thrust []ebiten.Key
	Left   []ebiten.Key
	Right  []ebiten.Key
	Mine   ebiten.MouseButton
}

// DefaultBindings are WASD plus arrows, left mouse to mine.
var DefaultBindings = Bindings{
	Thrust: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
	Left:   []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
	Right:  []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	Mine:   ebiten.MouseButtonLeft,
}

// Sampler reads the held state of the controls. It keeps no history.
type Sampler struct {
	Bindings Bindings
}

// NewSampler returns a sampler with the default bindings.
func NewSampler() *Sampler {
	return &Sampler{Bindings: DefaultBindings}
}

// Sample returns this frame's controls for a surface of the given size.
func (s *Sampler) Sample(viewW, viewH int) game.Input {
	mx, my := ebiten.CursorPosition()
	return game.Input{
		Thrust: anyPressed(s.Bindings.Thrust),
		Left:   anyPressed(s.Bindings.Left),
		Right:  anyPressed(s.Bindings.Right),
		Mining: ebiten.IsMouseButtonPressed(s.Bindings.Mine),
		MouseX: float64(mx),
		MouseY: float64(my),
		ViewW:  float64(viewW),
		ViewH:  float64(viewH),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Pressed reports whether k went down this frame. Menu keys use this so a
// held key fires once.
func Pressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}
