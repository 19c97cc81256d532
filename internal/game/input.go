package game

// Input is one frame's sampled controls. Mouse coordinates are in screen
// pixels; ViewW and ViewH are the drawing surface size for the same frame.
type Input struct {
	Thrust bool
	Left   bool
	Right  bool
	Mining bool

	MouseX, MouseY float64
	ViewW, ViewH   float64
}

// ready reports whether the drawing surface has a usable size yet.
func (in Input) ready() bool {
	return in.ViewW > 0 && in.ViewH > 0
}
