package render

import "math"

// view maps world coordinates to the screen for one frame.
type view struct {
	camX, camY float64 // world point at the top-left, shake included
	w, h       float64
}

func (v view) toScreen(x, y float64) (sx, sy float64) {
	return x - v.camX, y - v.camY
}

// onScreen reports whether a circle of radius r at screen (sx, sy) is visible.
func (v view) onScreen(sx, sy, r float64) bool {
	return sx+r >= 0 && sy+r >= 0 && sx-r <= v.w && sy-r <= v.h
}

// parallax places a background element that moves depth times as fast as
// the camera, wrapping it across a span a margin wider than the screen on
// each side so the layer never runs out.
func (v view) parallax(x, y, depth, margin float64) (sx, sy float64) {
	sx = wrap(x-v.camX*depth, v.w+2*margin) - margin
	sy = wrap(y-v.camY*depth, v.h+2*margin) - margin
	return sx, sy
}

// wrap returns x modulo span in [0, span).
func wrap(x, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return x - span*math.Floor(x/span)
}

// radarBlip scales a world offset from the ship onto a radar of the given
// pixel radius. Offsets beyond worldRange are not shown.
func radarBlip(dx, dy, worldRange, radius float64) (bx, by float64, ok bool) {
	if math.Hypot(dx, dy) > worldRange {
		return 0, 0, false
	}
	scale := radius / worldRange
	return dx * scale, dy * scale, true
}
