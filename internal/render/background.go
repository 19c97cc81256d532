package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spacehole-rogue/deepminer/internal/game"
)

// nebulaTints are the palette entries a nebula can take.
var nebulaTints = [4]uint8{ColorMagenta, ColorBlue, ColorCyan, ColorRed}

func (r *Renderer) drawBackground(dst *ebiten.Image, v view, s *game.Session) {
	f := s.Field

	for _, n := range f.Nebulae {
		x, y := v.parallax(n.X, n.Y, n.Depth, n.Radius)
		base := Palette[nebulaTints[n.Tint%uint8(len(nebulaTints))]]
		// Stacked translucent discs fake a soft falloff.
		for i := 4; i >= 1; i-- {
			rad := n.Radius * float64(i) / 4
			vector.FillCircle(dst, float32(x), float32(y), float32(rad), Fade(base, 0.05), true)
		}
	}

	for _, g := range f.Galaxies {
		x, y := v.parallax(g.X, g.Y, g.Depth, g.Radius)
		drawGalaxy(dst, x, y, g.Radius, g.Angle+float64(r.frame)*0.0005, g.Arms)
	}

	for _, st := range f.Stars {
		x, y := v.parallax(st.X, st.Y, st.Depth, 0)
		bright := 0.55 + 0.45*math.Sin(float64(r.frame)*0.04+st.Twinkle)
		c := Fade(Palette[ColorWhite], bright*(0.3+0.7*st.Depth))
		size := float32(st.Size * (0.5 + st.Depth/2))
		vector.FillRect(dst, float32(x), float32(y), size, size, c, false)
	}
}

// drawGalaxy draws a vector spiral of dotted arms around a bright core.
func drawGalaxy(dst *ebiten.Image, cx, cy, radius, angle float64, arms int) {
	core := color.RGBA{255, 240, 220, 255}
	vector.FillCircle(dst, float32(cx), float32(cy), float32(radius*0.08), Fade(core, 0.5), true)

	const steps = 40
	for a := range arms {
		offset := angle + 2*math.Pi*float64(a)/float64(arms)
		for i := 1; i <= steps; i++ {
			t := float64(i) / steps
			theta := offset + t*3*math.Pi
			x := cx + math.Cos(theta)*radius*t
			y := cy + math.Sin(theta)*radius*t*0.6
			vector.FillRect(dst, float32(x), float32(y), 1.5, 1.5, Fade(core, 0.35*(1-t)), false)
		}
	}
}
