package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// polygonOptions returns the options for filling a polygon in c. The nonzero
// rule keeps concave outlines, such as jagged asteroids, from spilling.
func polygonOptions(c color.RGBA) (*vector.FillOptions, *vector.DrawPathOptions) {
	draw := &vector.DrawPathOptions{AntiAlias: true}
	draw.ColorScale.ScaleWithColor(c)
	return &vector.FillOptions{FillRule: vector.FillRuleNonZero}, draw
}

// fillPolygon fills the closed polygon through xs/ys.
func fillPolygon(dst *ebiten.Image, xs, ys []float32, c color.RGBA) {
	if len(xs) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	fill, draw := polygonOptions(c)
	vector.FillPath(dst, &path, fill, draw)
}

// strokePolygon outlines the closed polygon through xs/ys.
func strokePolygon(dst *ebiten.Image, xs, ys []float32, width float32, c color.RGBA) {
	n := len(xs)
	for i := range n {
		j := (i + 1) % n
		vector.StrokeLine(dst, xs[i], ys[i], xs[j], ys[j], width, c, true)
	}
}

// regular returns the vertices of a regular n-gon around (cx, cy).
func regular(cx, cy, radius, rotation float64, n int) (xs, ys []float32) {
	xs = make([]float32, n)
	ys = make([]float32, n)
	for i := range n {
		a := rotation + 2*math.Pi*float64(i)/float64(n)
		xs[i] = float32(cx + math.Cos(a)*radius)
		ys[i] = float32(cy + math.Sin(a)*radius)
	}
	return xs, ys
}

// ellipse returns n points on an axis-aligned ellipse.
func ellipse(cx, cy, rx, ry float64, n int) (xs, ys []float32) {
	xs = make([]float32, n)
	ys = make([]float32, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = float32(cx + math.Cos(a)*rx)
		ys[i] = float32(cy + math.Sin(a)*ry)
	}
	return xs, ys
}

// bar draws a horizontal gauge filled to frac.
func bar(dst *ebiten.Image, x, y, w, h float32, frac float64, fill, back color.RGBA) {
	frac = min(max(frac, 0), 1)
	vector.FillRect(dst, x, y, w, h, back, false)
	vector.FillRect(dst, x, y, w*float32(frac), h, fill, false)
}
