package render

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell size of basicfont.Face7x13.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11

	firstGlyph = ' '
	lastGlyph  = '~'

	lineHeight = 15
)

// glyphAtlas holds the printable ASCII range rendered once from basicfont,
// white on transparent so draws can tint it.
type glyphAtlas struct {
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

var atlas *glyphAtlas

// glyphs builds the atlas on first use.
func glyphs() *glyphAtlas {
	if atlas != nil {
		return atlas
	}
	n := int(lastGlyph - firstGlyph + 1)
	img := image.NewNRGBA(image.Rect(0, 0, n*glyphWidth, glyphHeight))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for i := range n {
		d.Dot = fixed.P(i*glyphWidth, glyphAscent)
		d.DrawString(string(rune(firstGlyph + i)))
	}

	eimg := ebiten.NewImageFromImage(img)
	atlas = &glyphAtlas{}
	for i := range n {
		rect := image.Rect(i*glyphWidth, 0, (i+1)*glyphWidth, glyphHeight)
		atlas.glyphs[i] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return atlas
}

// glyph returns the sub-image for r, or '?' outside printable ASCII.
func (a *glyphAtlas) glyph(r rune) *ebiten.Image {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	return a.glyphs[r-firstGlyph]
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	a := glyphs()
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	gx := x
	for _, r := range s {
		if r != ' ' {
			op.GeoM.Reset()
			op.GeoM.Translate(gx, y)
			dst.DrawImage(a.glyph(r), op)
		}
		gx += glyphWidth
	}
}

// drawTextCentered draws s horizontally centered on cx.
func drawTextCentered(dst *ebiten.Image, s string, cx, y float64, c color.Color) {
	drawText(dst, s, cx-textWidth(s)/2, y, c)
}

// textWidth returns the drawn width of s. The face is monospaced.
func textWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * glyphWidth)
}
