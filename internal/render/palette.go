package render

import (
	"image/color"

	"github.com/spacehole-rogue/deepminer/internal/game"
)

// CGA 16-color palette indices, used for HUD chrome and nebula tints.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette is the classic CGA palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 170, 255},
	{0, 170, 0, 255},
	{0, 170, 170, 255},
	{170, 0, 0, 255},
	{170, 0, 170, 255},
	{170, 85, 0, 255},
	{170, 170, 170, 255},
	{85, 85, 85, 255},
	{85, 85, 255, 255},
	{85, 255, 85, 255},
	{85, 255, 255, 255},
	{255, 85, 85, 255},
	{255, 85, 255, 255},
	{255, 255, 85, 255},
	{255, 255, 255, 255},
}

// Scene colors outside the CGA set.
var (
	colorSpace      = color.RGBA{4, 4, 12, 255}
	colorStation    = color.RGBA{120, 200, 255, 255}
	colorHeat       = color.RGBA{255, 120, 40, 255}
	colorLaser      = color.RGBA{255, 60, 60, 255}
	colorLaserCore  = color.RGBA{255, 220, 220, 255}
	colorAlienHull  = color.RGBA{90, 200, 110, 255}
	colorAlienDome  = color.RGBA{133, 200, 157, 200} // premultiplied
	colorBolt       = color.RGBA{160, 240, 255, 255}
	colorShip       = color.RGBA{230, 235, 245, 255}
	colorFlame      = color.RGBA{255, 170, 50, 255}
	colorPanel      = color.RGBA{10, 14, 30, 200}
	colorHealthBack = color.RGBA{60, 20, 20, 255}
	colorHealth     = color.RGBA{80, 220, 90, 255}
)

// Fade scales c's alpha by f in [0,1].
func Fade(c color.RGBA, f float64) color.RGBA {
	f = min(max(f, 0), 1)
	// Premultiplied: every channel scales with alpha.
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// FuelColor is the gauge color for a tank fraction; red under 20%.
func FuelColor(frac float64) color.RGBA {
	switch {
	case frac < 0.2:
		return Palette[ColorLightRed]
	case frac < 0.5:
		return Palette[ColorYellow]
	default:
		return Palette[ColorLightGreen]
	}
}

// MsgColor returns the comms color for a priority.
func MsgColor(p game.MsgPriority) color.RGBA {
	switch p {
	case game.MsgWarning:
		return Palette[ColorYellow]
	case game.MsgCritical:
		return Palette[ColorLightRed]
	case game.MsgReward:
		return Palette[ColorLightGreen]
	default:
		return Palette[ColorLightCyan]
	}
}
