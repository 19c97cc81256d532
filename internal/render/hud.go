package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spacehole-rogue/deepminer/internal/game"
	"github.com/spacehole-rogue/deepminer/internal/world"
)

const (
	radarRadius = 70
	radarMargin = 16
	commsLines  = 5
)

func (r *Renderer) drawHUD(dst *ebiten.Image, s *game.Session) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	r.drawRadar(dst, s, w-radarRadius-radarMargin, radarRadius+radarMargin)
	drawGauges(dst, &s.Ship)
	drawDockStatus(dst, s, w, h)
	drawComms(dst, s.Comms, h)
}

func (r *Renderer) drawRadar(dst *ebiten.Image, s *game.Session, cx, cy float64) {
	rangeW := s.Tuning().Camera.RadarWorldRange
	ship := &s.Ship

	vector.FillCircle(dst, float32(cx), float32(cy), radarRadius, colorPanel, true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), radarRadius, 1.5, Palette[ColorCyan], true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), radarRadius/2, 1, Fade(Palette[ColorCyan], 0.4), true)

	// Sweep line.
	sweep := float64(r.frame) * 0.05
	vector.StrokeLine(dst, float32(cx), float32(cy),
		float32(cx+math.Cos(sweep)*radarRadius), float32(cy+math.Sin(sweep)*radarRadius),
		1, Fade(Palette[ColorCyan], 0.5), true)

	blip := func(wx, wy float64, size float32, c color.RGBA) {
		bx, by, ok := radarBlip(wx-ship.X, wy-ship.Y, rangeW, radarRadius)
		if ok {
			vector.FillCircle(dst, float32(cx+bx), float32(cy+by), size, c, false)
		}
	}
	for _, a := range s.Asteroids {
		blip(a.X, a.Y, 1.5, a.Mineral.Color())
	}
	blip(0, 0, 4, colorStation)
	if s.Alien != nil {
		blip(s.Alien.X, s.Alien.Y, 3.5, Palette[ColorLightRed])
	}
	vector.FillCircle(dst, float32(cx), float32(cy), 2.5, Palette[ColorWhite], false)
}

func drawGauges(dst *ebiten.Image, ship *game.Ship) {
	const x, y, w = 16, 16, 200

	frac := ship.FuelFraction()
	drawText(dst, fmt.Sprintf("FUEL %4.0f/%.0f", ship.Fuel, ship.Config.MaxFuel), x, y, Palette[ColorLightGray])
	bar(dst, x, y+16, w, 10, frac, FuelColor(frac), Palette[ColorDarkGray])
	vector.StrokeRect(dst, x, y+16, w, 10, 1, Palette[ColorLightGray], false)

	cargoY := float64(y + 36)
	drawText(dst, fmt.Sprintf("CARGO %d/%d", ship.Cargo.Total(), ship.Config.MaxCargo), x, cargoY, Palette[ColorLightGray])
	for i, m := range ship.Cargo.Present() {
		line := fmt.Sprintf("  %-8s %d", m, ship.Cargo[m])
		drawText(dst, line, x, cargoY+float64(i+1)*lineHeight, m.Color())
	}

	credY := cargoY + float64(int(world.MineralCount)+1)*lineHeight
	drawText(dst, fmt.Sprintf("CREDITS %d", ship.Credits), x, credY, Palette[ColorYellow])
	drawText(dst, fmt.Sprintf("SPEED %.1f", ship.Speed()), x, credY+lineHeight, Palette[ColorDarkGray])
}

func drawDockStatus(dst *ebiten.Image, s *game.Session, w, h float64) {
	var msg string
	var c color.RGBA
	switch s.DockStatus() {
	case game.DockTooFast:
		msg, c = "DOCKING RANGE - REDUCE SPEED", Palette[ColorYellow]
	case game.DockHolding:
		msg, c = "HOLD STEADY - DOCKING", Palette[ColorLightGreen]
	default:
		if s.Ship.Fuel <= 0 {
			msg, c = "OUT OF FUEL - DRIFTING", Palette[ColorLightRed]
		}
	}
	if msg != "" {
		drawTextCentered(dst, msg, w/2, h*0.25, c)
	}
}

func drawComms(dst *ebiten.Image, log *game.CommsLog, h float64) {
	msgs := log.Recent(commsLines)
	y := h - 16 - float64(len(msgs))*lineHeight
	for _, m := range msgs {
		drawText(dst, m.Text, 16, y, MsgColor(m.Priority))
		y += lineHeight
	}
}
