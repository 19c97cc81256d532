package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spacehole-rogue/deepminer/internal/game"
	"github.com/spacehole-rogue/deepminer/internal/station"
)

const title = "DEEP MINER"

// drawCard fills the screen and returns its center column.
func (r *Renderer) drawCard(dst *ebiten.Image) (cx, h float64) {
	r.frame++
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	dst.Fill(colorSpace)
	vector.StrokeRect(dst, 24, 24, float32(w-48), float32(h-48), 2, Palette[ColorDarkGray], false)
	return w / 2, h
}

// DrawStart draws the title screen.
func (r *Renderer) DrawStart(dst *ebiten.Image) {
	cx, h := r.drawCard(dst)
	y := h * 0.3
	drawTextCentered(dst, title, cx, y, Palette[ColorLightCyan])
	drawTextCentered(dst, "Mine the belt. Sell at the station. Mind the fuel.", cx, y+2*lineHeight, Palette[ColorLightGray])

	controls := []string{
		"W / UP      thrust",
		"A D / LEFT RIGHT  turn",
		"MOUSE       aim and hold to mine",
		"M           mute",
		"ESC         quit",
	}
	for i, line := range controls {
		drawTextCentered(dst, line, cx, y+float64(5+i)*lineHeight, Palette[ColorDarkGray])
	}
	if r.frame/30%2 == 0 {
		drawTextCentered(dst, "PRESS SPACE TO LAUNCH", cx, y+12*lineHeight, Palette[ColorYellow])
	}
}

// Dock is what the station screen shows.
type Dock struct {
	Ship     *game.Ship
	Shop     *station.Shop
	Greeting string
	Record   game.Record
	Notice   string // result of the last shop action
}

// DrawDocked draws the station shop.
func (r *Renderer) DrawDocked(dst *ebiten.Image, d Dock) {
	cx, h := r.drawCard(dst)
	ship := d.Ship
	y := h * 0.12

	drawTextCentered(dst, "STATION", cx, y, colorStation)
	drawTextCentered(dst, d.Greeting, cx, y+lineHeight, Palette[ColorDarkGray])

	last := d.Record.Last
	y += 3 * lineHeight
	drawTextCentered(dst, fmt.Sprintf("Mission %d: %d asteroids mined, %d aliens destroyed, %d units stolen",
		d.Record.Missions, last.AsteroidsMined, last.AliensDestroyed, last.Stolen), cx, y, Palette[ColorLightGray])

	y += 2 * lineHeight
	drawTextCentered(dst, fmt.Sprintf("CREDITS %d", ship.Credits), cx, y, Palette[ColorYellow])
	y += lineHeight
	drawTextCentered(dst, fmt.Sprintf("FUEL %.0f/%.0f   CARGO %d/%d",
		ship.Fuel, ship.Config.MaxFuel, ship.Cargo.Total(), ship.Config.MaxCargo), cx, y, Palette[ColorLightGray])

	y += 2 * lineHeight
	drawTextCentered(dst, fmt.Sprintf("[S] Sell cargo       +%d cr", d.Shop.CargoValue(ship.Cargo)), cx, y, Palette[ColorWhite])
	y += lineHeight
	drawTextCentered(dst, fmt.Sprintf("[F] Refuel           %d cr", d.Shop.RefuelCost(ship)), cx, y, Palette[ColorWhite])

	y += 2 * lineHeight
	for k := station.UpgradeKind(0); k < station.UpgradeKindCount; k++ {
		c := Palette[ColorWhite]
		if ship.Credits < d.Shop.UpgradeCost(ship, k) {
			c = Palette[ColorDarkGray]
		}
		drawTextCentered(dst, fmt.Sprintf("[%d] %s", k+1, d.Shop.Describe(ship, k)), cx, y, c)
		y += lineHeight
	}

	if d.Notice != "" {
		drawTextCentered(dst, d.Notice, cx, y+lineHeight, Palette[ColorLightGreen])
	}
	drawTextCentered(dst, "PRESS SPACE TO LAUNCH", cx, h-60, Palette[ColorYellow])
}

// DrawGameOver draws the end-of-run summary.
func (r *Renderer) DrawGameOver(dst *ebiten.Image, ship *game.Ship, rec game.Record) {
	cx, h := r.drawCard(dst)
	y := h * 0.3
	drawTextCentered(dst, "OUT OF FUEL", cx, y, Palette[ColorLightRed])
	drawTextCentered(dst, "The engines are cold. Your ship drifts on into the dark.", cx, y+2*lineHeight, Palette[ColorLightGray])

	lines := []string{
		fmt.Sprintf("Missions flown     %d", rec.Missions),
		fmt.Sprintf("Asteroids mined    %d", rec.AsteroidsMined),
		fmt.Sprintf("Aliens destroyed   %d", rec.AliensDestroyed),
		fmt.Sprintf("Cargo lost         %d", rec.Stolen),
		fmt.Sprintf("Credits banked     %d", ship.Credits),
	}
	for i, line := range lines {
		drawTextCentered(dst, line, cx, y+float64(5+i)*lineHeight, Palette[ColorWhite])
	}
	drawTextCentered(dst, "PRESS SPACE TO START OVER", cx, y+12*lineHeight, Palette[ColorYellow])
}
