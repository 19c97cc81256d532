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

const stationRadius = 60

func (r *Renderer) drawStation(dst *ebiten.Image, v view) {
	x, y := v.toScreen(0, 0)
	if !v.onScreen(x, y, stationRadius+20) {
		return
	}
	pulse := 0.6 + 0.4*math.Sin(float64(r.frame)*0.05)
	vector.StrokeCircle(dst, float32(x), float32(y), stationRadius, 3, colorStation, true)
	vector.StrokeCircle(dst, float32(x), float32(y), stationRadius*0.55, 2, Fade(colorStation, pulse), true)
	drawTextCentered(dst, "STATION", x, y-6, colorStation)
}

// drawAsteroids draws every asteroid; one hit this frame glows and jitters.
func (r *Renderer) drawAsteroids(dst *ebiten.Image, v view, s *game.Session) {
	var pts []world.Point
	for _, a := range s.Asteroids {
		x, y := v.toScreen(a.X, a.Y)
		if !v.onScreen(x, y, a.Radius+10) {
			continue
		}
		outline := a.Mineral.Color()
		if a.Heating {
			x += (r.rng.Float64()*2 - 1) * 2
			y += (r.rng.Float64()*2 - 1) * 2
			outline = colorHeat
		}

		pts = a.Outline(x, y, pts[:0])
		xs := make([]float32, len(pts))
		ys := make([]float32, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = float32(p.X), float32(p.Y)
		}
		fillPolygon(dst, xs, ys, Fade(outline, 0.18))
		strokePolygon(dst, xs, ys, 2, outline)
		if a.Heating {
			vector.StrokeCircle(dst, float32(x), float32(y), float32(a.Radius+4), 2, Fade(colorHeat, 0.4), true)
		}

		if a.Damaged() {
			w := float32(a.Radius * 1.6)
			bar(dst, float32(x)-w/2, float32(y-a.Radius-10), w, 3,
				a.Health/a.MaxHealth, colorHealth, colorHealthBack)
		}
	}
}

func (r *Renderer) drawAlien(dst *ebiten.Image, v view, s *game.Session) {
	a := s.Alien
	x, y := v.toScreen(a.X, a.Y)
	y += math.Sin(a.Wobble) * 4

	if a.State == game.AlienDraining {
		shipX, shipY := v.toScreen(s.Ship.X, s.Ship.Y)
		drawBolt(dst, x, y, shipX, shipY, r.rng)
	}
	if !v.onScreen(x, y, 50) {
		return
	}

	// Dome over saucer.
	vector.FillCircle(dst, float32(x), float32(y-8), 14, colorAlienDome, true)
	sx, sy := ellipse(x, y+2, 34, 10, 24)
	fillPolygon(dst, sx, sy, colorAlienHull)
	strokePolygon(dst, sx, sy, 1.5, Palette[ColorLightGreen])

	// Running lights chase around the rim.
	for i := range 5 {
		phase := a.Wobble*2 + float64(i)*2*math.Pi/5
		lx := x + math.Cos(phase)*26
		ly := y + 2 + math.Sin(phase)*5
		c := Palette[ColorYellow]
		if i%2 == 0 {
			c = Palette[ColorLightRed]
		}
		vector.FillCircle(dst, float32(lx), float32(ly), 2.5, c, true)
	}

	if a.Damaged() {
		bar(dst, float32(x-30), float32(y-32), 60, 4, a.HP/a.MaxHP, Palette[ColorLightGreen], colorHealthBack)
	}
}

// drawBolt draws a jagged arc from (x0, y0) to (x1, y1).
func drawBolt(dst *ebiten.Image, x0, y0, x1, y1 float64, rng game.Rand) {
	const segments = 8
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length, dx/length
	px, py := x0, y0
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		jitter := 0.0
		if i < segments {
			jitter = (rng.Float64()*2 - 1) * 12
		}
		qx := x0 + dx*t + nx*jitter
		qy := y0 + dy*t + ny*jitter
		vector.StrokeLine(dst, float32(px), float32(py), float32(qx), float32(qy), 2, colorBolt, true)
		px, py = qx, qy
	}
}

func (r *Renderer) drawLoot(dst *ebiten.Image, v view, s *game.Session) {
	for _, l := range s.Loot {
		x, y := v.toScreen(l.X, l.Y)
		if !v.onScreen(x, y, 30) {
			continue
		}
		c := l.Mineral.Color()
		spin := float64(r.frame) * 0.03
		var xs, ys []float32
		switch l.Mineral.Shape() {
		case world.ShapeSquare:
			xs, ys = regular(x, y, 8, spin+math.Pi/4, 4)
		case world.ShapeTriangle:
			xs, ys = regular(x, y, 9, spin-math.Pi/2, 3)
		case world.ShapeDiamond:
			xs, ys = ellipse(x, y, 8, 12, 4)
		default:
			xs, ys = regular(x, y, 8, spin, 6)
		}
		fillPolygon(dst, xs, ys, Fade(c, 0.5))
		strokePolygon(dst, xs, ys, 1.5, c)
		drawTextCentered(dst, fmt.Sprintf("%d %s", l.Amount, l.Mineral), x, y+12, c)
	}
}

func (r *Renderer) drawParticles(dst *ebiten.Image, v view, s *game.Session) {
	s.Particles.Each(func(pos game.Position, life game.Life, look game.Look) {
		x, y := v.toScreen(pos.X, pos.Y)
		if !v.onScreen(x, y, 40) {
			return
		}
		c := Fade(look.Color, life.Fraction())
		if look.Text != "" {
			drawTextCentered(dst, look.Text, x, y, c)
			return
		}
		half := look.Size / 2
		vector.FillRect(dst, float32(x-half), float32(y-half), float32(look.Size), float32(look.Size), c, false)
	})
}

func (r *Renderer) drawLaser(dst *ebiten.Image, v view, l game.Laser) {
	x0, y0 := v.toScreen(l.FromX, l.FromY)
	x1, y1 := v.toScreen(l.ToX, l.ToY)
	flicker := float32(0.7 + 0.3*r.rng.Float64())
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 4*flicker, Fade(colorLaser, 0.6), true)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, colorLaserCore, true)
	vector.FillCircle(dst, float32(x0), float32(y0), 5*flicker, colorLaserCore, true)
	vector.FillCircle(dst, float32(x1), float32(y1), 6*flicker, Fade(colorLaser, 0.7), true)
}

// hullPoint rotates a point from ship space (x forward, y right) to screen.
func hullPoint(cx, cy, rot, fx, fy float64) (float32, float32) {
	c, s := math.Cos(rot), math.Sin(rot)
	return float32(cx + fx*c - fy*s), float32(cy + fx*s + fy*c)
}

func (r *Renderer) drawShip(dst *ebiten.Image, v view, ship *game.Ship, thrusting bool) {
	x, y := v.toScreen(ship.X, ship.Y)
	rot := ship.Rotation
	line := func(ax, ay, bx, by float64, c color.RGBA) {
		x0, y0 := hullPoint(x, y, rot, ax, ay)
		x1, y1 := hullPoint(x, y, rot, bx, by)
		vector.StrokeLine(dst, x0, y0, x1, y1, 1.5, c, true)
	}

	if thrusting {
		flare := 14 + r.rng.Float64()*10
		line(-14, -4, -14-flare, 0, colorFlame)
		line(-14, 4, -14-flare, 0, colorFlame)
		line(-14, 0, -14-flare*0.6, 0, Palette[ColorYellow])
	}

	// Hull and nose.
	hull := [][2]float64{{22, 0}, {8, -7}, {-10, -7}, {-14, -4}, {-14, 4}, {-10, 7}, {8, 7}}
	xs := make([]float32, len(hull))
	ys := make([]float32, len(hull))
	for i, p := range hull {
		xs[i], ys[i] = hullPoint(x, y, rot, p[0], p[1])
	}
	fillPolygon(dst, xs, ys, Fade(colorShip, 0.15))
	strokePolygon(dst, xs, ys, 1.5, colorShip)

	// Fins.
	line(-6, -7, -16, -14, colorShip)
	line(-16, -14, -12, -7, colorShip)
	line(-6, 7, -16, 14, colorShip)
	line(-16, 14, -12, 7, colorShip)

	// Engine bell.
	line(-14, -4, -18, -6, colorShip)
	line(-14, 4, -18, 6, colorShip)

	// Portholes.
	for _, px := range []float64{8, 0, -7} {
		cx, cy := hullPoint(x, y, rot, px, 0)
		vector.StrokeCircle(dst, cx, cy, 2, 1, Palette[ColorLightCyan], true)
	}
}
