// Package render draws the game with ebiten's vector API. It only reads the
// simulation, so a frame can be drawn any number of times per tick.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/deepminer/internal/game"
)

// Renderer draws sessions and screens.
type Renderer struct {
	rng   game.Rand // shake and heat jitter
	frame uint64
}

// New creates a renderer. rng only drives cosmetic jitter.
func New(rng game.Rand) *Renderer {
	return &Renderer{rng: rng}
}

// DrawMission draws one frame of a live mission, back to front.
func (r *Renderer) DrawMission(dst *ebiten.Image, s *game.Session) {
	r.frame++
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	camX, camY := s.CameraOrigin(w, h)
	dx, dy := s.Camera.Offset(r.rng)
	v := view{camX: camX + dx, camY: camY + dy, w: w, h: h}

	dst.Fill(colorSpace)
	r.drawBackground(dst, v, s)
	r.drawStation(dst, v)
	r.drawAsteroids(dst, v, s)
	if s.Alien != nil {
		r.drawAlien(dst, v, s)
	}
	r.drawLoot(dst, v, s)
	r.drawParticles(dst, v, s)
	if s.Laser.Active {
		r.drawLaser(dst, v, s.Laser)
	}
	r.drawShip(dst, v, &s.Ship, s.Thrusting)
	r.drawHUD(dst, s)
}
