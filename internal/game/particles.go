package game

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
)

// ECS components for particles.

// Position is a world-space location.
type Position struct {
	X, Y float64
}

// Velocity is world pixels per frame.
type Velocity struct {
	X, Y float64
}

// Life counts frames down to zero.
type Life struct {
	Left, Max int
}

// Fraction returns the remaining share of life, used for fade-out.
func (l Life) Fraction() float64 {
	if l.Max <= 0 {
		return 0
	}
	return float64(l.Left) / float64(l.Max)
}

// Look is how a particle draws: a filled square of Size, or Text when set.
type Look struct {
	Color color.RGBA
	Size  float64
	Text  string
}

// Particles is the transient effects pool. Each mission gets its own.
type Particles struct {
	world  *ecs.World
	mapper *ecs.Map4[Position, Velocity, Life, Look]
	filter *ecs.Filter4[Position, Velocity, Life, Look]
	dead   []ecs.Entity
}

// NewParticles creates an empty pool.
func NewParticles() *Particles {
	w := ecs.NewWorld(512)
	return &Particles{
		world:  w,
		mapper: ecs.NewMap4[Position, Velocity, Life, Look](w),
		filter: ecs.NewFilter4[Position, Velocity, Life, Look](w),
	}
}

// Spawn adds one particle that lives for life frames.
func (p *Particles) Spawn(pos Position, vel Velocity, life int, look Look) {
	if life <= 0 {
		return
	}
	p.mapper.NewEntity(&pos, &vel, &Life{Left: life, Max: life}, &look)
}

// Update moves every particle, ages it, and removes the expired ones.
func (p *Particles) Update() {
	query := p.filter.Query()
	for query.Next() {
		pos, vel, life, _ := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
		life.Left--
		if life.Left <= 0 {
			p.dead = append(p.dead, query.Entity())
		}
	}

	// Entities can't be removed while the query is open.
	for _, e := range p.dead {
		p.world.RemoveEntity(e)
	}
	p.dead = p.dead[:0]
}

// Each calls fn for every live particle.
func (p *Particles) Each(fn func(pos Position, life Life, look Look)) {
	query := p.filter.Query()
	for query.Next() {
		pos, _, life, look := query.Get()
		fn(*pos, *life, *look)
	}
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Texts returns the text payloads of live particles.
func (p *Particles) Texts() []string {
	var out []string
	p.Each(func(_ Position, _ Life, look Look) {
		if look.Text != "" {
			out = append(out, look.Text)
		}
	})
	return out
}
