package world

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/spacehole-rogue/deepminer/internal/config"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>16|1))
}

func TestGenerateCounts(t *testing.T) {
	cfg := config.Default().World
	f := Generate(testRNG(1), cfg)

	if len(f.Stars) != cfg.Stars {
		t.Errorf("Expected %d stars, got %d", cfg.Stars, len(f.Stars))
	}
	if len(f.Nebulae) != cfg.Nebulae {
		t.Errorf("Expected %d nebulae, got %d", cfg.Nebulae, len(f.Nebulae))
	}
	if len(f.Galaxies) != cfg.Galaxies {
		t.Errorf("Expected %d galaxies, got %d", cfg.Galaxies, len(f.Galaxies))
	}
	if len(f.Asteroids) != cfg.Asteroids {
		t.Errorf("Expected %d asteroids, got %d", cfg.Asteroids, len(f.Asteroids))
	}
}

func TestGenerateBackgroundDepths(t *testing.T) {
	cfg := config.Default().World
	f := Generate(testRNG(2), cfg)
	extent := cfg.Bound + cfg.StarMargin

	for i, s := range f.Stars {
		if s.Depth < 0.1 || s.Depth > 1.0 {
			t.Fatalf("Star %d depth %v outside [0.1, 1.0]", i, s.Depth)
		}
		if math.Abs(s.X) > extent || math.Abs(s.Y) > extent {
			t.Fatalf("Star %d at (%v, %v) outside extended world", i, s.X, s.Y)
		}
	}
	for i, n := range f.Nebulae {
		if n.Depth > maxBackgroundDepth {
			t.Errorf("Nebula %d depth %v above %v", i, n.Depth, maxBackgroundDepth)
		}
	}
	for i, g := range f.Galaxies {
		if g.Depth > maxBackgroundDepth {
			t.Errorf("Galaxy %d depth %v above %v", i, g.Depth, maxBackgroundDepth)
		}
		if g.Arms < 2 || g.Arms > 4 {
			t.Errorf("Galaxy %d has %d arms", i, g.Arms)
		}
	}
}

func TestGenerateAsteroidAnnulus(t *testing.T) {
	cfg := config.Default().World
	f := Generate(testRNG(3), cfg)

	seen := make(map[int]bool)
	for _, a := range f.Asteroids {
		d := math.Hypot(a.X, a.Y)
		if d < cfg.MinSpawnRadius-1e-9 || d > cfg.Bound+1e-9 {
			t.Errorf("Asteroid %d at distance %v outside [%v, %v]", a.ID, d, cfg.MinSpawnRadius, cfg.Bound)
		}
		if a.Health != a.MaxHealth || a.Health <= 0 {
			t.Errorf("Asteroid %d should start at full positive health, got %v/%v", a.ID, a.Health, a.MaxHealth)
		}
		if seen[a.ID] {
			t.Errorf("Duplicate asteroid id %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestJaggedShape(t *testing.T) {
	rng := testRNG(4)
	const radius = 30.0

	for i := 0; i < 200; i++ {
		pts := JaggedShape(rng, radius)
		if len(pts) < 6 || len(pts) > 11 {
			t.Fatalf("Expected 6-11 vertices, got %d", len(pts))
		}
		for j, p := range pts {
			r := math.Hypot(p.X, p.Y)
			if r < radius*0.8-1e-9 || r > radius*1.2+1e-9 {
				t.Fatalf("Vertex %d radius %v outside ±20%% of %v", j, r, radius)
			}
			want := float64(j) * 2 * math.Pi / float64(len(pts))
			got := math.Atan2(p.Y, p.X)
			if got < 0 {
				got += 2 * math.Pi
			}
			if math.Abs(got-want) > 1e-6 && math.Abs(got-want-2*math.Pi) > 1e-6 {
				t.Fatalf("Vertex %d angle %v, want %v", j, got, want)
			}
		}
	}
}

func TestMineralAt(t *testing.T) {
	cfg := config.Default().World

	tests := []struct {
		name string
		dist float64
		roll float64
		want Mineral
	}{
		{"near station always iron", 500, 0.99, Iron},
		{"copper band high roll", 1500, 0.9, Copper},
		{"copper band low roll", 1500, 0.2, Iron},
		{"gold band high roll", 2500, 0.9, Gold},
		{"gold band mid roll falls to copper", 2500, 0.5, Copper},
		{"crystal band top roll", 3500, 0.9, Crystal},
		{"crystal band low roll", 3500, 0.1, Iron},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MineralAt(tt.dist, tt.roll, cfg); got != tt.want {
				t.Errorf("MineralAt(%v, %v) = %v, want %v", tt.dist, tt.roll, got, tt.want)
			}
		})
	}
}

func TestCargo(t *testing.T) {
	var c Cargo
	if !c.Empty() {
		t.Error("Zero cargo should be empty")
	}
	c[Iron] = 3
	c[Gold] = 2
	if c.Total() != 5 {
		t.Errorf("Expected total 5, got %d", c.Total())
	}
	present := c.Present()
	if len(present) != 2 || present[0] != Iron || present[1] != Gold {
		t.Errorf("Unexpected present list %v", present)
	}
}

func TestOutlineRotation(t *testing.T) {
	a := &Asteroid{Shape: []Point{{X: 10, Y: 0}}, Rotation: math.Pi / 2}
	pts := a.Outline(100, 100, nil)
	if math.Abs(pts[0].X-100) > 1e-9 || math.Abs(pts[0].Y-110) > 1e-9 {
		t.Errorf("Expected rotated vertex at (100, 110), got %+v", pts[0])
	}
}
