package render

import (
	"fmt"
	"math/rand"
)

// Particle is one short-lived effect element, owned exclusively by its
// ParticleSystem. Life counts down in milliseconds.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining life in ms
	MaxLife float64
	Size    float64
	Color   string
}

// EmitOptions bound the random parameters of emitted particles.
// Zero values fall back to the defaults noted per field.
type EmitOptions struct {
	VelocitySpread float64 // Max |velocity| per axis; default 100
	MinLife        float64 // ms; default 500
	MaxLife        float64 // ms; default 1500
	MinSize        float64 // default 2
	MaxSize        float64 // default 6
	Color          string  // default white
}

func (o EmitOptions) withDefaults() EmitOptions {
	if o.VelocitySpread == 0 {
		o.VelocitySpread = 100
	}
	if o.MinLife == 0 {
		o.MinLife = 500
	}
	if o.MaxLife == 0 {
		o.MaxLife = 1500
	}
	if o.MinSize == 0 {
		o.MinSize = 2
	}
	if o.MaxSize == 0 {
		o.MaxSize = 6
	}
	if o.Color == "" {
		o.Color = "#ffffff"
	}
	return o
}

// ParticleSystem owns a bounded pool of particles.
type ParticleSystem struct {
	particles []Particle
	max       int
	rng       *rand.Rand
}

// NewParticleSystem creates a system capped at maxParticles, seeded for
// deterministic replay.
func NewParticleSystem(maxParticles int, seed int64) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, maxParticles),
		max:       maxParticles,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Emit spawns up to count particles at (x, y). Requests beyond the
// remaining capacity are silently truncated, never an error.
func (s *ParticleSystem) Emit(x, y float64, count int, opts EmitOptions) {
	opts = opts.withDefaults()

	room := s.max - len(s.particles)
	if count > room {
		count = room
	}

	for i := 0; i < count; i++ {
		life := opts.MinLife + s.rng.Float64()*(opts.MaxLife-opts.MinLife)
		s.particles = append(s.particles, Particle{
			X:       x,
			Y:       y,
			VX:      (s.rng.Float64()*2 - 1) * opts.VelocitySpread,
			VY:      (s.rng.Float64()*2 - 1) * opts.VelocitySpread,
			Life:    life,
			MaxLife: life,
			Size:    opts.MinSize + s.rng.Float64()*(opts.MaxSize-opts.MinSize),
			Color:   opts.Color,
		})
	}
}

// Update integrates positions linearly over dt seconds and retires
// particles whose life runs out.
func (s *ParticleSystem) Update(dt float64) {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt * 1000
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Count returns the number of live particles.
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Clear retires all particles immediately.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

// Shapes projects live particles to renderable circles whose opacity
// fades with remaining life.
func (s *ParticleSystem) Shapes() []Item {
	out := make([]Item, 0, len(s.particles))
	for i, p := range s.particles {
		item := NewCircle(fmt.Sprintf("particle-%d", i), p.X, p.Y, p.Size/2, p.Color)
		item.Layer = LayerForeground
		item.Opacity = p.Life / p.MaxLife
		out = append(out, item)
	}
	return out
}
