package game

import (
	"math/rand"

	"github.com/vkotlyarov/tileburst/internal/config"
	"github.com/vkotlyarov/tileburst/internal/core"
)

// Particle is transient merge feedback. Coordinates are continuous board
// cell units with the origin at the board's top-left corner; nothing
// outside the particle system holds a reference to one.
type Particle struct {
	X, Y       float64
	Size       int
	VelX, VelY float64
	Color      core.Color
	Life       float64
}

// Alive reports whether the particle should be kept. A particle whose life
// just crossed zero is kept for one more frame but is no longer visible.
func (p Particle) Alive() bool {
	return p.Life >= 0
}

// Visible reports whether the particle should be drawn.
func (p Particle) Visible() bool {
	return p.Life > 0
}

// tick advances the particle by dt seconds: Euler position update, life
// decay, and friction that shrinks each velocity component toward zero
// without ever flipping its sign.
func (p *Particle) tick(dt float64, cfg config.Particles) {
	p.X += p.VelX * dt
	p.Y += p.VelY * dt
	p.Life -= cfg.Decay * dt
	p.VelX = decayAbs(p.VelX, cfg.Friction*dt)
	p.VelY = decayAbs(p.VelY, cfg.Friction*dt)
}

// decayAbs moves v toward zero by amount, clamping at zero so the result
// never overshoots into the opposite sign.
func decayAbs(v, amount float64) float64 {
	if v > 0 {
		v -= amount
		if v < 0 {
			return 0
		}
		return v
	}
	if v < 0 {
		v += amount
		if v > 0 {
			return 0
		}
		return v
	}
	return 0
}

// ParticleView is the per-frame render snapshot of a visible particle.
type ParticleView struct {
	X, Y  float64
	Size  int
	Color core.Color
	Alpha float64 // 0..1, proportional to remaining life
}

// ParticleSystem owns the unordered collection of live particles.
type ParticleSystem struct {
	cfg       config.Particles
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.Particles, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg: cfg,
		rng: rng,
	}
}

// SpawnBurst creates count particles at (x, y) with randomized size,
// velocity, and initial life, all in the given color.
func (ps *ParticleSystem) SpawnBurst(x, y float64, color core.Color, count int) {
	for i := 0; i < count; i++ {
		size := ps.cfg.SizeMin
		if ps.cfg.SizeMax > ps.cfg.SizeMin {
			size += ps.rng.Intn(ps.cfg.SizeMax - ps.cfg.SizeMin + 1)
		}
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			Size:  size,
			VelX:  ps.randRange(-ps.cfg.Speed, ps.cfg.Speed),
			VelY:  ps.randRange(-ps.cfg.Speed, ps.cfg.Speed),
			Color: color,
			Life:  ps.randRange(ps.cfg.LifeMin, ps.cfg.LifeMax),
		})
	}
}

func (ps *ParticleSystem) randRange(min, max float64) float64 {
	return min + ps.rng.Float64()*(max-min)
}

// Tick advances every particle by dt seconds.
func (ps *ParticleSystem) Tick(dt float64) {
	for i := range ps.particles {
		ps.particles[i].tick(dt, ps.cfg)
	}
}

// Prune removes particles whose life has dropped below zero.
func (ps *ParticleSystem) Prune() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Visible returns render snapshots for particles with strictly positive
// life. Alpha fades linearly from life/life_ref toward zero.
func (ps *ParticleSystem) Visible() []ParticleView {
	views := make([]ParticleView, 0, len(ps.particles))
	for _, p := range ps.particles {
		if !p.Visible() {
			continue
		}
		alpha := 1.0
		if ps.cfg.LifeRef > 0 {
			alpha = core.ClampF(p.Life/ps.cfg.LifeRef, 0, 1)
		}
		views = append(views, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			Color: p.Color,
			Alpha: alpha,
		})
	}
	return views
}

// Len returns the number of particles currently held, dead or alive.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops all particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = nil
}
