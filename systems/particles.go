package systems

import "math"

// Bounds is the canvas extent particles are seeded into.
type Bounds struct {
	Width, Height float64
}

// ParticleSystem owns the particle population, the noise field and
// the drift phase shared by every particle in a tick.
type ParticleSystem struct {
	particles  []*Particle
	noise      *NoiseField
	driftPhase float64
	bounds     Bounds
	pool       *workerPool // nil = single-threaded
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(noise *NoiseField, bounds Bounds) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]*Particle, 0, 1024),
		noise:     noise,
		bounds:    bounds,
	}
}

// SetParallel enables chunked updates across workers once the population
// reaches threshold. workers <= 0 uses GOMAXPROCS; workers == 1 disables it.
func (s *ParticleSystem) SetParallel(workers, threshold int) {
	if s.pool != nil {
		s.pool.stopWorkers()
		s.pool = nil
	}
	if workers == 1 {
		return
	}
	s.pool = newWorkerPool(workers, threshold)
}

// Close stops any running workers. Later ticks run single-threaded
// until SetParallel is called again.
func (s *ParticleSystem) Close() {
	if s.pool != nil {
		s.pool.stopWorkers()
		s.pool = nil
	}
}

// Resize updates the canvas extent used by later SeedGrid calls.
func (s *ParticleSystem) Resize(width, height float64) {
	s.bounds = Bounds{Width: width, Height: height}
}

// Bounds returns the current canvas extent.
func (s *ParticleSystem) Bounds() Bounds {
	return s.bounds
}

// SeedGrid creates count particles at the cell centers of a grid
// centered in the canvas, in row-major order, with spacing as the cell size.
func (s *ParticleSystem) SeedGrid(count int, spacing float64) {
	if count <= 0 {
		return
	}

	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := int(math.Ceil(float64(count) / float64(cols)))
	startX := (s.bounds.Width - float64(cols)*spacing) / 2
	startY := (s.bounds.Height - float64(rows)*spacing) / 2

	for i := 0; i < count; i++ {
		x := startX + (float64(i%cols)+0.5)*spacing
		y := startY + (float64(i/cols)+0.5)*spacing
		s.AddParticle(NewParticle(x, y))
	}
}

// FillToBudget seeds enough particles to bring the population up to
// budget and returns how many were created.
func (s *ParticleSystem) FillToBudget(budget int, spacing float64) int {
	n := budget - len(s.particles)
	if n <= 0 {
		return 0
	}
	s.SeedGrid(n, spacing)
	return n
}

// AddParticle appends p to the population.
func (s *ParticleSystem) AddParticle(p *Particle) {
	s.particles = append(s.particles, p)
}

// RemoveParticle removes the first occurrence of p, preserving the order
// of the remaining particles. Returns false if p is not a member.
func (s *ParticleSystem) RemoveParticle(p *Particle) bool {
	for i, q := range s.particles {
		if q != p {
			continue
		}
		copy(s.particles[i:], s.particles[i+1:])
		s.particles[len(s.particles)-1] = nil
		s.particles = s.particles[:len(s.particles)-1]
		return true
	}
	return false
}

// Particles returns the live population in paint order.
// The slice is owned by the system and must not be modified.
func (s *ParticleSystem) Particles() []*Particle {
	return s.particles
}

// Len returns the population size.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// DriftPhase returns the phase the next tick will sample with.
func (s *ParticleSystem) DriftPhase() float64 {
	return s.driftPhase
}

// Tick advances every particle by one frame. Each particle samples the
// field at its current rendered position offset by the drift phase, and
// the phase advances by NoiseStrength once all particles are updated.
//
// The population is captured when the tick starts; particles added or
// removed afterwards take part from the next tick.
func (s *ParticleSystem) Tick(params Params, ptr Pointer) {
	phase := s.driftPhase
	particles := s.particles

	if s.pool != nil && len(particles) >= s.pool.threshold {
		s.pool.run(s, particles, tickState{phase: phase, params: params, ptr: ptr})
	} else {
		s.updateRange(particles, tickState{phase: phase, params: params, ptr: ptr})
	}

	s.driftPhase += params.NoiseStrength
}

// tickState is the read-only input shared by all particles in a tick.
type tickState struct {
	phase  float64
	params Params
	ptr    Pointer
}

func (s *ParticleSystem) updateRange(particles []*Particle, ts tickState) {
	for _, p := range particles {
		angle := s.noise.Angle(p.Sprite.X+ts.phase, p.Sprite.Y+ts.phase, ts.params.NoiseScale)
		p.Update(angle, ts.params, ts.ptr)
	}
}
