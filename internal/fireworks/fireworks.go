package fireworks

import (
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"love-museum/internal/primitives"
)

const (
	// ParticleCount is the number of particles in one burst.
	ParticleCount = 200
	minLife       = 3.0
	lifeSpread    = 2.0
	// spread is the width of the random velocity range on each axis (units/s).
	spread = 3.0
	lift   = 2.4
	// gravity pulls particles down (units/s²).
	gravity = 1.2
	// sizePerLife shrinks particles as they die: diameter = life * sizePerLife.
	sizePerLife = 0.02
)

// Palette is the set of particle colours.
var Palette = []rl.Color{
	rl.NewColor(255, 0, 0, 255),
	rl.NewColor(0, 255, 0, 255),
	rl.NewColor(0, 0, 255, 255),
	rl.NewColor(255, 255, 0, 255),
	rl.NewColor(255, 0, 255, 255),
	rl.NewColor(0, 255, 255, 255),
}

// Particle is one spark. It is dead once Life reaches zero.
type Particle struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Color    rl.Color
	Life     float32
}

// Alive reports whether the particle is still drawn.
func (p Particle) Alive() bool {
	return p.Life > 0
}

// Size returns the particle diameter.
func (p Particle) Size() float32 {
	if p.Life <= 0 {
		return 0
	}
	return p.Life * sizePerLife
}

// System holds every live burst.
type System struct {
	particles []Particle
	rng       *rand.Rand
}

// New returns an empty system. The seed makes bursts reproducible in tests.
func New(seed uint64) *System {
	return &System{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Spawn adds a burst of ParticleCount particles at origin.
func (s *System) Spawn(origin rl.Vector3) {
	for i := 0; i < ParticleCount; i++ {
		s.particles = append(s.particles, Particle{
			Position: origin,
			Velocity: rl.NewVector3(
				(s.rng.Float32()-0.5)*spread,
				(s.rng.Float32()-0.5)*spread+lift,
				(s.rng.Float32()-0.5)*spread,
			),
			Color: Palette[s.rng.IntN(len(Palette))],
			Life:  minLife + s.rng.Float32()*lifeSpread,
		})
	}
}

// Update advances every particle by dt seconds and drops the dead ones.
func (s *System) Update(dt float32) {
	if dt <= 0 {
		return
	}
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(p.Velocity, dt))
		p.Velocity.Y -= gravity * dt
		p.Life -= dt
		if p.Alive() {
			live = append(live, p)
		}
	}
	s.particles = live
}

// Active returns the number of live particles.
func (s *System) Active() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is reused by Update.
func (s *System) Particles() []Particle {
	return s.particles
}

// Draw renders the particles as unlit spheres. Call inside the 3D pass.
func (s *System) Draw(reg *primitives.Registry) {
	for _, p := range s.particles {
		d := p.Size()
		world := rl.MatrixMultiply(rl.MatrixScale(d, d, d), rl.MatrixTranslate(p.Position.X, p.Position.Y, p.Position.Z))
		reg.Draw(primitives.Sphere, world, primitives.Style{Color: p.Color, Unlit: true})
	}
}
