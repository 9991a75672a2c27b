package systems

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Growth and pointer scaling constants.
const (
	angleScaleFactor = 0.7    // baseScale = |angle| * factor, capped at 1
	growthAgeSpan    = 200.0  // age / span drives the growth ramp
	pointerScaleSpan = 1000.0 // pressed scale = pointer distance / span
)

// Params is the per-tick configuration snapshot.
// Values are used as-is; the core does not range check them.
type Params struct {
	NoiseScale      float64
	NoiseStrength   float64
	ParticleSpacing float64
	MouseAttraction float64
}

// Pointer is the polled pointer state for one tick.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Sprite is the mutable visual state a renderer reads for one particle.
type Sprite struct {
	X, Y     float64
	Rotation float64        // radians
	Scale    float64        // uniform, signed
	Tint     colorful.Color
}

// Particle is a single flow-driven entity.
// Its rendered position is always origin plus the current velocity;
// age is the only state carried from one update to the next.
type Particle struct {
	originX, originY float64

	VelX, VelY float64
	Age        float64
	Speed      float64

	// Attraction is computed while the pointer is pressed but not
	// applied to position or scale.
	Attraction float64

	// BaseTint is the stable per-origin tint assigned at construction.
	BaseTint colorful.Color

	Sprite Sprite
}

// NewParticle creates a particle spawned at (x, y).
func NewParticle(x, y float64) *Particle {
	base := SpeedToColor(x+y, BaseTintMax)
	return &Particle{
		originX:  x,
		originY:  y,
		BaseTint: base,
		Sprite: Sprite{
			X:     x,
			Y:     y,
			Scale: 1,
			Tint:  base,
		},
	}
}

// Origin returns the spawn point.
func (p *Particle) Origin() (x, y float64) {
	return p.originX, p.originY
}

// Update recomputes kinematic and visual state from the flow angle.
func (p *Particle) Update(angle float64, params Params, ptr Pointer) {
	// Velocity is recomputed from scratch, never integrated
	p.VelX = math.Cos(angle) * params.NoiseStrength
	p.VelY = math.Sin(angle) * params.NoiseStrength

	p.Sprite.X = p.originX + p.VelX
	p.Sprite.Y = p.originY + p.VelY

	scale := math.Min(math.Abs(angle*angleScaleFactor), 1)
	// No lower bound: negative age yields a signed, mirrored scale
	growth := math.Min(p.Age/growthAgeSpan, 1)
	scale = clamp(scale*growth, -1, 1)

	if ptr.Pressed {
		dx := ptr.X - p.Sprite.X
		dy := ptr.Y - p.Sprite.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		div := dist
		if div == 0 {
			div = 1
		}
		p.Attraction = params.MouseAttraction / div

		// Pressed scale replaces the clamped scale and is not clamped
		// itself. Rotation keeps its previous value while pressed.
		scale = dist / pointerScaleSpan
	} else {
		p.Sprite.Rotation = angle
	}

	p.Sprite.Scale = scale
	p.Age -= angle

	p.Speed = angle
	p.Sprite.Tint = SpeedToColor(p.Speed, SpeedTintMax)
}
