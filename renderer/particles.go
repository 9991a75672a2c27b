package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/systems"
)

// ParticleRenderer draws flow particles as additive streaks.
type ParticleRenderer struct {
	streak *StreakTexture
	width  int32
	height int32
}

// NewParticleRenderer creates a renderer drawing with the shared streak.
func NewParticleRenderer(streak *StreakTexture, width, height int32) *ParticleRenderer {
	return &ParticleRenderer{
		streak: streak,
		width:  width,
		height: height,
	}
}

// Resize updates the viewport used for culling.
func (r *ParticleRenderer) Resize(width, height int32) {
	r.width = width
	r.height = height
}

// Draw renders particles in population order.
func (r *ParticleRenderer) Draw(particles []*systems.Particle) {
	tex := r.streak
	w := float32(tex.Width)
	h := float32(tex.Height)
	margin := w

	rl.BeginBlendMode(rl.BlendAdditive)

	for _, p := range particles {
		sp := &p.Sprite
		scale := float32(sp.Scale)
		if scale == 0 || math.IsNaN(sp.Scale) {
			continue
		}

		x := float32(sp.X)
		y := float32(sp.Y)
		if x < -margin || y < -margin || x > float32(r.width)+margin || y > float32(r.height)+margin {
			continue
		}

		// A negative scale mirrors the streak through its anchor
		rotation := sp.Rotation
		if scale < 0 {
			scale = -scale
			rotation += math.Pi
		}

		dst := rl.Rectangle{X: x, Y: y, Width: w * scale, Height: h * scale}
		// Anchored at the left end of the bottom edge
		origin := rl.Vector2{X: 0, Y: h * scale}

		cr, cg, cb := sp.Tint.RGB255()
		rl.DrawTexturePro(
			tex.Texture,
			rl.Rectangle{X: 0, Y: 0, Width: w, Height: h},
			dst,
			origin,
			float32(rotation*180/math.Pi),
			rl.Color{R: cr, G: cg, B: cb, A: 255},
		)
	}

	rl.EndBlendMode()
}
