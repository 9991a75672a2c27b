package systems

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise backend names accepted by NewNoiseFieldFor.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

// Sampler is a continuous 2D scalar noise source.
type Sampler interface {
	Sample(x, y float64) float64
}

// SimplexNoise wraps OpenSimplex noise as a Sampler.
type SimplexNoise struct {
	noise opensimplex.Noise
}

// NewSimplexNoise creates a seeded OpenSimplex noise source.
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{noise: opensimplex.New(seed)}
}

// Sample returns a noise value for 2D coordinates.
func (s *SimplexNoise) Sample(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

// Octave settings for the Perlin backend: amplitude falls by perlinAlpha
// and frequency rises by perlinBeta over perlinOctaves octaves.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// PerlinNoise wraps multi-octave Perlin noise as a Sampler.
type PerlinNoise struct {
	noise *perlin.Perlin
}

// NewPerlinNoise creates a seeded Perlin noise source.
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample returns a noise value for 2D coordinates.
func (p *PerlinNoise) Sample(x, y float64) float64 {
	return p.noise.Noise2D(x, y)
}

// NoiseField maps spatial coordinates to flow directions.
// A field is a pure function of its input once constructed.
type NoiseField struct {
	src Sampler
}

// NewNoiseField creates a noise field backed by seeded OpenSimplex noise.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{src: NewSimplexNoise(seed)}
}

// NewNoiseFieldFrom creates a noise field over an arbitrary sampler.
func NewNoiseFieldFrom(src Sampler) *NoiseField {
	return &NoiseField{src: src}
}

// NewNoiseFieldFor creates a noise field using the named backend.
func NewNoiseFieldFor(algorithm string, seed int64) (*NoiseField, error) {
	switch algorithm {
	case NoiseSimplex, "":
		return NewNoiseField(seed), nil
	case NoisePerlin:
		return NewNoiseFieldFrom(NewPerlinNoise(seed)), nil
	default:
		return nil, fmt.Errorf("unknown noise algorithm %q", algorithm)
	}
}

// Sample returns the raw noise value at (x, y), bounded to [-1, 1].
func (f *NoiseField) Sample(x, y float64) float64 {
	return clamp(f.src.Sample(x, y), -1, 1)
}

// Angle returns the flow angle in radians at (x, y) after scaling the
// coordinates by scale. The result lies in [-2π, 2π].
func (f *NoiseField) Angle(x, y, scale float64) float64 {
	return f.Sample(x*scale, y*scale) * 2 * math.Pi
}
