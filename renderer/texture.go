package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Alpha stops along the streak, left to right.
var streakStops = []struct {
	at, alpha float64
}{
	{0.0, 0},
	{0.2, 0.3},
	{1.0, 1},
}

// StreakTexture is the shared streak image every particle is drawn with.
// It is created once by the renderer; particles never own it.
type StreakTexture struct {
	Texture rl.Texture2D
	Width   int32
	Height  int32
	loaded  bool
}

// NewStreakTexture builds and uploads the streak texture.
// Must be called after the raylib window is created.
func NewStreakTexture(width, height int, radius float64) *StreakTexture {
	img := rl.GenImageColor(width, height, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.UpdateTexture(tex, streakPixels(width, height, radius))
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	return &StreakTexture{
		Texture: tex,
		Width:   int32(width),
		Height:  int32(height),
		loaded:  true,
	}
}

// Unload frees the GPU texture.
func (s *StreakTexture) Unload() {
	if s.loaded {
		rl.UnloadTexture(s.Texture)
		s.loaded = false
	}
}

// streakPixels fills a white rounded rectangle whose alpha ramps up
// from left to right.
func streakPixels(width, height int, radius float64) []color.RGBA {
	// Corner radius can't exceed half the shorter side
	r := math.Min(radius, math.Min(float64(width), float64(height))/2)

	pixels := make([]color.RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cx := float64(x) + 0.5
			cy := float64(y) + 0.5
			if !insideRoundedRect(cx, cy, float64(width), float64(height), r) {
				continue
			}
			a := streakAlpha(cx / float64(width))
			pixels[y*width+x] = color.RGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)}
		}
	}
	return pixels
}

func streakAlpha(t float64) float64 {
	for i := 1; i < len(streakStops); i++ {
		lo, hi := streakStops[i-1], streakStops[i]
		if t <= hi.at {
			f := (t - lo.at) / (hi.at - lo.at)
			return lo.alpha + (hi.alpha-lo.alpha)*f
		}
	}
	return streakStops[len(streakStops)-1].alpha
}

func insideRoundedRect(x, y, w, h, r float64) bool {
	// Distance to the nearest corner circle center, if in a corner band
	dx := math.Max(r-x, x-(w-r))
	dy := math.Max(r-y, y-(h-r))
	if dx <= 0 || dy <= 0 {
		return true
	}
	return dx*dx+dy*dy <= r*r
}
