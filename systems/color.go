package systems

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Tint gradient magnitudes.
const (
	BaseTintMax  = 3000.0 // Base tint keyed by origin x+y
	SpeedTintMax = 6.0    // Per-frame tint keyed by speed
)

// Gradient end points. Zero maps to TintSlow, full magnitude to TintFast.
var (
	TintSlow = colorful.Color{R: 0.10, G: 0.22, B: 0.55}
	TintFast = colorful.Color{R: 1.00, G: 0.78, B: 0.35}
)

// SpeedToColor maps a signed value onto the tint gradient.
// Magnitude is clamped to maxMagnitude; a non-positive maxMagnitude
// always yields TintSlow.
func SpeedToColor(value, maxMagnitude float64) colorful.Color {
	if maxMagnitude <= 0 {
		return TintSlow
	}
	t := math.Min(math.Abs(value), maxMagnitude) / maxMagnitude
	return TintSlow.BlendHcl(TintFast, t).Clamped()
}
