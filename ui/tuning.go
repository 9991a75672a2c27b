package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/driftfield/config"
)

// TuningPanel edits the live field parameters with sliders.
type TuningPanel struct {
	renderer *Renderer
	ranges   config.TuningConfig
	x, y     int32
	width    int32
	visible  bool
}

// NewTuningPanel creates a tuning panel using the configured slider ranges.
func NewTuningPanel(ranges config.TuningConfig, x, y, width int32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		ranges:   ranges,
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (t *TuningPanel) Toggle() bool {
	t.visible = !t.visible
	return t.visible
}

// SetPosition moves the panel.
func (t *TuningPanel) SetPosition(x, y int32) {
	t.x = x
	t.y = y
}

// Contains reports whether a screen point lies over the panel.
func (t *TuningPanel) Contains(px, py float32) bool {
	if !t.visible {
		return false
	}
	return px >= float32(t.x) && px <= float32(t.x+t.width) &&
		py >= float32(t.y) && py <= float32(t.y+t.height())
}

func (t *TuningPanel) height() int32 {
	return t.renderer.Theme.LineHeight*5 + t.renderer.Theme.Padding*2
}

// Draw renders the sliders and writes any changes into field.
// Returns true if a value changed.
func (t *TuningPanel) Draw(field *config.FieldConfig) bool {
	if !t.visible {
		return false
	}

	r := t.renderer
	pad := r.Theme.Padding
	r.DrawPanel(t.x, t.y, t.width, t.height())

	x := t.x + pad
	y := t.y + pad
	y = r.DrawSectionHeader(x, y, "Tuning")

	changed := false
	scale, y := t.slider(x, y, "noiseScale", field.NoiseScale, t.ranges.NoiseScaleMin, t.ranges.NoiseScaleMax, "%.6f")
	if scale != field.NoiseScale {
		field.NoiseScale = scale
		changed = true
	}
	strength, _ := t.slider(x, y, "noiseStrength", field.NoiseStrength, t.ranges.NoiseStrengthMin, t.ranges.NoiseStrengthMax, "%.1f")
	if strength != field.NoiseStrength {
		field.NoiseStrength = strength
		changed = true
	}

	return changed
}

// slider draws a labelled slider and returns the (possibly new) value.
func (t *TuningPanel) slider(x, y int32, label string, value, minVal, maxVal float64, format string) (float64, int32) {
	r := t.renderer
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(fmt.Sprintf(format, value), x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += r.Theme.LineHeight

	bounds := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(t.width - r.Theme.Padding*2),
		Height: float32(r.Theme.BarHeight + 4),
	}
	next := gui.SliderBar(bounds, "", "", float32(value), float32(minVal), float32(maxVal))
	y += r.Theme.LineHeight

	// Unmoved sliders keep the exact float64 value.
	if next == float32(value) {
		return value, y
	}
	return float64(next), y
}
