package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Particles  int
	Tick       int32
	DriftPhase float64
	Paused     bool
	Pressed    bool
	Perf       telemetry.PerfStats
}

// HUD renders the heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a HUD anchored at (x, y).
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the HUD and returns the Y position below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	pad := r.Theme.Padding
	height := r.Theme.LineHeight*8 + pad*2

	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + pad
	y := h.y + pad
	inner := h.width - pad*2

	y = r.DrawSectionHeader(x, y, data.Title)
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", int(data.Perf.FPS)))
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", data.Tick))
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Drift", fmt.Sprintf("%.2f", data.DriftPhase))
	y = r.DrawLabelValue(x, y, "Tick time", fmt.Sprintf("%dus", data.Perf.AvgTickDuration.Microseconds()))

	// Share of a 60fps frame budget spent on the field
	budget := float32(data.Perf.PhaseAvg[telemetry.PhaseField].Microseconds()) / 16667
	y = r.DrawBar(x, y, "Frame budget", budget, inner)

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	} else if data.Pressed {
		status = "Pointer held"
	}
	rl.DrawText(status, x, y, r.Theme.FontSize, r.Theme.SectionHeader)

	return h.y + height
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
