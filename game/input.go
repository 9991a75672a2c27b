package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/systems"
)

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.tuning.Toggle()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.pointer = g.pollPointer()
}

// pollPointer reads the pointer once per frame. Presses over the tuning
// panel belong to its sliders and are not forwarded to the field.
func (g *Game) pollPointer() systems.Pointer {
	pos := rl.GetMousePosition()
	pressed := rl.IsMouseButtonDown(rl.MouseButtonLeft) && !g.tuning.Contains(pos.X, pos.Y)
	return systems.Pointer{
		X:       float64(pos.X),
		Y:       float64(pos.Y),
		Pressed: pressed,
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.field.Resize(float64(w), float64(h))
	g.particleRenderer.Resize(int32(w), int32(h))
	g.tuning.SetPosition(int32(w)-250, 10)
}
