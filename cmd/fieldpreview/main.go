// Flow field preview tool - interactive visualization of the noise angle
// field with sliders.
//
// Usage: go run ./cmd/fieldpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 128
	arrowStep    = 8
)

// previewParams holds the tunable field parameters.
type previewParams struct {
	NoiseScale    float64
	NoiseStrength float64
	Phase         float64
	Extent        float64 // World units covered by the preview square
	Seed          int64
	Perlin        bool
}

func defaultParams(cfg *config.Config) previewParams {
	return previewParams{
		NoiseScale:    cfg.Field.NoiseScale,
		NoiseStrength: cfg.Field.NoiseStrength,
		Extent:        cfg.Derived.ScreenW,
		Seed:          cfg.Noise.Seed,
		Perlin:        cfg.Noise.Algorithm == systems.NoisePerlin,
	}
}

func (p previewParams) algorithm() string {
	if p.Perlin {
		return systems.NoisePerlin
	}
	return systems.NoiseSimplex
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)
	field, err := systems.NewNoiseFieldFor(params.algorithm(), params.Seed)
	if err != nil {
		slog.Error("failed to create noise field", "error", err)
		return
	}

	angles := make([]float64, gridSize*gridSize)
	pixels := make([]color.RGBA, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	animating := false
	needsRegen := true
	needsField := false

	for !rl.WindowShouldClose() {
		// Animation advances the drift phase the same way a tick does
		if animating {
			params.Phase += params.NoiseStrength
			needsRegen = true
		}

		if needsField {
			if f, err := systems.NewNoiseFieldFor(params.algorithm(), params.Seed); err == nil {
				field = f
			}
			needsField = false
			needsRegen = true
		}

		if needsRegen {
			sampleAngles(field, angles, params)
			colorAngles(pixels, angles)
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		drawArrows(angles)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		minVal, maxVal, avg := angleStats(angles)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Angle min: %.2f  max: %.2f  avg: %.2f", minVal, maxVal, avg), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Phase: %.1f  Backend: %s", params.Phase, params.algorithm()), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Noise scale is tuned on a log axis; the useful range spans two decades
		logScale, changed := slider(panelX, &panelY, "Noise scale (spatial frequency)",
			math.Log10(params.NoiseScale), -5, -3, fmt.Sprintf("%.5f", params.NoiseScale))
		if changed {
			params.NoiseScale = math.Pow(10, logScale)
			needsRegen = true
		}

		if v, changed := slider(panelX, &panelY, "Noise strength (phase step per tick)",
			params.NoiseStrength, cfg.Tuning.NoiseStrengthMin, cfg.Tuning.NoiseStrengthMax,
			fmt.Sprintf("%.2f", params.NoiseStrength)); changed {
			params.NoiseStrength = v
		}

		if v, changed := slider(panelX, &panelY, "Extent (world units shown)",
			params.Extent, 100, 20000, fmt.Sprintf("%.0f", params.Extent)); changed {
			params.Extent = v
			needsRegen = true
		}

		if v, changed := slider(panelX, &panelY, "Seed",
			float64(params.Seed), 0, 99999, fmt.Sprintf("%d", params.Seed)); changed {
			params.Seed = int64(v)
			needsField = true
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Phase") {
			params.Phase = 0
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsField = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Perlin, "Use Simplex", "Use Perlin")) {
			params.Perlin = !params.Perlin
			needsField = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			needsField = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlText := paramsYAML(params)
		rl.DrawText(yamlText, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and advances y. It reports whether the
// user moved the handle.
func slider(x float32, y *float32, label string, value, minVal, maxVal float64, text string) (float64, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		float32(value), float32(minVal), float32(maxVal),
	)
	rl.DrawText(text, int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	if newValue == float32(value) {
		return value, false
	}
	return float64(newValue), true
}

func paramsYAML(p previewParams) string {
	return fmt.Sprintf(`field:
  noise_scale: %.5f
  noise_strength: %.2f
noise:
  seed: %d
  algorithm: %s`,
		p.NoiseScale, p.NoiseStrength, p.Seed, p.algorithm())
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// sampleAngles fills the grid with the angle a particle resting at each
// cell centre would receive, using the same phase offset as a tick.
func sampleAngles(field *systems.NoiseField, angles []float64, p previewParams) {
	cell := p.Extent / gridSize
	for gy := 0; gy < gridSize; gy++ {
		y := (float64(gy) + 0.5) * cell
		for gx := 0; gx < gridSize; gx++ {
			x := (float64(gx) + 0.5) * cell
			angles[gy*gridSize+gx] = field.Angle(x+p.Phase, y+p.Phase, p.NoiseScale)
		}
	}
}

// colorAngles maps the angle direction to hue and its magnitude to value.
func colorAngles(pixels []color.RGBA, angles []float64) {
	for i, a := range angles {
		hue := math.Mod(a, 2*math.Pi)
		if hue < 0 {
			hue += 2 * math.Pi
		}
		v := 0.35 + 0.65*math.Min(math.Abs(a)/(2*math.Pi), 1)
		r, g, b := colorful.Hsv(hue*180/math.Pi, 0.7, v).Clamped().RGB255()
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
}

// drawArrows overlays short direction strokes on a coarse grid.
func drawArrows(angles []float64) {
	scale := float32(previewSize) / gridSize
	length := float32(arrowStep) * scale * 0.45
	for gy := arrowStep / 2; gy < gridSize; gy += arrowStep {
		for gx := arrowStep / 2; gx < gridSize; gx += arrowStep {
			a := angles[gy*gridSize+gx]
			cx := 10 + float32(gx)*scale
			cy := 10 + float32(gy)*scale
			dx := float32(math.Cos(a)) * length
			dy := float32(math.Sin(a)) * length
			rl.DrawLineV(rl.Vector2{X: cx, Y: cy}, rl.Vector2{X: cx + dx, Y: cy + dy}, rl.Fade(rl.Black, 0.6))
			rl.DrawCircleV(rl.Vector2{X: cx + dx, Y: cy + dy}, 1.5, rl.Fade(rl.Black, 0.6))
		}
	}
}

func angleStats(angles []float64) (minVal, maxVal, avg float64) {
	if len(angles) == 0 {
		return 0, 0, 0
	}
	minVal, maxVal = angles[0], angles[0]
	var sum float64
	for _, a := range angles {
		sum += a
		minVal = math.Min(minVal, a)
		maxVal = math.Max(maxVal, a)
	}
	return minVal, maxVal, sum / float64(len(angles))
}
