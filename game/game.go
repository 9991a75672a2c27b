// Package game hosts the flow field: it owns the frame loop, captures
// input, and wires the particle system to rendering and telemetry.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/systems"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/ui"
)

const title = "Drift Field"

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete runtime state.
type Game struct {
	cfg   *config.Config
	field *systems.ParticleSystem

	pointer        systems.Pointer
	tick           int32
	paused         bool
	stepsPerUpdate int
	headless       bool

	screenWidth, screenHeight float32

	// Telemetry
	logStats      bool
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)

	// Rendering (nil when headless)
	streak           *renderer.StreakTexture
	particleRenderer *renderer.ParticleRenderer
	hud              *ui.HUD
	tuning           *ui.TuningPanel
}

// NewGameWithOptions creates a game and seeds the initial population.
// Graphical mode requires the raylib window to exist already.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	noise, err := systems.NewNoiseFieldFor(cfg.Noise.Algorithm, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating noise field: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
		logStats:       opts.LogStats,
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		outputManager:  om,
	}

	g.field = systems.NewParticleSystem(noise, systems.Bounds{
		Width:  cfg.Derived.ScreenW,
		Height: cfg.Derived.ScreenH,
	})
	g.field.SetParallel(cfg.Parallel.Workers, cfg.Parallel.Threshold)

	seeded := g.field.FillToBudget(cfg.Population.Budget, cfg.Field.ParticleSpacing)
	slog.Info("seeded population",
		"particles", seeded,
		"spacing", cfg.Field.ParticleSpacing,
		"noise", cfg.Noise.Algorithm,
		"seed", opts.Seed,
	)

	if !opts.Headless {
		g.initRendering()
	}

	return g, nil
}

func (g *Game) initRendering() {
	pc := g.cfg.Particle
	g.streak = renderer.NewStreakTexture(pc.TextureWidth, pc.TextureHeight, pc.TextureRadius)
	g.particleRenderer = renderer.NewParticleRenderer(g.streak, int32(g.screenWidth), int32(g.screenHeight))
	g.hud = ui.NewHUD(10, 10, 220)
	g.tuning = ui.NewTuningPanel(g.cfg.Tuning, int32(g.screenWidth)-250, 10, 240)
}

// SetStatsCallback registers a callback receiving every flushed stats window.
func (g *Game) SetStatsCallback(cb func(telemetry.WindowStats)) {
	g.statsCallback = cb
}

// params snapshots the live field configuration for one tick.
func (g *Game) params() systems.Params {
	f := g.cfg.Field
	return systems.Params{
		NoiseScale:      f.NoiseScale,
		NoiseStrength:   f.NoiseStrength,
		ParticleSpacing: f.ParticleSpacing,
		MouseAttraction: f.MouseAttraction,
	}
}

// Update handles input and runs the configured number of ticks.
func (g *Game) Update() {
	g.perfCollector.StartTick(g.field.Len() * g.stepsPerUpdate)
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if !g.paused {
		g.runSteps()
	}

	g.perfCollector.EndTick()
}

// UpdateHeadless runs ticks without polling input or touching raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick(g.field.Len() * g.stepsPerUpdate)
	g.runSteps()
	g.perfCollector.EndTick()
}

func (g *Game) runSteps() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perfCollector.StartPhase(telemetry.PhaseField)
		g.field.Tick(g.params(), g.pointer)
		g.tick++

		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.collector.RecordTick(g.pointer)
		g.flushTelemetry()
	}
}

// Draw renders the particles and UI.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.particleRenderer.Draw(g.field.Particles())

	perf := g.perfCollector.Stats()
	g.hud.Draw(ui.HUDData{
		Title:      title,
		Particles:  g.field.Len(),
		Tick:       g.tick,
		DriftPhase: g.field.DriftPhase(),
		Paused:     g.paused,
		Pressed:    g.pointer.Pressed,
		Perf:       perf,
	})
	g.tuning.Draw(&g.cfg.Field)
	g.hud.DrawControls(int32(g.screenHeight), "[Space] pause  [H] tuning  [,/.] steps  [F11] fullscreen")

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// Unload stops workers and releases GPU and file resources.
func (g *Game) Unload() {
	g.field.Close()
	if g.streak != nil {
		g.streak.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Field returns the particle system.
func (g *Game) Field() *systems.ParticleSystem {
	return g.field
}
