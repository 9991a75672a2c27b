// Package config provides configuration loading and access for the flow field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Noise      NoiseConfig      `yaml:"noise"`
	Population PopulationConfig `yaml:"population"`
	Particle   ParticleConfig   `yaml:"particle"`
	Tuning     TuningConfig     `yaml:"tuning"`
	Parallel   ParallelConfig   `yaml:"parallel"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds the live-tunable motion parameters.
// Values are used as-is; nothing here is range checked.
type FieldConfig struct {
	NoiseScale      float64 `yaml:"noise_scale"`      // Spatial frequency applied before sampling
	NoiseStrength   float64 `yaml:"noise_strength"`   // Velocity magnitude and drift phase step
	ParticleSpacing float64 `yaml:"particle_spacing"` // Grid cell size when seeding
	MouseAttraction float64 `yaml:"mouse_attraction"` // Pointer attraction multiplier
}

// NoiseConfig selects and seeds the noise backend.
type NoiseConfig struct {
	Seed      int64  `yaml:"seed"`      // 0 = time-based
	Algorithm string `yaml:"algorithm"` // "simplex" or "perlin"
}

// PopulationConfig holds population seeding parameters.
type PopulationConfig struct {
	Budget int `yaml:"budget"` // Grid is filled up to this many particles at startup
}

// ParticleConfig holds the shared streak texture dimensions.
type ParticleConfig struct {
	TextureWidth  int     `yaml:"texture_width"`
	TextureHeight int     `yaml:"texture_height"`
	TextureRadius float64 `yaml:"texture_radius"`
}

// TuningConfig holds slider ranges for the live tuning panel.
type TuningConfig struct {
	NoiseScaleMin    float64 `yaml:"noise_scale_min"`
	NoiseScaleMax    float64 `yaml:"noise_scale_max"`
	NoiseStrengthMin float64 `yaml:"noise_strength_min"`
	NoiseStrengthMax float64 `yaml:"noise_strength_max"`
}

// ParallelConfig holds worker pool settings for the tick loop.
type ParallelConfig struct {
	Workers   int `yaml:"workers"`   // 0 = GOMAXPROCS, 1 = single-threaded
	Threshold int `yaml:"threshold"` // Minimum population before work is split
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // Ticks averaged by the perf collector
	StatsWindow int `yaml:"stats_window"` // Ticks per population stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW float64 // Screen.Width as float64
	ScreenH float64 // Screen.Height as float64
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	if c.Noise.Algorithm == "" {
		c.Noise.Algorithm = "simplex"
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
