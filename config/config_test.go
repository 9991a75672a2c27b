package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Population.Budget != 10000 {
		t.Errorf("expected budget 10000, got %d", cfg.Population.Budget)
	}
	if cfg.Particle.TextureWidth != 80 || cfg.Particle.TextureHeight != 6 {
		t.Errorf("expected 80x6 streak texture, got %dx%d", cfg.Particle.TextureWidth, cfg.Particle.TextureHeight)
	}
	if cfg.Parallel.Workers != 1 {
		t.Errorf("expected single-threaded ticks by default, got %d workers", cfg.Parallel.Workers)
	}
	if cfg.Noise.Algorithm != "simplex" {
		t.Errorf("expected simplex backend, got %q", cfg.Noise.Algorithm)
	}
	if cfg.Derived.ScreenW != float64(cfg.Screen.Width) {
		t.Errorf("expected derived width %d, got %f", cfg.Screen.Width, cfg.Derived.ScreenW)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("field:\n  noise_strength: 7.5\nnoise:\n  algorithm: perlin\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Field.NoiseStrength != 7.5 {
		t.Errorf("expected overridden strength 7.5, got %f", cfg.Field.NoiseStrength)
	}
	if cfg.Noise.Algorithm != "perlin" {
		t.Errorf("expected perlin backend, got %q", cfg.Noise.Algorithm)
	}
	// Untouched fields keep their defaults
	if cfg.Field.NoiseScale != 0.0001 {
		t.Errorf("expected default noise scale 0.0001, got %f", cfg.Field.NoiseScale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := MustLoad("")
	cfg.Field.NoiseScale = 0.0005

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Field.NoiseScale != 0.0005 {
		t.Errorf("expected 0.0005 after reload, got %f", loaded.Field.NoiseScale)
	}
}
