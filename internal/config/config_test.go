package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Boids != 500 {
		t.Errorf("expected 500 boids, got %d", cfg.Boids)
	}
	if cfg.Flock.MaxSpeed != 4.0 {
		t.Errorf("expected max speed 4, got %f", cfg.Flock.MaxSpeed)
	}
	if cfg.Schedule.Auto {
		t.Error("auto mode should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestModeConfig(t *testing.T) {
	mc := DefaultConfig().ModeConfig()
	if mc.BoidsTime != 30*time.Second || mc.PatternTime != 35*time.Second {
		t.Errorf("unexpected dwell times %v / %v", mc.BoidsTime, mc.PatternTime)
	}
	if mc.ClockStep != 0.01 {
		t.Errorf("expected clock step 0.01, got %f", mc.ClockStep)
	}
}

func TestWorldConfig(t *testing.T) {
	wc := DefaultConfig().WorldConfig()
	if wc.Viewport.Width != 800 || wc.Viewport.Height != 600 {
		t.Errorf("unexpected viewport %+v", wc.Viewport)
	}
	if wc.Flock.NeighborRadius != 50 {
		t.Errorf("expected neighbor radius 50, got %f", wc.Flock.NeighborRadius)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero boids", func(c *Config) { c.Boids = 0 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero catch-up", func(c *Config) { c.MaxCatchUp = 0 }},
		{"negative dwell", func(c *Config) { c.Schedule.BoidsTime = -1 }},
		{"negative clock step", func(c *Config) { c.Schedule.ClockStep = -0.01 }},
		{"zero clock step", func(c *Config) { c.Schedule.ClockStep = 0 }},
		{"zero max speed", func(c *Config) { c.Flock.MaxSpeed = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boids.yaml")
	data := "boids: 120\nschedule:\n  auto: true\n  boids_time: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Boids != 120 || !cfg.Schedule.Auto || cfg.Schedule.BoidsTime != 5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Schedule.PatternTime != DefaultPatternTime || cfg.Flock.MaxSpeed != 4.0 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("boids: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	backwards := filepath.Join(t.TempDir(), "backwards.yaml")
	if err := os.WriteFile(backwards, []byte("schedule:\n  clock_step: -0.01\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(backwards); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative clock_step, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boids.yaml")
	cfg := GetPreset("swarm")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("screensaver")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Schedule.Auto {
		t.Error("screensaver preset should enable auto mode")
	}

	cfg.Boids = 1
	if GetPreset("screensaver").Boids != DefaultBoids {
		t.Error("presets must not share state")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 12345)

	cfg := DefaultConfig()
	cfg.ResolveSeed(false, now)
	if cfg.Seed != 12345 {
		t.Errorf("expected clock seed 12345, got %d", cfg.Seed)
	}

	cfg = DefaultConfig()
	cfg.ResolveSeed(true, now)
	if cfg.Seed != 0 {
		t.Errorf("explicit seed 0 must be kept, got %d", cfg.Seed)
	}

	cfg = DefaultConfig()
	cfg.Seed = 7
	cfg.ResolveSeed(false, now)
	if cfg.Seed != 7 {
		t.Errorf("configured seed must be kept, got %d", cfg.Seed)
	}
}
