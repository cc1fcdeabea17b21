package config

import "sort"

var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"screensaver": func() *Config {
		cfg := DefaultConfig()
		cfg.Schedule.Auto = true
		return cfg
	},
	"swarm": func() *Config {
		cfg := DefaultConfig()
		cfg.Boids = 1000
		cfg.Flock.NeighborRadius = 35
		return cfg
	},
	"calm": func() *Config {
		cfg := DefaultConfig()
		cfg.Boids = 250
		cfg.Flock.MaxSpeed = 2.0
		cfg.Flock.PatternForce = 0.1
		return cfg
	},
	"quick": func() *Config {
		cfg := DefaultConfig()
		cfg.Schedule.Auto = true
		cfg.Schedule.BoidsTime = 8
		cfg.Schedule.PatternTime = 12
		return cfg
	},
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
