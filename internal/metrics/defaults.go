package metrics

import "github.com/san-kum/boids/internal/sim"

// Default returns the metrics reported by headless runs.
func Default(maxSpeed float64) []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewPolarization(),
		NewSpeedLimit(maxSpeed),
	}
}
