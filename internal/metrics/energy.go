package metrics

import "github.com/san-kum/boids/internal/flock"

// Energy is the mean kinetic energy per agent (unit mass), averaged over
// the observed ticks.
type Energy struct {
	name    string
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(agents []flock.Agent, t float64) {
	if len(agents) == 0 {
		return
	}
	sum := 0.0
	for _, a := range agents {
		sum += 0.5 * (a.VX*a.VX + a.VY*a.VY)
	}
	e.total += sum / float64(len(agents))
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}
