package metrics

import (
	"math"

	"github.com/san-kum/boids/internal/flock"
)

// Polarization is the flock order parameter |Σv| / Σ|v|: 1 when every agent
// heads the same way, near 0 for a disordered swarm.
type Polarization struct {
	name    string
	sum     float64
	samples int
}

func NewPolarization() *Polarization {
	return &Polarization{
		name: "polarization",
	}
}

func (p *Polarization) Name() string {
	return p.name
}

func (p *Polarization) Observe(agents []flock.Agent, t float64) {
	var vx, vy, speeds float64
	for _, a := range agents {
		vx += a.VX
		vy += a.VY
		speeds += a.Speed()
	}
	if speeds == 0 {
		return
	}
	p.sum += math.Sqrt(vx*vx+vy*vy) / speeds
	p.samples++
}

func (p *Polarization) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *Polarization) Reset() {
	p.sum = 0
	p.samples = 0
}
