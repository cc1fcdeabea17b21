package flock

import (
	"math"
	"math/rand"

	"github.com/san-kum/boids/internal/curves"
)

type Flock struct {
	agents []Agent
	params Params
}

// New scatters n agents over the viewport at integer coordinates with
// velocity components drawn from [-MaxSpeed, MaxSpeed) in steps of
// MaxSpeed/50. Speeds may exceed MaxSpeed until the first Step.
func New(n int, vp Viewport, rng *rand.Rand, p Params) (*Flock, error) {
	if n < 1 {
		return nil, ErrEmptyFlock
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w, h := max(int(vp.Width), 1), max(int(vp.Height), 1)
	agents := make([]Agent, n)
	for i := range agents {
		agents[i] = Agent{
			X:     float64(rng.Intn(w)),
			Y:     float64(rng.Intn(h)),
			VX:    (float64(rng.Intn(100))/50 - 1) * p.MaxSpeed,
			VY:    (float64(rng.Intn(100))/50 - 1) * p.MaxSpeed,
			Index: i,
		}
	}
	return &Flock{agents: agents, params: p}, nil
}

// FromAgents builds a flock around existing agents. Indices are reassigned
// to match slice positions.
func FromAgents(agents []Agent, p Params) *Flock {
	a := make([]Agent, len(agents))
	copy(a, agents)
	for i := range a {
		a[i].Index = i
	}
	return &Flock{agents: a, params: p}
}

// Agents exposes the population. Callers must not modify it.
func (f *Flock) Agents() []Agent { return f.agents }
func (f *Flock) Len() int        { return len(f.agents) }
func (f *Flock) Params() Params  { return f.params }

// Step advances every agent by one tick. A nil curve selects free flocking;
// otherwise agents seek curve(index/N*PhaseSpread + clock).
func (f *Flock) Step(vp Viewport, curve curves.Curve, clock float64) error {
	if err := vp.Validate(); err != nil {
		return err
	}

	for i := range f.agents {
		if curve == nil {
			f.flock(i)
		} else {
			f.seek(i, vp, curve, clock)
		}

		a := &f.agents[i]
		a.VX, a.VY = LimitSpeed(a.VX, a.VY, f.params.MaxSpeed)
		a.X = Wrap(a.X+a.VX, vp.Width)
		a.Y = Wrap(a.Y+a.VY, vp.Height)
	}
	return nil
}

func (f *Flock) flock(i int) {
	a := &f.agents[i]
	radius := f.params.NeighborRadius

	var avgVX, avgVY, centerX, centerY, avoidX, avoidY float64
	count := 0
	for j := range f.agents {
		if j == i {
			continue
		}
		b := &f.agents[j]
		dx, dy := b.X-a.X, b.Y-a.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist <= 0 || dist >= radius {
			continue
		}
		avgVX += b.VX
		avgVY += b.VY
		centerX += b.X
		centerY += b.Y
		if dist < radius/2 {
			avoidX -= dx
			avoidY -= dy
		}
		count++
	}

	if count == 0 {
		return
	}

	n := float64(count)
	avgVX, avgVY = avgVX/n, avgVY/n
	centerX, centerY = centerX/n, centerY/n

	a.VX += (avgVX - a.VX) * f.params.Alignment
	a.VY += (avgVY - a.VY) * f.params.Alignment
	a.VX += (centerX - a.X) * f.params.Cohesion
	a.VY += (centerY - a.Y) * f.params.Cohesion
	a.VX += avoidX * f.params.Separation
	a.VY += avoidY * f.params.Separation
}

func (f *Flock) seek(i int, vp Viewport, curve curves.Curve, clock float64) {
	a := &f.agents[i]
	t := float64(a.Index)/float64(len(f.agents))*f.params.PhaseSpread + clock
	tx, ty := curve(t, vp.Width, vp.Height)

	dx, dy := tx-a.X, ty-a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		a.VX += dx / dist * f.params.PatternForce
		a.VY += dy / dist * f.params.PatternForce
	}

	f.separate(i, f.params.PatternSeparation)
}

// separate pushes agent i away from neighbors closer than half the
// neighbor radius.
func (f *Flock) separate(i int, weight float64) {
	a := &f.agents[i]
	half := f.params.NeighborRadius / 2

	var avoidX, avoidY float64
	count := 0
	for j := range f.agents {
		if j == i {
			continue
		}
		dx, dy := f.agents[j].X-a.X, f.agents[j].Y-a.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0 && dist < half {
			avoidX -= dx
			avoidY -= dy
			count++
		}
	}

	if count > 0 {
		a.VX += avoidX * weight
		a.VY += avoidY * weight
	}
}

// LimitSpeed scales (vx, vy) down to maxSpeed, preserving direction. Slower
// vectors are returned unchanged.
func LimitSpeed(vx, vy, maxSpeed float64) (float64, float64) {
	speed := math.Sqrt(vx*vx + vy*vy)
	if speed > maxSpeed {
		return vx / speed * maxSpeed, vy / speed * maxSpeed
	}
	return vx, vy
}

// Wrap folds v into [0, size). One correction covers a single tick of
// motion; positions left further out by a viewport shrink fall back to a
// modulo.
func Wrap(v, size float64) float64 {
	if v < 0 {
		v += size
	}
	if v >= size {
		v -= size
	}
	if v < 0 || v >= size {
		v = math.Mod(v, size)
		if v < 0 {
			v += size
		}
		if v >= size {
			v = 0
		}
	}
	return v
}
