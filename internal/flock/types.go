package flock

import (
	"fmt"
	"math"
)

const (
	DefaultMaxSpeed          = 4.0
	DefaultNeighborRadius    = 50.0
	DefaultAlignment         = 0.05
	DefaultCohesion          = 0.01
	DefaultSeparation        = 0.15
	DefaultPatternForce      = 0.2
	DefaultPatternSeparation = 0.001
	DefaultPhaseSpread       = 10.0
)

type Agent struct {
	X, Y   float64
	VX, VY float64
	Index  int
}

func (a Agent) Speed() float64 {
	return math.Sqrt(a.VX*a.VX + a.VY*a.VY)
}

// Heading returns the end point of the agent's velocity segment scaled by
// length, the way surfaces draw an agent.
func (a Agent) Heading(length float64) (float64, float64) {
	return a.X + a.VX*length, a.Y + a.VY*length
}

// Params holds the weights of the update rules.
type Params struct {
	MaxSpeed          float64
	NeighborRadius    float64
	Alignment         float64
	Cohesion          float64
	Separation        float64
	PatternForce      float64
	PatternSeparation float64
	// PhaseSpread is how much curve parameter the whole population spans.
	PhaseSpread float64
}

func DefaultParams() Params {
	return Params{
		MaxSpeed:          DefaultMaxSpeed,
		NeighborRadius:    DefaultNeighborRadius,
		Alignment:         DefaultAlignment,
		Cohesion:          DefaultCohesion,
		Separation:        DefaultSeparation,
		PatternForce:      DefaultPatternForce,
		PatternSeparation: DefaultPatternSeparation,
		PhaseSpread:       DefaultPhaseSpread,
	}
}

func (p Params) Validate() error {
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive, got %f", p.MaxSpeed)
	}
	if p.NeighborRadius <= 0 {
		return fmt.Errorf("neighbor radius must be positive, got %f", p.NeighborRadius)
	}
	return nil
}

type Viewport struct {
	Width, Height float64
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %.0fx%.0f", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}
