package sim

import "time"

// Stepper converts elapsed frame time into a whole number of fixed ticks,
// so the simulation advances at the same rate whatever the frame rate.
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

func NewStepper(cfg Config) *Stepper {
	return &Stepper{
		step:     time.Second / time.Duration(cfg.TickRate),
		maxSteps: cfg.MaxCatchUp,
	}
}

func (s *Stepper) Step() time.Duration { return s.step }

// Advance adds elapsed time and returns the ticks now due. A backlog beyond
// the catch-up bound is dropped.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	s.acc += elapsed
	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc = 0
	}
	return n
}
