package metrics

import "github.com/san-kum/boids/internal/flock"

// speedTolerance absorbs rounding in the speed clamp.
const speedTolerance = 1e-9

// SpeedLimit is the fraction of observed ticks in which no agent exceeded
// the speed limit.
type SpeedLimit struct {
	name       string
	limit      float64
	violations int
	samples    int
}

func NewSpeedLimit(limit float64) *SpeedLimit {
	return &SpeedLimit{
		name:  "speed_limit",
		limit: limit,
	}
}

func (s *SpeedLimit) Name() string {
	return s.name
}

func (s *SpeedLimit) Observe(agents []flock.Agent, t float64) {
	s.samples++
	for _, a := range agents {
		if a.Speed() > s.limit+speedTolerance {
			s.violations++
			break
		}
	}
}

func (s *SpeedLimit) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *SpeedLimit) Reset() {
	s.violations = 0
	s.samples = 0
}
