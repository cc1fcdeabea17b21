package mode

import (
	"math/rand"
	"time"
)

const (
	DefaultBoidsTime   = 30 * time.Second
	DefaultPatternTime = 35 * time.Second
	DefaultClockStep   = 0.01
)

type Config struct {
	Auto bool
	// BoidsTime is how long auto mode flocks freely before picking a pattern.
	BoidsTime time.Duration
	// PatternTime is how long auto mode follows a pattern.
	PatternTime time.Duration
	ClockStep   float64
}

func DefaultConfig() Config {
	return Config{
		BoidsTime:   DefaultBoidsTime,
		PatternTime: DefaultPatternTime,
		ClockStep:   DefaultClockStep,
	}
}

// Transition describes a mode change. At is only set for auto transitions.
type Transition struct {
	From, To Mode
	At       time.Time
	Auto     bool
}

// Scheduler is the mode state machine. In manual mode it reacts to Toggle
// and Reset; in auto mode those are ignored and Update switches modes on
// dwell timers. Every transition resets the pattern clock.
type Scheduler struct {
	cfg         Config
	mode        Mode
	clock       float64
	lastChange  time.Time
	lastPattern Mode
	rng         *rand.Rand
	onChange    func(Transition)
}

// NewScheduler starts in Normal. start is the reference time of the first
// auto dwell. The first auto pick never repeats Lissajous. A clock step that
// is not positive is replaced by the default so the clock only moves forward.
func NewScheduler(cfg Config, start time.Time, rng *rand.Rand) *Scheduler {
	if cfg.ClockStep <= 0 {
		cfg.ClockStep = DefaultClockStep
	}
	return &Scheduler{
		cfg:         cfg,
		mode:        Normal,
		lastChange:  start,
		lastPattern: Lissajous,
		rng:         rng,
	}
}

// OnTransition registers fn to be called after every mode change.
func (s *Scheduler) OnTransition(fn func(Transition)) { s.onChange = fn }

func (s *Scheduler) Mode() Mode            { return s.mode }
func (s *Scheduler) Clock() float64        { return s.clock }
func (s *Scheduler) Auto() bool            { return s.cfg.Auto }
func (s *Scheduler) LastChange() time.Time { return s.lastChange }
func (s *Scheduler) Config() Config        { return s.cfg }

// Toggle flips between Normal and m, or switches to m from another
// pattern. It returns false when the input was ignored.
func (s *Scheduler) Toggle(m Mode) bool {
	if s.cfg.Auto || !m.IsPattern() {
		return false
	}
	next := m
	if s.mode == m {
		next = Normal
	}
	s.transition(next, time.Time{}, false)
	return true
}

// Reset forces Normal. Ignored in auto mode.
func (s *Scheduler) Reset() bool {
	if s.cfg.Auto {
		return false
	}
	s.transition(Normal, time.Time{}, false)
	return true
}

// Update applies the auto mode dwell timers at time now and reports
// whether a transition happened.
func (s *Scheduler) Update(now time.Time) bool {
	if !s.cfg.Auto {
		return false
	}

	elapsed := now.Sub(s.lastChange)
	switch {
	case s.mode == Normal && elapsed >= s.cfg.BoidsTime:
		s.transition(s.nextPattern(), now, true)
	case s.mode != Normal && elapsed >= s.cfg.PatternTime:
		s.transition(Normal, now, true)
	default:
		return false
	}
	return true
}

// Advance moves the pattern clock one step while a pattern is active.
func (s *Scheduler) Advance() {
	if s.mode.IsPattern() {
		s.clock += s.cfg.ClockStep
	}
}

// nextPattern draws uniformly among the patterns other than the previous
// auto pick.
func (s *Scheduler) nextPattern() Mode {
	k := Mode(s.rng.Intn(NumPatterns-1)) + Lissajous
	if k >= s.lastPattern {
		k++
	}
	s.lastPattern = k
	return k
}

func (s *Scheduler) transition(to Mode, at time.Time, auto bool) {
	from := s.mode
	s.mode = to
	s.clock = 0
	if auto {
		s.lastChange = at
	}
	if s.onChange != nil {
		s.onChange(Transition{From: from, To: to, At: at, Auto: auto})
	}
}
