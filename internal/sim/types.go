package sim

import (
	"time"

	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/mode"
)

// HeadingLength is how many ticks of velocity a surface draws per agent.
const HeadingLength = 4.0

type Event interface{ isEvent() }

// ToggleEvent requests the pattern mode to be flipped on or off.
type ToggleEvent struct{ Mode mode.Mode }

// ResetEvent forces Normal mode.
type ResetEvent struct{}

type ResizeEvent struct{ Width, Height int }

// QuitEvent ends Run.
type QuitEvent struct{}

func (ToggleEvent) isEvent() {}
func (ResetEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (QuitEvent) isEvent()   {}

// Surface is the display and input layer the simulation is shown on.
type Surface interface {
	ViewportSize() (width, height int)
	PollEvents() []Event
	Submit(agents []flock.Agent) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time          { return c.now }
func (c *ManualClock) Set(t time.Time)         { c.now = t }
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type Metric interface {
	Name() string
	Observe(agents []flock.Agent, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(w *World)
}

// TransitionObserver is implemented by observers that also want mode
// changes.
type TransitionObserver interface {
	OnTransition(t mode.Transition)
}

type Config struct {
	// TickRate is the number of simulation ticks per second of wall time.
	TickRate int

	// MaxCatchUp bounds the ticks run in a single frame after a stall.
	MaxCatchUp int
}

func DefaultConfig() Config {
	return Config{
		TickRate:   60,
		MaxCatchUp: 5,
	}
}

type Result struct {
	Ticks       int
	Duration    time.Duration
	Modes       []mode.Mode
	MeanSpeeds  []float64
	Transitions []mode.Transition
	Metrics     map[string]float64
}
