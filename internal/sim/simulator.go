package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/boids/internal/mode"
)

type Simulator struct {
	world     *World
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func New(world *World, cfg Config) (*Simulator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	s := &Simulator{
		world:     world,
		cfg:       cfg,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	world.sched.OnTransition(s.notifyTransition)
	return s, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) World() *World          { return s.world }
func (s *Simulator) Config() Config         { return s.cfg }

func validateConfig(cfg Config) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, cfg.TickRate)
	}
	if cfg.MaxCatchUp <= 0 {
		return fmt.Errorf("%w: max catch-up must be positive, got %d", ErrInvalidConfig, cfg.MaxCatchUp)
	}
	return nil
}

func (s *Simulator) notifyTransition(t mode.Transition) {
	for _, o := range s.observers {
		if to, ok := o.(TransitionObserver); ok {
			to.OnTransition(t)
		}
	}
}

// Tick advances the world once and feeds metrics and observers.
func (s *Simulator) Tick(now time.Time) error {
	if err := s.world.Tick(now); err != nil {
		return err
	}
	t := float64(s.world.ticks) / float64(s.cfg.TickRate)
	for _, m := range s.metrics {
		m.Observe(s.world.Agents(), t)
	}
	for _, o := range s.observers {
		o.OnTick(s.world)
	}
	return nil
}

// Frame is one presentation frame: read the viewport and input, run the
// ticks that are due and hand the agents to the surface.
func (s *Simulator) Frame(surface Surface, now time.Time, ticks int) error {
	w, h := surface.ViewportSize()
	s.world.Resize(float64(w), float64(h))
	if s.world.Apply(surface.PollEvents()) {
		return ErrQuit
	}

	for i := 0; i < ticks; i++ {
		if err := s.Tick(now); err != nil {
			return err
		}
	}
	return surface.Submit(s.world.Agents())
}

// Run drives surface in real time until ctx is done or the surface quits.
func (s *Simulator) Run(ctx context.Context, surface Surface, clock Clock) error {
	stepper := NewStepper(s.cfg)
	ticker := time.NewTicker(stepper.Step())
	defer ticker.Stop()

	last := clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		now := clock.Now()
		n := stepper.Advance(now.Sub(last))
		last = now

		if err := s.Frame(surface, now, n); err != nil {
			if err == ErrQuit {
				return nil
			}
			return err
		}
	}
}

// SimTime is the simulated time of the given tick at the configured rate.
func (s *Simulator) SimTime(tick int) time.Duration {
	return time.Duration(tick) * time.Second / time.Duration(s.cfg.TickRate)
}

// RunHeadless runs ticks without a surface on a simulated clock starting at
// start, so auto mode dwell times are measured in ticks.
func (s *Simulator) RunHeadless(ctx context.Context, start time.Time, ticks int) (*Result, error) {
	result := &Result{
		Modes:       make([]mode.Mode, 0, ticks),
		MeanSpeeds:  make([]float64, 0, ticks),
		Transitions: make([]mode.Transition, 0),
		Metrics:     make(map[string]float64),
	}

	rec := &transitionRecorder{}
	s.AddObserver(rec)
	defer s.removeObserver(rec)

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Tick(start.Add(s.SimTime(i))); err != nil {
			return result, err
		}
		result.Ticks++
		result.Modes = append(result.Modes, s.world.Mode())
		result.MeanSpeeds = append(result.MeanSpeeds, s.world.flock.MeanSpeed())
	}

	result.Duration = s.SimTime(result.Ticks)
	result.Transitions = rec.seen
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) removeObserver(o Observer) {
	for i, obs := range s.observers {
		if obs == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

type transitionRecorder struct {
	seen []mode.Transition
}

func (r *transitionRecorder) OnTick(*World)                  {}
func (r *transitionRecorder) OnTransition(t mode.Transition) { r.seen = append(r.seen, t) }
