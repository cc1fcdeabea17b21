package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/mode"
)

type WorldConfig struct {
	Boids    int
	Viewport flock.Viewport
	Flock    flock.Params
	Mode     mode.Config
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Boids:    500,
		Viewport: flock.Viewport{Width: 800, Height: 600},
		Flock:    flock.DefaultParams(),
		Mode:     mode.DefaultConfig(),
	}
}

// World is the whole simulation state: the flock, the mode scheduler and
// the current viewport. It has a single writer.
type World struct {
	flock *flock.Flock
	sched *mode.Scheduler
	vp    flock.Viewport
	ticks int
}

// NewWorld scatters the flock over cfg.Viewport. rng seeds both the initial
// placement and the auto mode pattern picks; start is the reference time
// of the first auto dwell.
func NewWorld(cfg WorldConfig, start time.Time, rng *rand.Rand) (*World, error) {
	f, err := flock.New(cfg.Boids, cfg.Viewport, rng, cfg.Flock)
	if err != nil {
		return nil, err
	}
	return &World{
		flock: f,
		sched: mode.NewScheduler(cfg.Mode, start, rng),
		vp:    cfg.Viewport,
	}, nil
}

func (w *World) Agents() []flock.Agent      { return w.flock.Agents() }
func (w *World) Flock() *flock.Flock        { return w.flock }
func (w *World) Scheduler() *mode.Scheduler { return w.sched }
func (w *World) Mode() mode.Mode            { return w.sched.Mode() }
func (w *World) Viewport() flock.Viewport   { return w.vp }
func (w *World) Ticks() int                 { return w.ticks }

func (w *World) Resize(width, height float64) {
	w.vp = flock.Viewport{Width: width, Height: height}
}

// Apply consumes input events. It reports whether a QuitEvent was seen.
// Toggles and resets are dropped in auto mode by the scheduler.
func (w *World) Apply(events []Event) (quit bool) {
	for _, ev := range events {
		switch e := ev.(type) {
		case ToggleEvent:
			w.sched.Toggle(e.Mode)
		case ResetEvent:
			w.sched.Reset()
		case ResizeEvent:
			w.Resize(float64(e.Width), float64(e.Height))
		case QuitEvent:
			quit = true
		}
	}
	return quit
}

// Tick runs one fixed step: auto transitions first, then the flock update
// for the resulting mode, then the pattern clock.
func (w *World) Tick(now time.Time) error {
	if err := w.vp.Validate(); err != nil {
		return &TickError{Tick: w.ticks, Err: err}
	}

	w.sched.Update(now)
	if err := w.flock.Step(w.vp, w.sched.Mode().Curve(), w.sched.Clock()); err != nil {
		return &TickError{Tick: w.ticks, Err: err}
	}
	w.sched.Advance()
	w.ticks++
	return nil
}
