package sim_test

import (
	"context"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/mode"
	"github.com/san-kum/boids/internal/sim"
)

type fakeSurface struct {
	width, height int
	events        [][]sim.Event
	submitted     int
	last          []flock.Agent
	onSubmit      func()
}

func (f *fakeSurface) ViewportSize() (int, int) { return f.width, f.height }

func (f *fakeSurface) PollEvents() []sim.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func (f *fakeSurface) Submit(agents []flock.Agent) error {
	f.submitted++
	f.last = agents
	if f.onSubmit != nil {
		f.onSubmit()
	}
	return nil
}

type countingMetric struct {
	samples int
}

func (m *countingMetric) Name() string                       { return "count" }
func (m *countingMetric) Observe(_ []flock.Agent, _ float64) { m.samples++ }
func (m *countingMetric) Value() float64                     { return float64(m.samples) }
func (m *countingMetric) Reset()                             { m.samples = 0 }

func expectInvariants(agents []flock.Agent, vp flock.Viewport, maxSpeed float64) {
	for _, a := range agents {
		Expect(a.X).To(BeNumerically(">=", 0))
		Expect(a.X).To(BeNumerically("<", vp.Width))
		Expect(a.Y).To(BeNumerically(">=", 0))
		Expect(a.Y).To(BeNumerically("<", vp.Height))
		Expect(a.Speed()).To(BeNumerically("<=", maxSpeed+1e-9))
	}
}

var _ = Describe("Simulator", func() {
	var (
		start time.Time
		cfg   sim.WorldConfig
	)

	newSim := func(seed int64) *sim.Simulator {
		w, err := sim.NewWorld(cfg, start, rand.New(rand.NewSource(seed)))
		Expect(err).NotTo(HaveOccurred())
		s, err := sim.New(w, sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		start = time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC)
		cfg = sim.DefaultWorldConfig()
	})

	It("rejects an invalid config", func() {
		w, err := sim.NewWorld(cfg, start, rand.New(rand.NewSource(1)))
		Expect(err).NotTo(HaveOccurred())

		_, err = sim.New(w, sim.Config{TickRate: 0, MaxCatchUp: 1})
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})

	It("keeps 500 agents in bounds and under max speed for 100 normal ticks", func() {
		s := newSim(42)
		for i := 0; i < 100; i++ {
			Expect(s.Tick(start)).To(Succeed())
			expectInvariants(s.World().Agents(), cfg.Viewport, flock.DefaultMaxSpeed)
		}
		Expect(s.World().Mode()).To(Equal(mode.Normal))
		Expect(s.World().Ticks()).To(Equal(100))
	})

	It("keeps the invariants while following every pattern", func() {
		cfg.Boids = 150
		s := newSim(5)
		for _, p := range mode.Patterns() {
			s.World().Apply([]sim.Event{sim.ToggleEvent{Mode: p}})
			for i := 0; i < 30; i++ {
				Expect(s.Tick(start)).To(Succeed())
			}
			Expect(s.World().Mode()).To(Equal(p))
			Expect(s.World().Scheduler().Clock()).To(BeNumerically("~", 0.30, 1e-9))
			expectInvariants(s.World().Agents(), cfg.Viewport, flock.DefaultMaxSpeed)
		}
	})

	It("runs auto mode transitions on the simulated clock", func() {
		cfg.Boids = 20
		cfg.Mode.Auto = true
		s := newSim(3)

		result, err := s.RunHeadless(context.Background(), start, 70*60)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Ticks).To(Equal(4200))
		Expect(result.Duration).To(Equal(70 * time.Second))
		Expect(result.Transitions).To(HaveLen(2))
		Expect(result.Transitions[0].At.Sub(start)).To(Equal(30 * time.Second))
		Expect(result.Transitions[0].To.IsPattern()).To(BeTrue())
		Expect(result.Transitions[1].At.Sub(start)).To(Equal(65 * time.Second))
		Expect(result.Transitions[1].To).To(Equal(mode.Normal))

		Expect(result.Modes[30*60-1]).To(Equal(mode.Normal))
		Expect(result.Modes[30*60].IsPattern()).To(BeTrue())
		Expect(result.Modes[65*60].IsPattern()).To(BeFalse())
		Expect(result.MeanSpeeds).To(HaveLen(4200))
	})

	It("feeds metrics and observers every tick", func() {
		cfg.Boids = 10
		s := newSim(1)
		m := &countingMetric{}
		s.AddMetric(m)

		result, err := s.RunHeadless(context.Background(), start, 25)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKeyWithValue("count", 25.0))
	})

	It("stops a headless run when the context is canceled", func() {
		cfg.Boids = 10
		s := newSim(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := s.RunHeadless(ctx, start, 100)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.Ticks).To(BeZero())
	})

	Describe("Frame", func() {
		var (
			s       *sim.Simulator
			surface *fakeSurface
		)

		BeforeEach(func() {
			cfg.Boids = 50
			s = newSim(11)
			surface = &fakeSurface{width: 640, height: 480}
		})

		It("reads the viewport, applies input and submits the agents", func() {
			surface.events = [][]sim.Event{{sim.ToggleEvent{Mode: mode.Rose}}}
			Expect(s.Frame(surface, start, 2)).To(Succeed())

			Expect(s.World().Viewport()).To(Equal(flock.Viewport{Width: 640, Height: 480}))
			Expect(s.World().Mode()).To(Equal(mode.Rose))
			Expect(s.World().Ticks()).To(Equal(2))
			Expect(surface.submitted).To(Equal(1))
			Expect(surface.last).To(HaveLen(50))
			expectInvariants(surface.last, s.World().Viewport(), flock.DefaultMaxSpeed)
		})

		It("uses the new size on the very next tick after a resize", func() {
			Expect(s.Frame(surface, start, 1)).To(Succeed())
			surface.width, surface.height = 200, 100
			Expect(s.Frame(surface, start, 1)).To(Succeed())
			expectInvariants(surface.last, flock.Viewport{Width: 200, Height: 100}, flock.DefaultMaxSpeed)
		})

		It("submits without ticking when no tick is due", func() {
			Expect(s.Frame(surface, start, 0)).To(Succeed())
			Expect(s.World().Ticks()).To(BeZero())
			Expect(surface.submitted).To(Equal(1))
		})

		It("fails on a zero viewport", func() {
			surface.width = 0
			err := s.Frame(surface, start, 1)
			Expect(err).To(MatchError(flock.ErrInvalidViewport))

			var tickErr *sim.TickError
			Expect(err).To(BeAssignableToTypeOf(tickErr))
		})

		It("returns ErrQuit on a quit event", func() {
			surface.events = [][]sim.Event{{sim.QuitEvent{}}}
			Expect(s.Frame(surface, start, 1)).To(MatchError(sim.ErrQuit))
			Expect(surface.submitted).To(BeZero())
		})
	})

	It("ignores toggles in auto mode", func() {
		cfg.Boids = 10
		cfg.Mode.Auto = true
		s := newSim(2)

		s.World().Apply([]sim.Event{sim.ToggleEvent{Mode: mode.Cardioid}, sim.ResetEvent{}})
		Expect(s.World().Mode()).To(Equal(mode.Normal))
	})

	It("runs against a surface until the surface quits", func() {
		cfg.Boids = 10
		s := newSim(4)
		surface := &fakeSurface{width: 320, height: 240}
		surface.onSubmit = func() {
			if surface.submitted == 3 {
				surface.events = [][]sim.Event{{sim.QuitEvent{}}}
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(s.Run(ctx, surface, sim.SystemClock{})).To(Succeed())
		Expect(surface.submitted).To(Equal(3))
	})

	It("paces a world in real time against a headless surface", func() {
		cfg.Boids = 10
		s := newSim(5)
		surface := &sim.HeadlessSurface{Width: 320, Height: 240, World: s.World(), Ticks: 6}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(s.Run(ctx, surface, sim.SystemClock{})).To(Succeed())
		Expect(s.World().Ticks()).To(BeNumerically(">=", 6))
		Expect(surface.Frames).To(BeNumerically(">", 0))
		Expect(s.World().Viewport()).To(Equal(flock.Viewport{Width: 320, Height: 240}))
	})

	It("runs an ensemble of independent worlds", func() {
		cfg.Boids = 30
		e := sim.NewEnsemble(cfg, sim.DefaultConfig(), 4, 100, func() []sim.Metric {
			return []sim.Metric{&countingMetric{}}
		})

		results, err := e.Run(context.Background(), start, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for _, r := range results {
			Expect(r.Ticks).To(Equal(50))
			Expect(r.Metrics["count"]).To(Equal(50.0))
		}
		Expect(results[0].MeanSpeeds).NotTo(Equal(results[1].MeanSpeeds))
	})
})
