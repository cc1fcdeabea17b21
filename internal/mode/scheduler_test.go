package mode_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boids/internal/mode"
)

var _ = Describe("Scheduler", func() {
	var (
		start time.Time
		s     *mode.Scheduler
	)

	BeforeEach(func() {
		start = time.Date(2025, 5, 27, 12, 0, 0, 0, time.UTC)
	})

	Context("manual mode", func() {
		BeforeEach(func() {
			s = mode.NewScheduler(mode.DefaultConfig(), start, rand.New(rand.NewSource(1)))
		})

		It("starts in Normal with a zero clock", func() {
			Expect(s.Mode()).To(Equal(mode.Normal))
			Expect(s.Clock()).To(BeZero())
			Expect(s.Auto()).To(BeFalse())
		})

		It("returns to Normal when the same pattern is toggled twice", func() {
			for _, p := range mode.Patterns() {
				Expect(s.Toggle(p)).To(BeTrue())
				Expect(s.Mode()).To(Equal(p))
				Expect(s.Clock()).To(BeZero())

				s.Advance()
				Expect(s.Toggle(p)).To(BeTrue())
				Expect(s.Mode()).To(Equal(mode.Normal))
				Expect(s.Clock()).To(BeZero())
			}
		})

		It("switches directly between patterns and resets the clock", func() {
			s.Toggle(mode.Rose)
			s.Advance()
			s.Advance()
			Expect(s.Clock()).To(BeNumerically("~", 0.02, 1e-12))

			s.Toggle(mode.Cardioid)
			Expect(s.Mode()).To(Equal(mode.Cardioid))
			Expect(s.Clock()).To(BeZero())
		})

		It("never runs the clock backwards", func() {
			cfg := mode.DefaultConfig()
			cfg.ClockStep = -0.01
			s = mode.NewScheduler(cfg, start, rand.New(rand.NewSource(1)))

			s.Toggle(mode.Rose)
			s.Advance()
			s.Advance()
			Expect(s.Config().ClockStep).To(Equal(mode.DefaultClockStep))
			Expect(s.Clock()).To(BeNumerically("~", 0.02, 1e-12))
		})

		It("forces Normal on reset", func() {
			s.Toggle(mode.Butterfly)
			s.Advance()
			Expect(s.Reset()).To(BeTrue())
			Expect(s.Mode()).To(Equal(mode.Normal))
			Expect(s.Clock()).To(BeZero())
		})

		It("only advances the clock in pattern modes", func() {
			s.Advance()
			Expect(s.Clock()).To(BeZero())

			s.Toggle(mode.Spirograph)
			for i := 0; i < 100; i++ {
				s.Advance()
			}
			Expect(s.Clock()).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("ignores Normal as a toggle target", func() {
			Expect(s.Toggle(mode.Normal)).To(BeFalse())
			Expect(s.Mode()).To(Equal(mode.Normal))
		})

		It("never transitions on time", func() {
			Expect(s.Update(start.Add(time.Hour))).To(BeFalse())
			Expect(s.Mode()).To(Equal(mode.Normal))
		})

		It("reports transitions to the registered callback", func() {
			var seen []mode.Transition
			s.OnTransition(func(t mode.Transition) { seen = append(seen, t) })

			s.Toggle(mode.Rose)
			s.Toggle(mode.Rose)
			Expect(seen).To(HaveLen(2))
			Expect(seen[0].From).To(Equal(mode.Normal))
			Expect(seen[0].To).To(Equal(mode.Rose))
			Expect(seen[1].To).To(Equal(mode.Normal))
			Expect(seen[1].Auto).To(BeFalse())
		})
	})

	Context("auto mode", func() {
		BeforeEach(func() {
			cfg := mode.DefaultConfig()
			cfg.Auto = true
			s = mode.NewScheduler(cfg, start, rand.New(rand.NewSource(42)))
		})

		It("ignores manual input entirely", func() {
			Expect(s.Toggle(mode.Rose)).To(BeFalse())
			Expect(s.Mode()).To(Equal(mode.Normal))

			s.Update(start.Add(30 * time.Second))
			current := s.Mode()
			Expect(current.IsPattern()).To(BeTrue())
			Expect(s.Reset()).To(BeFalse())
			Expect(s.Mode()).To(Equal(current))
		})

		It("switches at exactly the dwell boundaries", func() {
			var at []time.Duration
			s.OnTransition(func(t mode.Transition) {
				Expect(t.Auto).To(BeTrue())
				at = append(at, t.At.Sub(start))
			})

			for now := start; now.Before(start.Add(70 * time.Second)); now = now.Add(250 * time.Millisecond) {
				s.Update(now)
				if now.Sub(start) == 30*time.Second {
					Expect(s.Mode().IsPattern()).To(BeTrue())
				}
				if now.Sub(start) == 64*time.Second {
					Expect(s.Mode().IsPattern()).To(BeTrue())
				}
			}

			Expect(at).To(Equal([]time.Duration{30 * time.Second, 65 * time.Second}))
			Expect(s.Mode()).To(Equal(mode.Normal))
		})

		It("stays in Normal before the dwell elapses", func() {
			Expect(s.Update(start.Add(29*time.Second + 999*time.Millisecond))).To(BeFalse())
			Expect(s.Mode()).To(Equal(mode.Normal))
		})

		It("resets the clock and records the timestamp on every transition", func() {
			at := start.Add(30 * time.Second)
			s.Update(at)
			s.Advance()
			s.Advance()
			Expect(s.Clock()).To(BeNumerically(">", 0))
			Expect(s.LastChange()).To(Equal(at))

			back := at.Add(35 * time.Second)
			s.Update(back)
			Expect(s.Clock()).To(BeZero())
			Expect(s.LastChange()).To(Equal(back))
		})

		It("never picks the same pattern twice in a row", func() {
			previous := mode.Lissajous
			counts := map[mode.Mode]int{}
			now := start

			for i := 0; i < 400; i++ {
				now = now.Add(30 * time.Second)
				Expect(s.Update(now)).To(BeTrue())
				picked := s.Mode()
				Expect(picked.IsPattern()).To(BeTrue())
				Expect(picked).NotTo(Equal(previous))
				counts[picked]++
				previous = picked

				now = now.Add(35 * time.Second)
				Expect(s.Update(now)).To(BeTrue())
				Expect(s.Mode()).To(Equal(mode.Normal))
			}

			Expect(counts).To(HaveLen(mode.NumPatterns))
		})
	})
})
