package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/boids/internal/config"
	"github.com/san-kum/boids/internal/curves"
	"github.com/san-kum/boids/internal/export"
	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/gui"
	"github.com/san-kum/boids/internal/metrics"
	"github.com/san-kum/boids/internal/mode"
	"github.com/san-kum/boids/internal/sim"
	"github.com/san-kum/boids/internal/viz"
	"github.com/spf13/cobra"
)

func newSimulator(cfg *config.Config, start time.Time) (*sim.Simulator, error) {
	world, err := sim.NewWorld(cfg.WorldConfig(), start, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	simulator, err := sim.New(world, cfg.SimConfig())
	if err != nil {
		return nil, err
	}
	simulator.AddObserver(sim.NewLogObserver(nil))
	return simulator, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if screensaver {
		cfg.Schedule.Auto = true
	}
	s, err := newSimulator(cfg, time.Now())
	if err != nil {
		return err
	}

	opts := gui.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.Fullscreen = fullscreen
	opts.Screensaver = screensaver
	return gui.Run(backend, s, opts)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "boids")
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	s, err := newSimulator(cfg, time.Now())
	if err != nil {
		return err
	}

	m := viz.NewModel(s, theme)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return m.Err()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	s, err := newSimulator(cfg, start)
	if err != nil {
		return err
	}
	ms := metrics.Default(cfg.Flock.MaxSpeed)
	for _, m := range ms {
		s.AddMetric(m)
	}
	if realtime {
		return runRealtime(cmd, cfg, s, ms)
	}

	fmt.Printf("simulating %d boids for %d ticks (auto: %v)\n\n", cfg.Boids, ticks, cfg.Schedule.Auto)

	wall := time.Now()
	res, err := s.RunHeadless(cmd.Context(), start, ticks)
	if err != nil {
		return err
	}
	elapsed := time.Since(wall)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%d\n", res.Ticks)
	fmt.Fprintf(w, "simulated\t%v\n", res.Duration)
	fmt.Fprintf(w, "wall time\t%v\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "final mode\t%s\n", s.World().Mode())
	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, res.Metrics[name])
	}
	w.Flush()

	if len(res.Transitions) > 0 {
		fmt.Println("\ntransitions:")
		for _, t := range res.Transitions {
			fmt.Printf("  %8v  %s -> %s\n", t.At.Sub(start).Round(time.Millisecond), t.From, t.To)
		}
	}

	fmt.Println("\ntime per mode:")
	for _, line := range modeShares(res.Modes) {
		fmt.Println("  " + line)
	}

	if svgPath != "" {
		w := s.World()
		if err := os.WriteFile(svgPath, []byte(export.FlockToSVG(w.Agents(), w.Viewport())), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}

	if plot && len(res.MeanSpeeds) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.MeanSpeeds,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("mean speed per tick")))
	}
	return nil
}

// runRealtime drives the simulator through Run with a headless surface, so
// ticks are paced by the wall clock like a window would pace them.
func runRealtime(cmd *cobra.Command, cfg *config.Config, s *sim.Simulator, ms []sim.Metric) error {
	fmt.Printf("simulating %d boids for %d ticks in real time (auto: %v)\n\n", cfg.Boids, ticks, cfg.Schedule.Auto)

	surface := &sim.HeadlessSurface{Width: cfg.Width, Height: cfg.Height, World: s.World(), Ticks: ticks}
	wall := time.Now()
	if err := s.Run(cmd.Context(), surface, sim.SystemClock{}); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%d\n", s.World().Ticks())
	fmt.Fprintf(w, "frames\t%d\n", surface.Frames)
	fmt.Fprintf(w, "wall time\t%v\n", time.Since(wall).Round(time.Millisecond))
	fmt.Fprintf(w, "final mode\t%s\n", s.World().Mode())
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), m.Value())
	}
	return w.Flush()
}

func modeShares(modes []mode.Mode) []string {
	counts := make(map[mode.Mode]int)
	for _, m := range modes {
		counts[m]++
	}
	lines := make([]string, 0, len(counts))
	for m := mode.Normal; m <= mode.Cardioid; m++ {
		if counts[m] == 0 {
			continue
		}
		share := float64(counts[m]) / float64(len(modes))
		lines = append(lines, fmt.Sprintf("%-14s %6d ticks %5.1f%%", m, counts[m], share*100))
	}
	return lines
}

func benchFlock(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []int{100, 250, 500, 1000}
	fmt.Printf("benchmarking %d runs x %d ticks per size\n\n", runs, ticks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOIDS\tRUNS\tTICKS\tTIME\tTICKS/SEC\tPOLARIZATION")

	for _, n := range sizes {
		wc := cfg.WorldConfig()
		wc.Boids = n
		maxSpeed := cfg.Flock.MaxSpeed
		ens := sim.NewEnsemble(wc, cfg.SimConfig(), runs, cfg.Seed, func() []sim.Metric {
			return []sim.Metric{metrics.NewPolarization(), metrics.NewSpeedLimit(maxSpeed)}
		})

		start := time.Now()
		results, err := ens.Run(cmd.Context(), start, ticks)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		total, pol := 0, 0.0
		for _, r := range results {
			total += r.Ticks
			pol += r.Metrics["polarization"]
		}
		rate := float64(total) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\t%.3f\n",
			n, runs, total, elapsed.Round(time.Millisecond), rate, pol/float64(len(results)))
	}
	return w.Flush()
}

func drawCurve(cmd *cobra.Command, args []string) error {
	patterns := mode.Patterns()
	if len(args) == 1 {
		if _, err := curves.Lookup(args[0]); err != nil {
			return err
		}
		m, err := mode.ParseMode(args[0])
		if err != nil {
			return err
		}
		patterns = []mode.Mode{m}
	} else if svgPath != "" {
		return errors.New("--svg needs a curve name")
	}

	for _, m := range patterns {
		c := m.Curve()
		span, samples := viz.SpanFor(m.String())
		fmt.Printf("%s  [%s]\n", m, sim.KeyFor(m))
		fmt.Println(viz.PlotCurve(c, cellsWide, cellsHigh, samples, span).String())
		fmt.Println()

		if svgPath != "" {
			vp := flock.Viewport{Width: config.DefaultWidth, Height: config.DefaultHeight}
			if err := os.WriteFile(svgPath, []byte(export.CurveToSVG(c, vp, span, samples)), 0644); err != nil {
				return fmt.Errorf("failed to write svg: %w", err)
			}
			fmt.Printf("wrote %s\n", svgPath)
		}
	}
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
