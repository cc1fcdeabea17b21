package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/boids/internal/config"
	"github.com/san-kum/boids/internal/gui"
	"github.com/san-kum/boids/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Shared by every command.
	configFile string
	preset     string
	auto       bool
	seed       int64
	numBoids   int
	tickRate   int

	// Window
	backend     string
	fullscreen  bool
	screensaver bool

	// Terminal
	logFile string
	theme   string

	// Headless
	ticks     int
	runs      int
	plot      bool
	realtime  bool
	cellsWide int
	cellsHigh int
	svgPath   string
)

// main registers the commands and opens a window when no subcommand is
// given. It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "boids",
		Short:        "flocking simulation with pattern overlays",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&auto, "auto", false, "cycle patterns on a timer")
	pf.Int64Var(&seed, "seed", 0, "random seed (default: picked from the clock; 0 is a valid seed)")
	pf.IntVar(&numBoids, "boids", config.DefaultBoids, "number of boids")
	pf.IntVar(&tickRate, "tps", config.DefaultTickRate, "simulation ticks per second")

	rootCmd.Flags().StringVar(&backend, "backend", "raylib", fmt.Sprintf("window backend %v", gui.Backends()))
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")
	rootCmd.Flags().BoolVar(&screensaver, "screensaver", false, "fullscreen auto mode that exits on any input")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log", "", "write diagnostics to this file")
	tuiCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 3600, "ticks to simulate")
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot mean speed")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace the run at the tick rate instead of as fast as possible")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame to this svg file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark flock sizes",
		Args:  cobra.NoArgs,
		RunE:  benchFlock,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 300, "ticks per run")
	benchCmd.Flags().IntVar(&runs, "runs", 4, "concurrent runs per size")

	curveCmd := &cobra.Command{
		Use:   "curve [name]",
		Short: "draw a pattern curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawCurve,
	}
	curveCmd.Flags().IntVar(&cellsWide, "width", 60, "canvas width in cells")
	curveCmd.Flags().IntVar(&cellsHigh, "height", 20, "canvas height in cells")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "write the curve to this svg file (needs a name)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	rootCmd.AddCommand(tuiCmd, runCmd, benchCmd, curveCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the preset, then the config file, then any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("auto") {
		cfg.Schedule.Auto = auto
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("boids") {
		cfg.Boids = numBoids
	}
	if flags.Changed("tps") {
		cfg.TickRate = tickRate
	}
	cfg.ResolveSeed(flags.Changed("seed"), time.Now())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
