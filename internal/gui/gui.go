// Package gui opens a desktop window for the simulation. Two backends are
// available: raylib and ebiten. Both draw every agent as a line from its
// position along its velocity.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/san-kum/boids/internal/sim"
)

var ErrUnknownBackend = errors.New("gui: unknown backend")

type Options struct {
	Width, Height int
	Title         string
	Fullscreen    bool

	// Screensaver runs fullscreen with a hidden cursor and closes on the
	// first key, mouse button or pointer movement.
	Screensaver bool
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Title: "boids"}
}

// Monochrome palette.
var (
	ColBg      = color.RGBA{0, 0, 0, 255}
	ColFlock   = color.RGBA{255, 255, 255, 255}
	ColPattern = color.RGBA{180, 220, 255, 255}
	ColText    = color.RGBA{140, 140, 140, 255}
)

var backends = map[string]func(*sim.Simulator, Options) error{
	"raylib": RunRaylib,
	"ebiten": RunEbiten,
}

// Run opens a window with the named backend and blocks until it closes.
func Run(backend string, s *sim.Simulator, opts Options) error {
	run, ok := backends[backend]
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownBackend, backend, Backends())
	}
	return run(s, opts)
}

func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hudText(w *sim.World, fps int) string {
	sched := w.Scheduler()
	auto := ""
	if sched.Auto() {
		auto = " [auto]"
	}
	return fmt.Sprintf("boids :: %s%s  clock %.2f  %d FPS\n[LRYBMSFC] PATTERN  [N] FLOCK  [TAB] HUD  [Q] QUIT",
		w.Mode(), auto, sched.Clock(), fps)
}

func lineColor(w *sim.World) color.RGBA {
	if w.Mode().IsPattern() {
		return ColPattern
	}
	return ColFlock
}
