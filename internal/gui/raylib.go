package gui

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/sim"
)

type raylibApp struct {
	sim         *sim.Simulator
	stepper     *sim.Stepper
	showHUD     bool
	screensaver bool
	activity    sim.ActivityWatch
}

// RunRaylib drives the simulator from the raylib frame loop, converting
// frame time into fixed ticks.
func RunRaylib(s *sim.Simulator, opts Options) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	if opts.Fullscreen || opts.Screensaver {
		rl.ToggleFullscreen()
	}
	if opts.Screensaver {
		rl.HideCursor()
	}

	a := &raylibApp{
		sim:         s,
		stepper:     sim.NewStepper(s.Config()),
		showHUD:     !opts.Screensaver,
		screensaver: opts.Screensaver,
	}
	return a.loop()
}

func (a *raylibApp) loop() error {
	for !rl.WindowShouldClose() {
		elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		n := a.stepper.Advance(elapsed)
		if err := a.sim.Frame(a, time.Now(), n); err != nil {
			if errors.Is(err, sim.ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (a *raylibApp) ViewportSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (a *raylibApp) PollEvents() []sim.Event {
	if a.screensaver {
		buttons := rl.IsMouseButtonPressed(rl.MouseButtonLeft) ||
			rl.IsMouseButtonPressed(rl.MouseButtonRight) ||
			rl.IsMouseButtonPressed(rl.MouseButtonMiddle)
		pos := rl.GetMousePosition()
		if a.activity.Active(rl.GetKeyPressed() != 0, buttons, float64(pos.X), float64(pos.Y)) {
			return []sim.Event{sim.QuitEvent{}}
		}
		return nil
	}

	var chars []rune
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		chars = append(chars, rune(c))
	}
	events := sim.TypedEvents(chars)
	if rl.IsKeyPressed(rl.KeyEscape) {
		events = append(events, sim.QuitEvent{})
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.showHUD = !a.showHUD
	}
	return events
}

func (a *raylibApp) Submit(agents []flock.Agent) error {
	w := a.sim.World()
	c := lineColor(w)
	col := rl.NewColor(c.R, c.G, c.B, c.A)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(ColBg.R, ColBg.G, ColBg.B, ColBg.A))

	for _, ag := range agents {
		hx, hy := ag.Heading(sim.HeadingLength)
		rl.DrawLineV(
			rl.NewVector2(float32(ag.X), float32(ag.Y)),
			rl.NewVector2(float32(hx), float32(hy)),
			col,
		)
	}

	if a.showHUD {
		rl.DrawText(hudText(w, int(rl.GetFPS())), 12, 12, 14, rl.NewColor(ColText.R, ColText.G, ColText.B, ColText.A))
	}

	rl.EndDrawing()
	return nil
}
