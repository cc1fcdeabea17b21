package gui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/sim"
)

// ebitenGame runs one simulation tick per ebiten Update, since ebiten
// already calls Update at a fixed TPS.
type ebitenGame struct {
	sim           *sim.Simulator
	width, height int
	agents        []flock.Agent
	showHUD       bool
	screensaver   bool
	activity      sim.ActivityWatch
}

func RunEbiten(s *sim.Simulator, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.Config().TickRate)
	ebiten.SetFullscreen(opts.Fullscreen || opts.Screensaver)
	if opts.Screensaver {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	g := &ebitenGame{
		sim:         s,
		width:       opts.Width,
		height:      opts.Height,
		showHUD:     !opts.Screensaver,
		screensaver: opts.Screensaver,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *ebitenGame) Update() error {
	if err := g.sim.Frame(g, time.Now(), 1); err != nil {
		if errors.Is(err, sim.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *ebitenGame) ViewportSize() (int, int) { return g.width, g.height }

func (g *ebitenGame) PollEvents() []sim.Event {
	if g.screensaver {
		keys := len(inpututil.AppendJustPressedKeys(nil)) > 0
		buttons := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
		x, y := ebiten.CursorPosition()
		if g.activity.Active(keys, buttons, float64(x), float64(y)) {
			return []sim.Event{sim.QuitEvent{}}
		}
		return nil
	}

	events := sim.TypedEvents(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, sim.QuitEvent{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	return events
}

// Submit keeps a copy of the agents for the next Draw.
func (g *ebitenGame) Submit(agents []flock.Agent) error {
	g.agents = append(g.agents[:0], agents...)
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	w := g.sim.World()
	screen.Fill(ColBg)
	col := lineColor(w)

	for _, a := range g.agents {
		hx, hy := a.Heading(sim.HeadingLength)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(hx), float32(hy), 1, col, true)
	}

	if g.showHUD {
		ebitenutil.DebugPrint(screen, hudText(w, int(ebiten.ActualFPS())))
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
