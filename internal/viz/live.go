package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/mode"
	"github.com/san-kum/boids/internal/sim"
)

const (
	// PixelScale is the number of viewport units covered by one braille dot.
	PixelScale = 4

	defaultCols     = 80
	defaultRows     = 24
	historyCapacity = 240
)

type TickMsg time.Time

// Model runs a simulator inside a Bubble Tea program. It is also the
// simulator's surface: the viewport follows the terminal size and key
// presses become simulation events.
type Model struct {
	sim      *sim.Simulator
	stepper  *sim.Stepper
	canvas   *Canvas
	pending  []sim.Event
	speeds   []float64
	last     time.Time
	theme    int
	showHelp bool
	err      error
}

func NewModel(s *sim.Simulator, theme string) *Model {
	return &Model{
		sim:     s,
		stepper: sim.NewStepper(s.Config()),
		canvas:  NewCanvas(defaultCols-sidebarWidth, defaultRows),
		speeds:  make([]float64, 0, historyCapacity),
		theme:   themeIndex(theme),
	}
}

// Err is the error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) Theme() Theme { return Themes[m.theme] }

func (m *Model) Init() tea.Cmd {
	return tick(m.stepper.Step())
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "Q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t", "T":
			m.theme = (m.theme + 1) % len(Themes)
		case "?":
			m.showHelp = !m.showHelp
		default:
			if ev, ok := sim.KeyEvent(key); ok {
				m.pending = append(m.pending, ev)
			}
		}
	case TickMsg:
		now := time.Time(msg)
		if m.last.IsZero() {
			m.last = now
		}
		n := m.stepper.Advance(now.Sub(m.last))
		m.last = now

		if err := m.sim.Frame(m, now, n); err != nil {
			if !errors.Is(err, sim.ErrQuit) {
				m.err = err
			}
			return m, tea.Quit
		}
		return m, tick(m.stepper.Step())
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.canvas = NewCanvas(width-sidebarWidth-3, height)
}

// ViewportSize reports the canvas size in viewport units.
func (m *Model) ViewportSize() (int, int) {
	w, h := m.canvas.Dots()
	return w * PixelScale, h * PixelScale
}

func (m *Model) PollEvents() []sim.Event {
	events := m.pending
	m.pending = nil
	return events
}

func (m *Model) Submit(agents []flock.Agent) error {
	m.canvas.Clear()
	for _, a := range agents {
		m.canvas.DrawAgent(a, PixelScale)
	}

	m.speeds = append(m.speeds, m.sim.World().Flock().MeanSpeed())
	if len(m.speeds) > historyCapacity {
		m.speeds = m.speeds[1:]
	}
	return nil
}

func (m *Model) View() string {
	w := m.sim.World()
	sched := w.Scheduler()
	st := newStyles(m.Theme(), w.Mode().IsPattern())

	var s strings.Builder
	s.WriteString(st.header.Render("BOIDS") + "\n")
	s.WriteString(st.label.Render("Mode") + st.mode.Render(w.Mode().String()) + "\n")
	auto := "off"
	if sched.Auto() {
		auto = "on"
	}
	s.WriteString(st.row("Auto", "%s", auto))
	s.WriteString(st.row("Clock", "%.2f", sched.Clock()))
	s.WriteString(st.row("Ticks", "%d", w.Ticks()))
	s.WriteString(st.row("Boids", "%d", w.Flock().Len()))
	vp := w.Viewport()
	s.WriteString(st.row("Viewport", "%.0fx%.0f", vp.Width, vp.Height))
	s.WriteString(st.row("Theme", "%s", m.Theme().Name))

	if m.showHelp {
		s.WriteString("\n" + strings.Join(helpLines(), "\n") + "\n")
	} else if len(m.speeds) > 1 {
		chart := asciigraph.Plot(m.speeds,
			asciigraph.Height(5),
			asciigraph.Width(sidebarWidth-12),
			asciigraph.Precision(2),
			asciigraph.Caption("mean speed"))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render(Separator(sidebarWidth-4) + "\nlrybmsfc:Pattern N:Flock\nT:Theme ?:Help Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.canvas.Render(m.canvas.String()),
		st.sidebar.Render(s.String()))
}

func helpLines() []string {
	lines := make([]string, 0, mode.NumPatterns+1)
	for _, p := range mode.Patterns() {
		lines = append(lines, fmt.Sprintf("  %s  %s", strings.ToUpper(sim.KeyFor(p)), p))
	}
	lines = append(lines, fmt.Sprintf("  %s  %s", strings.ToUpper(sim.KeyFor(mode.Normal)), mode.Normal))
	return lines
}
