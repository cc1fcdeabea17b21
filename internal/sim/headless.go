package sim

import "github.com/san-kum/boids/internal/flock"

// HeadlessSurface has a fixed viewport, draws nothing and asks to quit once
// World has run Ticks ticks. It lets Run pace a world in real time without
// a window.
type HeadlessSurface struct {
	Width, Height int
	World         *World
	Ticks         int
	Frames        int
}

func (h *HeadlessSurface) ViewportSize() (int, int) { return h.Width, h.Height }

func (h *HeadlessSurface) PollEvents() []Event {
	if h.World.Ticks() >= h.Ticks {
		return []Event{QuitEvent{}}
	}
	return nil
}

func (h *HeadlessSurface) Submit([]flock.Agent) error {
	h.Frames++
	return nil
}
