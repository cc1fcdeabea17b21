package sim

import (
	"math"
	"strings"

	"github.com/san-kum/boids/internal/mode"
)

var keyModes = map[string]mode.Mode{
	"l": mode.Lissajous,
	"r": mode.Rose,
	"y": mode.Hypocycloid,
	"b": mode.Butterfly,
	"m": mode.MaurerRose,
	"s": mode.Spirograph,
	"f": mode.FermatSpiral,
	"c": mode.Cardioid,
}

// KeyEvent maps a key name to the event it triggers, ignoring case.
func KeyEvent(key string) (Event, bool) {
	k := strings.ToLower(key)
	if k == "n" {
		return ResetEvent{}, true
	}
	if m, ok := keyModes[k]; ok {
		return ToggleEvent{Mode: m}, true
	}
	return nil, false
}

// KeyFor returns the key that toggles m.
func KeyFor(m mode.Mode) string {
	for k, km := range keyModes {
		if km == m {
			return k
		}
	}
	if m == mode.Normal {
		return "n"
	}
	return ""
}

// TypedEvents maps typed characters to events for window surfaces, where
// q also quits.
func TypedEvents(chars []rune) []Event {
	var events []Event
	for _, r := range chars {
		if r == 'q' || r == 'Q' {
			events = append(events, QuitEvent{})
			continue
		}
		if ev, ok := KeyEvent(string(r)); ok {
			events = append(events, ev)
		}
	}
	return events
}

// activityThreshold is how far, in pixels, the pointer may drift before it
// counts as activity.
const activityThreshold = 8

// ActivityWatch detects user activity for screensaver surfaces: any key,
// any mouse button, or the pointer moving away from where it was first seen.
type ActivityWatch struct {
	x, y  float64
	armed bool
}

func (w *ActivityWatch) Active(keys, buttons bool, x, y float64) bool {
	if keys || buttons {
		return true
	}
	if !w.armed {
		w.x, w.y, w.armed = x, y, true
		return false
	}
	return math.Abs(x-w.x) > activityThreshold || math.Abs(y-w.y) > activityThreshold
}
