// Package mode selects what the flock is doing: free flocking or following
// one of the pattern curves.
package mode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/boids/internal/curves"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("mode: unknown mode")

type Mode int

const (
	Normal Mode = iota
	Lissajous
	Rose
	Hypocycloid
	Butterfly
	MaurerRose
	Spirograph
	FermatSpiral
	Cardioid
)

// NumPatterns is the number of pattern modes, Lissajous..Cardioid.
const NumPatterns = int(Cardioid)

var names = [...]string{
	Normal:       "normal",
	Lissajous:    "lissajous",
	Rose:         "rose",
	Hypocycloid:  "hypocycloid",
	Butterfly:    "butterfly",
	MaurerRose:   "maurer_rose",
	Spirograph:   "spirograph",
	FermatSpiral: "fermat_spiral",
	Cardioid:     "cardioid",
}

var table = [...]curves.Curve{
	Normal:       nil,
	Lissajous:    curves.Lissajous,
	Rose:         curves.Rose,
	Hypocycloid:  curves.Hypocycloid,
	Butterfly:    curves.Butterfly,
	MaurerRose:   curves.MaurerRose,
	Spirograph:   curves.Spirograph,
	FermatSpiral: curves.FermatSpiral,
	Cardioid:     curves.Cardioid,
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return names[m]
}

func (m Mode) Valid() bool { return m >= Normal && m <= Cardioid }

// IsPattern reports whether m follows a curve.
func (m Mode) IsPattern() bool { return m > Normal && m <= Cardioid }

// Curve returns the curve followed in m, or nil for Normal.
func (m Mode) Curve() curves.Curve {
	if !m.IsPattern() {
		return nil
	}
	return table[m]
}

// Patterns lists every pattern mode in declaration order.
func Patterns() []Mode {
	out := make([]Mode, 0, NumPatterns)
	for m := Lissajous; m <= Cardioid; m++ {
		out = append(out, m)
	}
	return out
}

func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range names {
		if n == key {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %s", ErrUnknownMode, name)
}
