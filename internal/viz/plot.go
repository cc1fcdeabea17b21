package viz

import (
	"math"

	"github.com/san-kum/boids/internal/curves"
)

// PlotCurve traces c for t in [0, span] onto a fresh canvas of the given
// cell size, joining samples with lines.
func PlotCurve(c curves.Curve, cols, rows, samples int, span float64) *Canvas {
	canvas := NewCanvas(cols, rows)
	w, h := canvas.Dots()
	if samples < 2 {
		samples = 2
	}

	px, py := -1, -1
	for i := 0; i < samples; i++ {
		t := span * float64(i) / float64(samples-1)
		x, y := c(t, float64(w), float64(h))
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		cx, cy := int(math.Round(x)), int(math.Round(y))
		if px >= 0 {
			canvas.DrawLine(px, py, cx, cy)
		} else {
			canvas.Set(cx, cy)
		}
		px, py = cx, cy
	}
	return canvas
}

type span struct {
	t       float64
	samples int
}

var spans = map[string]span{
	"butterfly":   {24 * math.Pi, 2000},
	"maurer_rose": {360, 361},
	"hypocycloid": {2 * math.Pi, 400},
	"spirograph":  {4 * math.Pi, 800},
}

// SpanFor returns the t range and sample count that trace one full
// figure of the named curve.
func SpanFor(name string) (float64, int) {
	if s, ok := spans[name]; ok {
		return s.t, s.samples
	}
	return 2 * math.Pi, 400
}
