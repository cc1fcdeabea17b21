// Package export renders flock frames and pattern curves as SVG images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/boids/internal/curves"
	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/sim"
)

const (
	background  = "#0a0a0a"
	flockStroke = "#ffffff"
	curveStroke = "#00ffff"
)

func header(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// FlockToSVG draws each agent as its heading segment, the way window
// surfaces draw a frame.
func FlockToSVG(agents []flock.Agent, vp flock.Viewport) string {
	var sb strings.Builder
	header(&sb, vp.Width, vp.Height)

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">
`, flockStroke))
	for _, a := range agents {
		hx, hy := a.Heading(sim.HeadingLength)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, a.X, a.Y, hx, hy))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CurveToSVG traces c over t in [0, span] as a single path.
func CurveToSVG(c curves.Curve, vp flock.Viewport, span float64, samples int) string {
	var sb strings.Builder
	header(&sb, vp.Width, vp.Height)
	if samples < 2 {
		samples = 2
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, curveStroke))
	started := false
	for i := 0; i < samples; i++ {
		t := span * float64(i) / float64(samples-1)
		x, y := c(t, vp.Width, vp.Height)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		if !started {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			started = true
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
