package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 36

type styles struct {
	canvas  lipgloss.Style
	sidebar lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	mode    lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
}

func newStyles(t Theme, pattern bool) styles {
	dots := t.Flock
	if pattern {
		dots = t.Pattern
	}
	return styles{
		canvas: lipgloss.NewStyle().Foreground(dots),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(0, 2).
			Width(sidebarWidth),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		mode:   lipgloss.NewStyle().Foreground(t.Pattern).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Flock),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

func (s styles) row(label string, format string, args ...any) string {
	return s.label.Render(label) + s.value.Render(fmt.Sprintf(format, args...)) + "\n"
}

// Separator renders a decorative rule of the given width.
func Separator(width int) string {
	if width < 7 {
		return strings.Repeat("─", width)
	}
	mid := width / 2
	return strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3)
}
