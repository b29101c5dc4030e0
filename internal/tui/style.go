package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// Style configures how wheels are drawn.
type Style struct {
	// Divider draws a vertical rule between adjacent wheels.
	Divider bool
	// Rows is the number of visible rows per wheel. An even count is
	// rounded up so the selection sits in the middle.
	Rows  int
	Width int

	Selected lipgloss.Style
	Focused  lipgloss.Style
	Row      lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Summary  lipgloss.Style
	Rule     lipgloss.Style
}

var colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

// DefaultStyle returns the demo style.
func DefaultStyle() Style {
	return Style{
		Divider:  true,
		Rows:     config.TUIVisibleRows,
		Width:    config.TUIColumnWidth,
		Selected: lipgloss.NewStyle().Bold(true),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Row:      lipgloss.NewStyle().Faint(true),
		Tab:      lipgloss.NewStyle().Padding(0, 1).Faint(true),
		TabOn:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorAccent),
		Summary:  lipgloss.NewStyle().MarginTop(1),
		Rule:     lipgloss.NewStyle().Faint(true),
	}
}

// window returns the label indexes shown around the selection, top to
// bottom; -1 marks an empty slot.
func window(c picker.Column, rows int) []int {
	half := rows / 2
	out := make([]int, 0, 2*half+1)
	n := len(c.Labels)
	for off := -half; off <= half; off++ {
		i := -1
		if c.Selected >= 0 && n > 0 {
			i = c.Selected + off
			switch {
			case c.Circular && n >= rows:
				i = ((i % n) + n) % n
			case i < 0 || i >= n:
				i = -1
			}
		}
		out = append(out, i)
	}
	return out
}

// renderColumn draws one wheel.
func renderColumn(c picker.Column, focused bool, s Style) string {
	rows := window(c, s.Rows)
	lines := make([]string, len(rows))
	cell := lipgloss.NewStyle().Width(s.Width).Align(lipgloss.Center)

	for r, i := range rows {
		text := ""
		if i >= 0 {
			text = c.Labels[i]
		}
		switch {
		case r == len(rows)/2 && focused:
			lines[r] = s.Focused.Inherit(cell).Render(text)
		case r == len(rows)/2:
			lines[r] = s.Selected.Inherit(cell).Render(text)
		default:
			lines[r] = s.Row.Inherit(cell).Render(text)
		}
	}
	return strings.Join(lines, "\n")
}

// renderColumns lays the wheels out left to right.
func renderColumns(cols []picker.Column, focus int, s Style) string {
	parts := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 && s.Divider {
			rule := strings.TrimSuffix(strings.Repeat(config.TUIDivider+"\n", s.Rows), "\n")
			parts = append(parts, s.Rule.Render(rule))
		}
		parts = append(parts, renderColumn(c, i == focus, s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
