package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// ContentWidth returns the inner width used for card sections so that
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) and padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Frame centers content in the given area.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at content width cw.
func Card(content string, cw int, border lipgloss.Style) string {
	return border.
		Border(lipgloss.RoundedBorder()).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// PlainCard is Card with the default border color.
func PlainCard(content string, cw int) string {
	return Card(content, cw, lipgloss.NewStyle().BorderForeground(theme.Primary))
}

// Tabs renders a row of tab labels with the active one highlighted.
func Tabs(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			parts = append(parts, theme.TabActive.Render(l))
		} else {
			parts = append(parts, theme.TabInactive.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
