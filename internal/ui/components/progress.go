package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar, such as XP toward the
// next level.
type ProgressBar struct {
	Label   string
	Percent float64
	Caption string // shown after the bar, e.g. "2450/3000 XP"
	Width   int
	Fill    color.Color
}

// NewProgressBar creates a new progress bar filled with the secondary color.
func NewProgressBar(label string, percent float64, caption string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Caption: caption,
		Width:   width,
		Fill:    theme.Secondary,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label) + "  "
	}

	var caption string
	if p.Caption != "" {
		caption = "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Caption)
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(caption)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	return result + caption
}

// Percent formats p in [0, 1] as a whole percentage.
func Percent(p float64) string {
	return fmt.Sprintf("%d%%", int(p*100))
}
