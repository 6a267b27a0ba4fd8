// Package layout draws the chrome around the active screen: a header with
// the user's level and streak, a footer of key hints, and the body between.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// Smallest terminal the profile card fits in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// chromeHeight is the rows taken by the bordered header and footer.
const chromeHeight = 6

// KeyHint is one key/description pair in the footer.
type KeyHint struct {
	Key  string
	Desc string
}

// Stats is what the header shows on the right. Zero values are hidden.
type Stats struct {
	Level  int
	Streak int
}

// Fits reports whether a width x height terminal can show the card.
func Fits(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}

// BodyHeight is the height left for the screen once the chrome is drawn.
func BodyHeight(total int) int {
	return max(total-chromeHeight, 0)
}

// TooSmall renders the resize prompt shown instead of the card.
func TooSmall(width, height int) string {
	msg := fmt.Sprintf("Your card needs at least %dx%d.\nThis window is %dx%d.\n\nResize to continue.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// Header renders the brand, the centered screen title and the stats.
func Header(title string, s Stats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Vibe")

	var parts []string
	if s.Level > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("Lv %d", s.Level)))
	}
	if s.Streak > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d day", s.Streak)))
	}
	stats := strings.Join(parts, "   ")

	inner := max(width-4, 0)
	side := max((inner-lipgloss.Width(title))/2, lipgloss.Width(brand)+1)
	left := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand)
	rest := max(inner-side, 0)
	right := lipgloss.PlaceHorizontal(rest, lipgloss.Left,
		title+strings.Repeat(" ", max(rest-lipgloss.Width(title)-lipgloss.Width(stats), 1))+stats)

	return bar(width).Render(left + right)
}

// Footer renders the key hints.
func Footer(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Desc)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// Compose stacks header, body and footer, padding the body so the footer
// sits on the last rows.
func Compose(header, body, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
