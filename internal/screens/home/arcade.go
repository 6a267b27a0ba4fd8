package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/ui/components"
	"github.com/abhisek/vibe/internal/ui/theme"
)

// Block-letter title.
const titleFull = `██╗   ██╗██╗██████╗ ███████╗
██║   ██║██║██╔══██╗██╔════╝
██║   ██║██║██████╔╝█████╗
╚██╗ ██╔╝██║██╔══██╗██╔══╝
 ╚████╔╝ ██║██████╔╝███████╗
  ╚═══╝  ╚═╝╚═════╝ ╚══════╝`

const titleCompact = "V · I · B · E"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

func renderGreeting(name string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Hey, " + lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Render(name) + "!")
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("⚠ " + msg)
}

// renderStatsBar renders level, streak and check-ins in a bordered box
// matching content width.
func renderStatsBar(s gamify.Summary, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(gamify.StreakRarity(s.Streak).Color())).Bold(true)
	checkinStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", s.Level)),
			streakStyle.Render(fmt.Sprintf("🔥%d", s.Streak)),
			checkinStyle.Render(fmt.Sprintf("📍%d", s.Checkins)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d", s.Level)),
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", s.Streak)),
			checkinStyle.Render(fmt.Sprintf("📍 %d CHECK-INS", s.Checkins)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View(buttonWidth))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
