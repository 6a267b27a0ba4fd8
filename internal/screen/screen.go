// Package screen defines what the router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/ui/layout"
)

// Screen is one page of the app. View draws the body only; the app draws
// the header and footer around it using Title and the optional interfaces
// below.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatsProvider is implemented by screens that have loaded the user's
// summary, so the header can show level and streak.
type StatsProvider interface {
	Summary() gamify.Summary
}
