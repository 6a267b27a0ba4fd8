package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibe/internal/gamify"
	prof "github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/router"
	"github.com/abhisek/vibe/internal/screen"
	profilescreen "github.com/abhisek/vibe/internal/screens/profile"
	"github.com/abhisek/vibe/internal/store"
	"github.com/abhisek/vibe/internal/ui/components"
)

// homeLoadedMsg carries what the dashboard shows.
type homeLoadedMsg struct {
	Canonical *prof.Canonical
	Summary   gamify.Summary
	Err       error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps     profilescreen.Deps
	username string
	menu     components.Menu
	name     string
	summary  gamify.Summary
	errMsg   string
	mood     Mood
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for username.
func New(deps profilescreen.Deps, username string) *HomeScreen {
	h := &HomeScreen{
		deps:     deps,
		username: username,
		name:     username,
		summary:  gamify.Placeholder,
	}

	items := []components.MenuItem{
		{Label: "VIEW PROFILE", Hotkey: "p", Action: func() tea.Cmd {
			return router.Open(profilescreen.New(h.deps, h.username))
		}},
		{Label: "EXIT", Hotkey: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	deps, username := h.deps, h.username
	return func() tea.Msg {
		ctx := context.Background()
		var msg homeLoadedMsg

		c, err := deps.Profiles.Get(ctx, username)
		switch {
		case errors.Is(err, store.ErrNotFound):
			msg.Canonical = &prof.Canonical{Username: username}
		case err != nil:
			return homeLoadedMsg{Err: err}
		default:
			msg.Canonical = c
		}

		if deps.Stats != nil {
			sum, err := deps.Stats.Summary(ctx, username)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			msg.Summary = sum
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.name = prof.DisplayNameFor(prof.NewDraft(msg.Canonical), msg.Canonical)
		h.summary = msg.Summary.WithDefaults()
		h.mood = moodFor(h.summary)
		return h, nil

	case profilescreen.SavedMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Summary returns the stats shown in the header.
func (h *HomeScreen) Summary() gamify.Summary {
	return h.summary
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderBuddy(h.mood, cw))
	}
	sections = append(sections, renderGreeting(h.name, cw))
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}
	sections = append(sections, renderStatsBar(h.summary, cw, compact))
	sections = append(sections, renderMenu(h.menu, cw))

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
