package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibe/internal/router"
	"github.com/abhisek/vibe/internal/screen"
	"github.com/abhisek/vibe/internal/screens/home"
	profilescreen "github.com/abhisek/vibe/internal/screens/profile"
	"github.com/abhisek/vibe/internal/screens/welcome"
	"github.com/abhisek/vibe/internal/ui/layout"
)

// Options holds the dependencies the screens need.
type Options struct {
	Deps       profilescreen.Deps
	Username   string
	Logger     *slog.Logger
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *slog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash or home screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Deps.Logger == nil {
		opts.Deps.Logger = logger
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Deps, opts.Username)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PushScreenMsg:
		m.logger.Debug("push screen", "screen", msg.Screen.Title())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !layout.Fits(m.width, m.height) {
		return layout.TooSmall(m.width, m.height)
	}

	var (
		title string
		stats layout.Stats
		hints = []layout.KeyHint{{Key: "↑↓", Desc: "Navigate"}, {Key: "Enter", Desc: "Select"}}
	)
	if active := m.router.Active(); active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatsProvider); ok {
			s := sp.Summary()
			stats = layout.Stats{Level: s.Level, Streak: s.Streak}
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Desc: "Quit"})

	header := layout.Header(title, stats, m.width)
	footer := layout.Footer(hints, m.width)
	body := m.router.View(m.width, layout.BodyHeight(m.height))
	return layout.Compose(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
