package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/vibe/internal/gamify"
	prof "github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/router"
	"github.com/abhisek/vibe/internal/screen"
	"github.com/abhisek/vibe/internal/store"
	"github.com/abhisek/vibe/internal/ui/components"
	"github.com/abhisek/vibe/internal/ui/layout"
)

const (
	defaultSaveTimeout = 10 * time.Second
	activityLimit      = 10
)

// ProfileLoader reads the canonical profile. store.ProfileRepo satisfies it.
type ProfileLoader interface {
	Get(ctx context.Context, username string) (*prof.Canonical, error)
}

// StatsLoader reads the gamification summary. store.StatsRepo satisfies it.
type StatsLoader interface {
	Summary(ctx context.Context, username string) (gamify.Summary, error)
}

// ActivityLoader reads the activity feed. store.ActivityRepo satisfies it.
type ActivityLoader interface {
	Recent(ctx context.Context, username string, limit int) ([]gamify.Activity, error)
}

// Deps are the collaborators of the profile overlay. Stats and Activity are
// optional; placeholders are shown without them.
type Deps struct {
	Profiles    ProfileLoader
	Stats       StatsLoader
	Activity    ActivityLoader
	Saver       prof.Saver
	Catalog     prof.Catalog
	SaveTimeout time.Duration
	Logger      *slog.Logger
}

// ProfileScreen is the profile view/edit overlay.
type ProfileScreen struct {
	deps     Deps
	username string
	editor   *prof.Editor
	form     form

	summary  gamify.Summary
	badges   []gamify.Badge
	activity []gamify.Activity

	loaded  bool
	errMsg  string
	closing bool
	now     func() time.Time
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the overlay for username. It opens once the profile loads.
func New(deps Deps, username string) *ProfileScreen {
	if deps.SaveTimeout <= 0 {
		deps.SaveTimeout = defaultSaveTimeout
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	s := &ProfileScreen{
		deps:     deps,
		username: username,
		badges:   gamify.DefaultBadges(),
		now:      time.Now,
	}
	s.editor = prof.NewEditor(deps.Catalog, deps.Saver,
		prof.WithLogger(deps.Logger.With("user", username)),
		prof.WithCloseHook(func() error {
			s.closing = true
			return nil
		}),
	)
	s.form = newForm(s.editor.Draft(), deps.Catalog, s.submit)
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

// Editor exposes the overlay's state machine.
func (s *ProfileScreen) Editor() *prof.Editor {
	return s.editor
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if !s.loaded {
		return []layout.KeyHint{{Key: "Esc", Desc: "Close"}}
	}
	if s.editor.ViewMode() == prof.ViewEdit {
		hints := []layout.KeyHint{hint(keys.NextField), hint(keys.Save), hint(keys.Back)}
		if s.form.focus == fieldInterests {
			hints = append([]layout.KeyHint{hint(keys.Toggle)}, hints...)
		}
		return hints
	}
	return []layout.KeyHint{hint(keys.NextSection), hint(keys.Edit), hint(keys.Reload), hint(keys.Close)}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Desc: h.Desc}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		return s.handleLoaded(msg)

	case saveResultMsg:
		return s.handleSaveResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blinks and the like.
	if s.loaded && s.editor.ViewMode() == prof.ViewEdit {
		return s, s.form.updateFocused(msg)
	}
	return s, nil
}

// load fetches the profile, stats and activity feed concurrently. Only a
// profile failure is fatal; the card falls back to placeholders otherwise.
func (s *ProfileScreen) load() tea.Cmd {
	deps, username := s.deps, s.username
	return func() tea.Msg {
		var msg profileLoadedMsg
		g, ctx := errgroup.WithContext(context.Background())

		g.Go(func() error {
			c, err := deps.Profiles.Get(ctx, username)
			if errors.Is(err, store.ErrNotFound) {
				c, err = &prof.Canonical{Username: username, Interests: []string{}}, nil
			}
			msg.Canonical = c
			return err
		})
		if deps.Stats != nil {
			g.Go(func() error {
				sum, err := deps.Stats.Summary(ctx, username)
				if err != nil {
					deps.Logger.Warn("load stats", "user", username, "error", err)
					return nil
				}
				msg.Summary = sum
				return nil
			})
		}
		if deps.Activity != nil {
			g.Go(func() error {
				feed, err := deps.Activity.Recent(ctx, username, activityLimit)
				if err != nil {
					deps.Logger.Warn("load activity", "user", username, "error", err)
					return nil
				}
				msg.Activity = feed
				return nil
			})
		}

		msg.Err = g.Wait()
		return msg
	}
}

func (s *ProfileScreen) handleLoaded(msg profileLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = "Could not load profile: " + msg.Err.Error()
		s.deps.Logger.Error("load profile", "user", s.username, "error", msg.Err)
		return s, nil
	}

	s.loaded = true
	s.errMsg = ""
	s.summary = msg.Summary.WithDefaults()
	s.activity = msg.Activity
	if len(s.activity) == 0 {
		s.activity = gamify.DefaultActivity(s.now())
	}

	if s.editor.Reconcile(msg.Canonical, true) {
		s.form = newForm(s.editor.Draft(), s.deps.Catalog, s.submit)
	}
	return s, nil
}

func (s *ProfileScreen) handleSaveResult(msg saveResultMsg) (screen.Screen, tea.Cmd) {
	if !s.editor.Complete(msg.Submission, msg.Err) {
		return s, nil
	}
	if !s.closing {
		return s, nil
	}
	username := s.username
	return s, tea.Sequence(
		router.Close(),
		func() tea.Msg { return SavedMsg{Username: username} },
	)
}

func (s *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded {
		if key.Matches(msg, keys.Close) {
			return s, s.dismiss()
		}
		return s, nil
	}
	if s.editor.ViewMode() == prof.ViewEdit {
		return s.handleFormKey(msg)
	}
	return s.handleCardKey(msg)
}

func (s *ProfileScreen) handleCardKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		return s, s.dismiss()

	case key.Matches(msg, keys.Edit):
		s.editor.SetViewMode(prof.ViewEdit)
		return s, s.form.focusField(s.form.focus)

	case key.Matches(msg, keys.Reload):
		return s, s.load()

	case key.Matches(msg, keys.NextSection):
		s.editor.SetSection(stepSection(s.editor.Section(), 1))

	case key.Matches(msg, keys.PrevSection):
		s.editor.SetSection(stepSection(s.editor.Section(), -1))
	}
	return s, nil
}

func (s *ProfileScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		s.form.blurAll()
		s.editor.SetViewMode(prof.ViewFlashcard)
		return s, nil

	case key.Matches(msg, keys.Save):
		return s, s.submit()

	case key.Matches(msg, keys.NextField):
		return s, s.form.next()

	case key.Matches(msg, keys.PrevField):
		return s, s.form.prev()
	}

	switch s.form.focus {
	case fieldInterests:
		if key.Matches(msg, keys.Toggle) {
			s.editor.ToggleInterest(s.form.interests.Current())
			return s, nil
		}
	case fieldName, fieldYear, fieldFreeTime:
		if key.Matches(msg, keys.Submit) {
			return s, s.form.next()
		}
	case fieldSave:
		_, cmd := s.saveButton().Update(msg)
		return s, cmd
	}

	cmd := s.form.updateFocused(msg)
	s.form.writeBack(s.editor)
	return s, cmd
}

// submit starts a save and runs it off the UI loop, bounded by the save
// timeout. A submission already in flight makes this a no-op.
func (s *ProfileScreen) submit() tea.Cmd {
	sub, ok := s.editor.Submit()
	if !ok {
		return nil
	}
	timeout := s.deps.SaveTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return saveResultMsg{Submission: sub, Err: sub.Run(ctx)}
	}
}

// saveButton is the form's button with its busy state taken from the
// editor, which is the only owner of it.
func (s *ProfileScreen) saveButton() components.Button {
	b := s.form.save
	b.Busy = s.editor.Saving()
	return b
}

// dismiss closes the overlay without saving. A pending save result will be
// dropped when it arrives.
func (s *ProfileScreen) dismiss() tea.Cmd {
	s.editor.Reconcile(s.editor.Canonical(), false)
	return router.Close()
}

func stepSection(cur prof.Section, delta int) prof.Section {
	all := prof.AllSections()
	n := len(all)
	return all[((int(cur)+delta)%n+n)%n]
}

// Summary returns the stats shown on the card.
func (s *ProfileScreen) Summary() gamify.Summary {
	return s.summary
}
