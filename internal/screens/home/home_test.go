package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibe/internal/gamify"
	prof "github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/router"
	profilescreen "github.com/abhisek/vibe/internal/screens/profile"
	"github.com/abhisek/vibe/internal/store"
)

type mockProfiles struct {
	profile *prof.Canonical
	err     error
}

func (m *mockProfiles) Get(_ context.Context, _ string) (*prof.Canonical, error) {
	return m.profile, m.err
}

type mockStats struct {
	summary gamify.Summary
}

func (m *mockStats) Summary(_ context.Context, _ string) (gamify.Summary, error) {
	return m.summary, nil
}

func testHome(p *mockProfiles) *HomeScreen {
	return New(profilescreen.Deps{
		Profiles: p,
		Stats:    &mockStats{summary: gamify.Summary{Level: 7, Streak: 12}},
		Catalog:  prof.DefaultCatalog(),
	}, "sam")
}

func TestHomeLoadsNameAndStats(t *testing.T) {
	h := testHome(&mockProfiles{profile: &prof.Canonical{DisplayName: "Sam Lee", Username: "sam"}})
	h.Update(h.Init()())

	if h.name != "Sam Lee" {
		t.Errorf("expected display name, got %q", h.name)
	}
	if h.Summary().Level != 7 || h.Summary().Checkins != gamify.Placeholder.Checkins {
		t.Errorf("unexpected summary %+v", h.Summary())
	}
	if h.mood != MoodHyped {
		t.Errorf("expected hyped buddy for a rare streak, got %v", h.mood)
	}

	view := h.View(120, 40)
	for _, want := range []string{"Sam Lee", "LEVEL 7", "VIEW PROFILE"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestHomeMissingProfileUsesUsername(t *testing.T) {
	h := testHome(&mockProfiles{err: store.ErrNotFound})
	h.Update(h.Init()())

	if h.name != "sam" {
		t.Errorf("expected username fallback, got %q", h.name)
	}
	if h.errMsg != "" {
		t.Errorf("expected no error, got %q", h.errMsg)
	}
}

func TestHomeLoadError(t *testing.T) {
	h := testHome(&mockProfiles{err: errors.New("db locked")})
	h.Update(h.Init()())

	if !strings.Contains(h.View(120, 40), "db locked") {
		t.Error("expected error in view")
	}
}

func TestViewProfilePushesOverlay(t *testing.T) {
	h := testHome(&mockProfiles{profile: &prof.Canonical{Username: "sam"}})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Profile" {
		t.Errorf("expected profile screen, got %q", push.Screen.Title())
	}
}

func TestSavedMsgReloads(t *testing.T) {
	p := &mockProfiles{profile: &prof.Canonical{DisplayName: "Old", Username: "sam"}}
	h := testHome(p)
	h.Update(h.Init()())

	p.profile = &prof.Canonical{DisplayName: "New", Username: "sam"}
	_, cmd := h.Update(profilescreen.SavedMsg{Username: "sam"})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	h.Update(cmd())
	if h.name != "New" {
		t.Errorf("expected reloaded name, got %q", h.name)
	}
}

func TestMoodFor(t *testing.T) {
	tests := []struct {
		name    string
		summary gamify.Summary
		want    Mood
	}{
		{"streak at risk", gamify.Summary{Streak: 2, XP: 2900, MaxXP: 3000}, MoodWorried},
		{"rare streak", gamify.Summary{Streak: 14, XP: 10, MaxXP: 3000}, MoodHyped},
		{"near level up", gamify.Summary{Streak: 4, XP: 2800, MaxXP: 3000}, MoodHyped},
		{"steady", gamify.Summary{Streak: 4, XP: 100, MaxXP: 3000}, MoodChill},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moodFor(tt.summary); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
