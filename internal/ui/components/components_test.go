package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSelectCyclesThroughEmptyChoice(t *testing.T) {
	s := NewSelect("Select year", []string{"1st Year", "2nd Year"}, "2nd Year")
	s.Focused = true

	if s.Value() != "2nd Year" {
		t.Fatalf("expected seeded value, got %q", s.Value())
	}

	s, _ = s.Update(specialKey(tea.KeyRight))
	if s.Value() != "" {
		t.Errorf("expected wrap to empty choice, got %q", s.Value())
	}
	s, _ = s.Update(specialKey(tea.KeyRight))
	if s.Value() != "1st Year" {
		t.Errorf("expected 1st Year, got %q", s.Value())
	}
	s, _ = s.Update(specialKey(tea.KeyLeft))
	s, _ = s.Update(specialKey(tea.KeyLeft))
	if s.Value() != "2nd Year" {
		t.Errorf("expected wrap back to 2nd Year, got %q", s.Value())
	}
}

func TestSelectUnknownValueIsEmpty(t *testing.T) {
	s := NewSelect("Select year", []string{"1st Year"}, "Postdoc")
	if s.Value() != "" {
		t.Errorf("expected empty value, got %q", s.Value())
	}
	if !strings.Contains(s.View(), "Select year") {
		t.Error("expected prompt in view")
	}
}

func TestSelectIgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSelect("Select year", []string{"1st Year"}, "")
	s, _ = s.Update(specialKey(tea.KeyRight))
	if s.Index != 0 {
		t.Errorf("expected index 0, got %d", s.Index)
	}
}

func TestChipsCursorMovement(t *testing.T) {
	c := NewChips([]string{"a", "b", "c", "d", "e"}, nil)
	c.Focused = true

	c, _ = c.Update(specialKey(tea.KeyLeft))
	if c.Current() != "a" {
		t.Errorf("expected cursor to stay at a, got %q", c.Current())
	}
	c, _ = c.Update(specialKey(tea.KeyDown))
	if c.Current() != "d" {
		t.Errorf("expected d after down, got %q", c.Current())
	}
	c, _ = c.Update(specialKey(tea.KeyDown))
	if c.Current() != "d" {
		t.Errorf("expected down past the end to be a no-op, got %q", c.Current())
	}
	c, _ = c.Update(keyPress('l'))
	if c.Current() != "e" {
		t.Errorf("expected e, got %q", c.Current())
	}
	c, _ = c.Update(keyPress('l'))
	if c.Current() != "e" {
		t.Errorf("expected cursor clamped at e, got %q", c.Current())
	}
}

func TestChipsViewRendersAllLabels(t *testing.T) {
	c := NewChips([]string{"Gym", "Music"}, func(l string) ChipStyle {
		return ChipStyle{Icon: "*", Color: "#FFFFFF"}
	})
	view := c.View(func(l string) bool { return l == "Gym" })
	for _, l := range []string{"Gym", "Music"} {
		if !strings.Contains(view, l) {
			t.Errorf("expected %q in view", l)
		}
	}
}

func TestButtonBusyIgnoresPress(t *testing.T) {
	pressed := 0
	b := NewButton("Save Changes", true, func() tea.Cmd {
		pressed++
		return nil
	})
	b.BusyLabel = "Saving..."

	b, _ = b.Update(specialKey(tea.KeyEnter))
	if pressed != 1 {
		t.Fatalf("expected 1 press, got %d", pressed)
	}

	b.Busy = true
	b, _ = b.Update(specialKey(tea.KeyEnter))
	if pressed != 1 {
		t.Errorf("expected busy button to ignore press, got %d", pressed)
	}
	if !strings.Contains(b.View(), "Saving...") {
		t.Errorf("expected busy label, got %q", b.View())
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected D, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected selection to stay on D, got %d", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("expected B, got %d", m.Selected)
	}
}

func TestMenuHotkey(t *testing.T) {
	var picked string
	pick := func(l string) func() tea.Cmd {
		return func() tea.Cmd { picked = l; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "VIEW PROFILE", Hotkey: "p", Action: pick("profile")},
		{Label: "EXIT", Hotkey: "q", Action: pick("exit")},
	})

	m, _ = m.Update(keyPress('q'))
	if picked != "exit" || m.Selected != 1 {
		t.Errorf("expected hotkey to select and run EXIT, got %q at %d", picked, m.Selected)
	}
	if !strings.Contains(m.View(30), "[p]") {
		t.Error("expected hotkey shown on the button")
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, p := range []float64{-1, 0, 0.5, 2} {
		view := NewProgressBar("Lv 3", p, "10/20 XP", 40).View()
		if !strings.Contains(view, "10/20 XP") {
			t.Errorf("percent %v: expected caption in view", p)
		}
	}
	if Percent(0.816) != "81%" {
		t.Errorf("unexpected percent %q", Percent(0.816))
	}
}
