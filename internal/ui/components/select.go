package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// Select is a single-choice picker cycled with left/right. Index 0 is the
// empty choice shown as Prompt.
type Select struct {
	Prompt  string
	Options []string
	Index   int
	Focused bool
}

// NewSelect creates a picker positioned on value, or on the empty choice
// when value is not an option.
func NewSelect(prompt string, options []string, value string) Select {
	s := Select{Prompt: prompt, Options: options}
	s.SetValue(value)
	return s
}

// Value returns the chosen option, or "" for the empty choice.
func (s Select) Value() string {
	if s.Index <= 0 || s.Index > len(s.Options) {
		return ""
	}
	return s.Options[s.Index-1]
}

// SetValue moves to value. Unknown values select the empty choice.
func (s *Select) SetValue(value string) {
	s.Index = 0
	for i, o := range s.Options {
		if o == value {
			s.Index = i + 1
			return
		}
	}
}

// Update handles left/right cycling.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.Focused {
		return s, nil
	}
	n := len(s.Options) + 1
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + n) % n
	case "right", "l":
		s.Index = (s.Index + 1) % n
	}
	return s, nil
}

// View renders the current choice between arrows.
func (s Select) View() string {
	label := s.Value()
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if label == "" {
		label = s.Prompt
		style = style.Foreground(theme.TextDim)
	}
	if s.Focused {
		arrow := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		return arrow.Render("◂ ") + style.Bold(true).Render(label) + arrow.Render(" ▸")
	}
	return "  " + style.Render(label)
}
