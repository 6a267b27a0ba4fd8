package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// Button is a styled button component. A busy button shows BusyLabel and
// ignores presses.
type Button struct {
	Label     string
	BusyLabel string
	Active    bool
	Busy      bool
	OnPress   func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.Busy {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		label := b.BusyLabel
		if label == "" {
			label = b.Label
		}
		return theme.ButtonDisabled.Render(label)
	}
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
