package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// MenuItem is one button in a Menu. Hotkey, when set, activates the item
// directly.
type MenuItem struct {
	Label    string
	Hotkey   string
	Action   func() tea.Cmd
	Disabled bool
}

var (
	menuUp     = key.NewBinding(key.WithKeys("up", "k"))
	menuDown   = key.NewBinding(key.WithKeys("down", "j"))
	menuSelect = key.NewBinding(key.WithKeys("enter", "space"))
)

// Menu is a vertical list of buttons. Disabled items are skipped.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move selects the next enabled item in direction dir, staying put at the
// ends.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, menuUp):
		m.move(-1)
	case key.Matches(kmsg, menuDown):
		m.move(1)
	case key.Matches(kmsg, menuSelect):
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && kmsg.String() == item.Hotkey && !item.Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// View renders one bordered button per line, buttonWidth wide.
func (m Menu) View(buttonWidth int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())
	normal := base.Foreground(theme.Text).BorderForeground(theme.Border)
	selected := base.Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		BorderForeground(theme.Highlight)
	disabled := normal.Foreground(theme.TextDim)

	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if item.Hotkey != "" {
			label += " [" + item.Hotkey + "]"
		}
		switch {
		case item.Disabled:
			lines[i] = disabled.Render(label)
		case i == m.Selected:
			lines[i] = selected.Render("▸ " + label)
		default:
			lines[i] = normal.Render(label)
		}
	}
	return strings.Join(lines, "\n")
}
