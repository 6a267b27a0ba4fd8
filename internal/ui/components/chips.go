package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/ui/theme"
)

// ChipStyle is the icon and color a chip is drawn with.
type ChipStyle struct {
	Icon  string
	Color string // hex
}

// Chips is a wrapped row of toggleable tags. It only tracks the cursor;
// the owner decides what is selected.
type Chips struct {
	Options []string
	Cursor  int
	Focused bool
	PerRow  int
	Style   func(label string) ChipStyle
}

// NewChips creates a chip row over options.
func NewChips(options []string, style func(string) ChipStyle) Chips {
	return Chips{Options: options, PerRow: 3, Style: style}
}

// Current returns the label under the cursor.
func (c Chips) Current() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// Update moves the cursor.
func (c Chips) Update(msg tea.Msg) (Chips, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused || len(c.Options) == 0 {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "up", "k":
		if c.Cursor-c.perRow() >= 0 {
			c.Cursor -= c.perRow()
		}
	case "down", "j":
		if c.Cursor+c.perRow() < len(c.Options) {
			c.Cursor += c.perRow()
		}
	}
	return c, nil
}

func (c Chips) perRow() int {
	if c.PerRow <= 0 {
		return 3
	}
	return c.PerRow
}

// View renders the chips; selected reports which labels are on.
func (c Chips) View(selected func(label string) bool) string {
	var rows []string
	var row []string
	for i, label := range c.Options {
		row = append(row, c.chip(label, selected(label), c.Focused && i == c.Cursor))
		if len(row) == c.perRow() {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

func (c Chips) chip(label string, on, cursor bool) string {
	st := ChipStyle{Icon: "•", Color: "#60A5FA"}
	if c.Style != nil {
		st = c.Style(label)
	}
	col := lipgloss.Color(st.Color)

	style := lipgloss.NewStyle().Padding(0, 1)
	if on {
		style = style.Foreground(theme.BgDark).Background(col).Bold(true)
	} else {
		style = style.Foreground(col)
	}
	text := st.Icon + " " + label
	if cursor {
		return lipgloss.NewStyle().Foreground(theme.Highlight).Render("[") +
			style.Render(text) +
			lipgloss.NewStyle().Foreground(theme.Highlight).Render("]")
	}
	return " " + style.Render(text) + " "
}
