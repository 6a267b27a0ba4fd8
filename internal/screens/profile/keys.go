package profile

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Close       key.Binding
	Edit        key.Binding
	Reload      key.Binding
	NextSection key.Binding
	PrevSection key.Binding

	Back      key.Binding
	Save      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Toggle    key.Binding
	Submit    key.Binding
}

var keys = keyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "Close"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("E", "Edit"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Reload"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("←→", "Tabs"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
	),

	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Card"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+S", "Save"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "Next"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("space", "enter"),
		key.WithHelp("Space", "Toggle"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
	),
}
