package profile

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	prof "github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/ui/components"
)

type formField int

const (
	fieldName formField = iota
	fieldYear
	fieldInterests
	fieldFreeTime
	fieldBio
	fieldSave
	fieldCount
)

const yearPrompt = "Select year"

// form holds the edit view widgets. The editor's draft is the source of
// truth; widgets are seeded from it and write back after every key.
type form struct {
	focus     formField
	name      components.TextInput
	year      components.Select
	interests components.Chips
	freeTime  components.TextInput
	bio       textarea.Model
	save      components.Button
}

func newForm(d prof.Draft, c prof.Catalog, onSave func() tea.Cmd) form {
	f := form{
		name:     components.NewTextInput("Your full name", 60),
		year:     components.NewSelect(yearPrompt, c.YearOptions(), d.YearOfStudy),
		freeTime: components.NewTextInput("e.g. Weekdays 6-8 PM", 80),
		save:     components.NewButton("Save Changes", false, onSave),
	}
	f.name.SetValue(d.DisplayName)
	f.freeTime.SetValue(d.FreeTime)

	f.interests = components.NewChips(c.InterestOptions(), func(label string) components.ChipStyle {
		st := prof.StyleFor(label)
		return components.ChipStyle{Icon: st.Icon, Color: st.Color}
	})

	f.bio = textarea.New()
	f.bio.Placeholder = "Tell people about yourself"
	f.bio.ShowLineNumbers = false
	f.bio.CharLimit = prof.MaxBioLength
	f.bio.SetHeight(3)
	f.bio.SetValue(d.Bio)

	f.save.BusyLabel = "Saving..."
	return f
}

// focusField moves focus to ff and returns the cursor command, if any.
func (f *form) focusField(ff formField) tea.Cmd {
	f.blurAll()
	f.focus = ff
	switch ff {
	case fieldName:
		return f.name.Focus()
	case fieldYear:
		f.year.Focused = true
	case fieldInterests:
		f.interests.Focused = true
	case fieldFreeTime:
		return f.freeTime.Focus()
	case fieldBio:
		return f.bio.Focus()
	case fieldSave:
		f.save.Active = true
	}
	return nil
}

func (f *form) blurAll() {
	f.name.Blur()
	f.year.Focused = false
	f.interests.Focused = false
	f.freeTime.Blur()
	f.bio.Blur()
	f.save.Active = false
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// updateFocused forwards msg to the focused input widget. The save button
// is driven by the screen.
func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldYear:
		f.year, cmd = f.year.Update(msg)
	case fieldInterests:
		f.interests, cmd = f.interests.Update(msg)
	case fieldFreeTime:
		f.freeTime, cmd = f.freeTime.Update(msg)
	case fieldBio:
		f.bio, cmd = f.bio.Update(msg)
	}
	return cmd
}

// writeBack copies the focused widget's value into the editor.
func (f *form) writeBack(e *prof.Editor) {
	switch f.focus {
	case fieldName:
		e.SetField(prof.FieldDisplayName, f.name.Value())
	case fieldYear:
		e.SetField(prof.FieldYearOfStudy, f.year.Value())
	case fieldFreeTime:
		e.SetField(prof.FieldFreeTime, f.freeTime.Value())
	case fieldBio:
		e.SetBio(f.bio.Value())
		if d := e.Draft(); d.Bio != f.bio.Value() {
			f.bio.SetValue(d.Bio)
		}
	}
}
