package profile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/vibe/internal/gamify"
	prof "github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/ui/components"
	"github.com/abhisek/vibe/internal/ui/theme"
)

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Frame(theme.ErrorText.Render(s.errMsg)+"\n\n"+theme.Hint.Render("Esc to close"), width, height)
	}
	if !s.loaded {
		return components.Frame(theme.Hint.Render("Loading profile..."), width, height)
	}

	cw := components.ContentWidth(width)
	var body string
	if s.editor.ViewMode() == prof.ViewEdit {
		body = s.renderForm(cw)
	} else {
		body = s.renderCard(cw)
	}
	return components.Frame(body, width, height)
}

// renderCard draws the read-only flashcard: identity, level bar, tabs.
func (s *ProfileScreen) renderCard(cw int) string {
	d := s.editor.Draft()
	var sections []string

	sections = append(sections, s.renderIdentity(d, cw))

	level := components.NewProgressBar(
		fmt.Sprintf("Lv %d", s.summary.Level),
		s.summary.LevelProgress(),
		fmt.Sprintf("%d/%d XP", s.summary.XP, s.summary.MaxXP),
		cw-4,
	)
	sections = append(sections, level.View())

	sections = append(sections, components.Tabs(sectionLabels(), int(s.editor.Section())))

	switch s.editor.Section() {
	case prof.SectionBadges:
		sections = append(sections, s.renderBadges())
	case prof.SectionActivity:
		sections = append(sections, s.renderActivity())
	default:
		sections = append(sections, s.renderOverview(d))
	}

	return components.PlainCard(strings.Join(sections, "\n\n"), cw)
}

func sectionLabels() []string {
	all := prof.AllSections()
	caser := cases.Title(language.English)
	labels := make([]string, len(all))
	for i, sec := range all {
		labels[i] = caser.String(sec.String())
	}
	return labels
}

func (s *ProfileScreen) renderIdentity(d prof.Draft, cw int) string {
	canonical := s.editor.Canonical()
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.editor.DisplayName())

	var meta []string
	if canonical != nil && canonical.Username != "" {
		meta = append(meta, "@"+canonical.Username)
	}
	if d.YearOfStudy != "" {
		meta = append(meta, d.YearOfStudy)
	}
	line := name
	if len(meta) > 0 {
		line += "  " + theme.Hint.Render(strings.Join(meta, " · "))
	}

	avatar := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw - 4).
		Render(prof.AvatarURLFor(canonical))

	return line + "\n" + avatar
}

func (s *ProfileScreen) renderOverview(d prof.Draft) string {
	var lines []string

	stat := func(label string, v int, color lipgloss.Style) string {
		return color.Bold(true).Render(fmt.Sprintf("%d", v)) + " " + theme.Hint.Render(label)
	}
	streakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(gamify.StreakRarity(s.summary.Streak).Color()))
	plain := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines = append(lines,
		stat("check-ins", s.summary.Checkins, plain)+"   "+
			stat("day streak", s.summary.Streak, streakStyle)+"   "+
			stat("events", s.summary.EventsAttended, plain),
		stat("friends", s.summary.FriendsCount, plain)+"   "+
			stat("hours on campus", s.summary.HoursOnCampus, plain),
	)
	if next := gamify.NextStreakMilestone(s.summary.Streak); next > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("Next streak milestone: %d days", next)))
	}

	if len(d.Interests) > 0 {
		chips := make([]string, 0, len(d.Interests))
		for _, label := range d.Interests {
			st := prof.StyleFor(label)
			chips = append(chips, lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color)).Render(st.Icon+" "+label))
		}
		lines = append(lines, theme.Label.Render("Interests")+"\n"+strings.Join(chips, "  "))
	}
	if d.FreeTime != "" {
		lines = append(lines, theme.Label.Render("Free time")+"\n"+theme.Body.Render(d.FreeTime))
	}
	if d.Bio != "" {
		lines = append(lines, theme.Label.Render("Bio")+"\n"+theme.Body.Render(d.Bio))
	}
	return strings.Join(lines, "\n")
}

func (s *ProfileScreen) renderBadges() string {
	header := theme.Label.Render(fmt.Sprintf("%d/%d unlocked", gamify.UnlockedCount(s.badges), len(s.badges)))
	lines := []string{header}
	for _, b := range s.badges {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Rarity.Color()))
		label := b.Icon + " " + b.Label
		if !b.Unlocked {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
			label = "🔒 " + b.Label
		}
		lines = append(lines, style.Render(label)+"  "+theme.Hint.Render(b.Rarity.DisplayName()))
	}
	return strings.Join(lines, "\n")
}

func (s *ProfileScreen) renderActivity() string {
	now := s.now()
	lines := make([]string, 0, len(s.activity))
	for _, a := range s.activity {
		lines = append(lines, a.Kind.Icon()+" "+theme.Body.Render(a.Action)+"  "+theme.Hint.Render(gamify.Ago(a.At, now)))
	}
	return strings.Join(lines, "\n")
}

// renderForm draws the edit view.
func (s *ProfileScreen) renderForm(cw int) string {
	d := s.editor.Draft()
	f := s.form

	label := func(text string, field formField) string {
		if f.focus == field {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Label.Render("  " + text)
	}

	f.bio.SetWidth(cw - 6)
	bioHeader := label("Bio", fieldBio) + "  " + theme.Hint.Render(d.BioCounter())

	sections := []string{
		label("Full Name", fieldName) + "\n" + f.name.View(),
		label("Year of Study", fieldYear) + "\n" + f.year.View(),
		label("Interests", fieldInterests) + "\n" + f.interests.View(d.HasInterest),
		label("Free Time", fieldFreeTime) + "\n" + f.freeTime.View(),
		bioHeader + "\n" + f.bio.View(),
	}

	if st := s.editor.Status(); st.State == prof.SaveError {
		sections = append(sections, theme.ErrorText.Render("✗ "+st.Message))
	}

	sections = append(sections, s.saveButton().View())

	return components.PlainCard(strings.Join(sections, "\n\n"), cw)
}
