package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/ui/theme"
)

// Mood is how the campus buddy reacts to the user's stats.
type Mood int

const (
	MoodChill   Mood = iota
	MoodHyped        // rare+ streak or about to level up
	MoodWorried      // streak under 3 days
)

type buddyArt struct {
	face    string
	caption string
}

var buddies = map[Mood]buddyArt{
	MoodChill: {
		face: ` ╭───╮
 │ ᵔ ᵕ ᵔ│
 ╰─┬─╯
  /█\`,
		caption: "Keep the vibe going",
	},
	MoodHyped: {
		face: `\╭───╮/
 │ ★ ▽ ★│
 ╰─┬─╯
  \█/`,
		caption: "You're on fire!",
	},
	MoodWorried: {
		face: ` ╭───╮ ?
 │ •︵•│
 ╰─┬─╯
  /█\`,
		caption: "Check in today to save your streak",
	},
}

func moodFor(s gamify.Summary) Mood {
	switch {
	case s.Streak < 3:
		return MoodWorried
	case gamify.StreakRarity(s.Streak) != gamify.RarityCommon, s.LevelProgress() >= 0.9:
		return MoodHyped
	default:
		return MoodChill
	}
}

func (m Mood) color() lipgloss.Style {
	switch m {
	case MoodHyped:
		return lipgloss.NewStyle().Foreground(theme.Highlight)
	case MoodWorried:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary)
	}
}

// renderBuddy draws the buddy and its caption centered in cw columns.
func renderBuddy(m Mood, cw int) string {
	art, ok := buddies[m]
	if !ok {
		art = buddies[MoodChill]
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		m.color().Render(art.face),
		theme.Hint.Render(art.caption),
	)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, block)
}
