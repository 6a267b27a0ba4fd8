package gamify

import (
	"fmt"
	"time"
)

// ActivityKind categorizes an activity feed entry.
type ActivityKind string

const (
	ActivityCheckin ActivityKind = "checkin"
	ActivityEvent   ActivityKind = "event"
	ActivityBadge   ActivityKind = "badge"
	ActivityWorkout ActivityKind = "workout"
)

// Icon returns the display icon for the activity kind.
func (k ActivityKind) Icon() string {
	switch k {
	case ActivityCheckin:
		return "📍"
	case ActivityEvent:
		return "👥"
	case ActivityBadge:
		return "🎖"
	case ActivityWorkout:
		return "🏋"
	default:
		return "•"
	}
}

// Activity is one entry in the recent activity feed.
type Activity struct {
	ID     string       `json:"id"`
	Kind   ActivityKind `json:"kind"`
	Action string       `json:"action"`
	At     time.Time    `json:"at"`
}

// DefaultActivity is the feed shown when no activity has been recorded.
func DefaultActivity(now time.Time) []Activity {
	return []Activity{
		{Kind: ActivityCheckin, Action: "Checked in at Library", At: now.Add(-2 * time.Hour)},
		{Kind: ActivityEvent, Action: `Joined "Study Group" event`, At: now.Add(-24 * time.Hour)},
		{Kind: ActivityBadge, Action: `Earned "Speed Demon" badge`, At: now.Add(-48 * time.Hour)},
		{Kind: ActivityWorkout, Action: "Checked in at Gym", At: now.Add(-72 * time.Hour)},
	}
}

// Ago formats the time since t relative to now ("2 hours ago").
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
