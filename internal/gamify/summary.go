package gamify

// Summary is the gamification read model shown on the profile card. It is
// produced by the stats service and only displayed here.
type Summary struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	MaxXP          int `json:"max_xp"`
	Checkins       int `json:"checkins"`
	Streak         int `json:"streak"`
	EventsAttended int `json:"events_attended"`
	FriendsCount   int `json:"friends_count"`
	HoursOnCampus  int `json:"hours_on_campus"`
}

// Placeholder is shown for any stat the stats service has not reported.
var Placeholder = Summary{
	Level:          12,
	XP:             2450,
	MaxXP:          3000,
	Checkins:       47,
	Streak:         5,
	EventsAttended: 12,
	FriendsCount:   24,
	HoursOnCampus:  156,
}

// WithDefaults fills zero fields from Placeholder.
func (s Summary) WithDefaults() Summary {
	pick := func(v, def int) int {
		if v == 0 {
			return def
		}
		return v
	}
	return Summary{
		Level:          pick(s.Level, Placeholder.Level),
		XP:             pick(s.XP, Placeholder.XP),
		MaxXP:          pick(s.MaxXP, Placeholder.MaxXP),
		Checkins:       pick(s.Checkins, Placeholder.Checkins),
		Streak:         pick(s.Streak, Placeholder.Streak),
		EventsAttended: pick(s.EventsAttended, Placeholder.EventsAttended),
		FriendsCount:   pick(s.FriendsCount, Placeholder.FriendsCount),
		HoursOnCampus:  pick(s.HoursOnCampus, Placeholder.HoursOnCampus),
	}
}

// LevelProgress returns XP / MaxXP clamped to [0, 1].
func (s Summary) LevelProgress() float64 {
	if s.MaxXP <= 0 {
		return 0
	}
	p := float64(s.XP) / float64(s.MaxXP)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
