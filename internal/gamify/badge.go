package gamify

// Badge is an achievement shown on the badges tab.
type Badge struct {
	Label    string
	Icon     string
	Unlocked bool
	Rarity   Rarity
}

// DefaultBadges returns the badge shelf shown on every profile.
func DefaultBadges() []Badge {
	return []Badge{
		{Label: "First Check-in", Icon: "🏆", Unlocked: true, Rarity: RarityCommon},
		{Label: "Speed Demon", Icon: "⚡", Unlocked: true, Rarity: RarityRare},
		{Label: "Popular", Icon: "⭐", Unlocked: true, Rarity: RarityEpic},
		{Label: "Legend", Icon: "🎖", Unlocked: false, Rarity: RarityLegendary},
		{Label: "Friendly", Icon: "♥", Unlocked: true, Rarity: RarityRare},
		{Label: "Rising Star", Icon: "📈", Unlocked: false, Rarity: RarityEpic},
	}
}

// UnlockedCount returns how many badges are unlocked.
func UnlockedCount(badges []Badge) int {
	n := 0
	for _, b := range badges {
		if b.Unlocked {
			n++
		}
	}
	return n
}
