package gamify

// Rarity is the tier of a badge.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Color returns the hex color badges of this rarity are drawn with.
func (r Rarity) Color() string {
	switch r {
	case RarityRare:
		return "#06B6D4"
	case RarityEpic:
		return "#A855F7"
	case RarityLegendary:
		return "#F59E0B"
	default:
		return "#6B7280"
	}
}

// StreakRarity returns the rarity tier for a check-in streak in days.
func StreakRarity(days int) Rarity {
	switch {
	case days >= 20:
		return RarityLegendary
	case days >= 15:
		return RarityEpic
	case days >= 10:
		return RarityRare
	default:
		return RarityCommon
	}
}
