package profile

import (
	"slices"
	"strings"
)

// DefaultYearOptions is the year-of-study catalog used when none is configured.
var DefaultYearOptions = []string{
	"1st Year",
	"2nd Year",
	"3rd Year",
	"4th Year",
	"Graduate",
}

// DefaultInterestOptions is the interest tag catalog used when none is configured.
var DefaultInterestOptions = []string{
	"Studying",
	"Sports",
	"Gym",
	"Badminton",
	"Gaming",
	"Music",
	"Coding",
	"Events",
	"Reading",
}

// Catalog holds the fixed option lists the editor validates against.
type Catalog struct {
	years     []string
	interests []string
}

// NewCatalog builds a Catalog. Blank entries are dropped and an empty list
// falls back to the default.
func NewCatalog(years, interests []string) Catalog {
	return Catalog{
		years:     cleanOptions(years, DefaultYearOptions),
		interests: cleanOptions(interests, DefaultInterestOptions),
	}
}

func cleanOptions(opts, def []string) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		o = strings.TrimSpace(o)
		if o != "" && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return slices.Clone(def)
	}
	return out
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(nil, nil)
}

// YearOptions returns a copy of the year catalog in display order.
func (c Catalog) YearOptions() []string {
	return slices.Clone(c.years)
}

// InterestOptions returns a copy of the interest catalog in display order.
func (c Catalog) InterestOptions() []string {
	return slices.Clone(c.interests)
}

// HasInterest reports whether label is in the interest catalog.
func (c Catalog) HasInterest(label string) bool {
	return slices.Contains(c.interests, label)
}

// HasYear reports whether year is in the year catalog.
func (c Catalog) HasYear(year string) bool {
	return slices.Contains(c.years, year)
}

// DisplayStyle is how an interest tag is drawn.
type DisplayStyle struct {
	Icon  string
	Color string // hex
}

// FallbackStyle is used for labels with no entry in InterestStyles.
var FallbackStyle = DisplayStyle{Icon: "★", Color: "#60A5FA"}

// InterestStyles maps interest labels to their display style.
var InterestStyles = map[string]DisplayStyle{
	"Studying":  {Icon: "✎", Color: "#60A5FA"},
	"Sports":    {Icon: "♜", Color: "#FB923C"},
	"Gym":       {Icon: "⚒", Color: "#FB7185"},
	"Badminton": {Icon: "⚡", Color: "#4ADE80"},
	"Gaming":    {Icon: "◈", Color: "#C084FC"},
	"Music":     {Icon: "♫", Color: "#F472B6"},
	"Coding":    {Icon: "⌘", Color: "#22D3EE"},
	"Events":    {Icon: "☻", Color: "#FBBF24"},
	"Reading":   {Icon: "❡", Color: "#818CF8"},
}

// StyleFor returns the display style for label, or FallbackStyle.
func StyleFor(label string) DisplayStyle {
	if s, ok := InterestStyles[label]; ok {
		return s
	}
	return FallbackStyle
}
