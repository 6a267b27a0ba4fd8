package profile

import (
	"fmt"
	"net/url"
	"slices"
)

// Draft is the editable working copy of a profile for one open session.
// Bio never exceeds MaxBioLength runes and Interests holds no duplicates.
type Draft struct {
	DisplayName string
	YearOfStudy string
	Interests   []string
	FreeTime    string
	Bio         string
}

// NewDraft seeds a draft from c. A nil profile yields an empty draft.
func NewDraft(c *Canonical) Draft {
	d := Draft{Interests: []string{}}
	if c == nil {
		return d
	}
	d.DisplayName = c.DisplayName
	d.YearOfStudy = c.YearOfStudy
	d.FreeTime = c.FreeTime
	d.Bio = ClampBio(c.Bio)
	for _, label := range c.Interests {
		if !slices.Contains(d.Interests, label) {
			d.Interests = append(d.Interests, label)
		}
	}
	return d
}

// ClampBio truncates text to MaxBioLength runes.
func ClampBio(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxBioLength {
		return text
	}
	return string(runes[:MaxBioLength])
}

// SetField assigns one of the free-form fields. Unknown fields are ignored.
func (d *Draft) SetField(f Field, value string) {
	switch f {
	case FieldDisplayName:
		d.DisplayName = value
	case FieldYearOfStudy:
		d.YearOfStudy = value
	case FieldFreeTime:
		d.FreeTime = value
	}
}

// SetBio stores text truncated to MaxBioLength runes.
func (d *Draft) SetBio(text string) {
	d.Bio = ClampBio(text)
}

// ToggleInterest removes label if present, otherwise appends it. Labels
// outside the catalog are ignored.
func (d *Draft) ToggleInterest(c Catalog, label string) {
	if !c.HasInterest(label) {
		return
	}
	if i := slices.Index(d.Interests, label); i >= 0 {
		d.Interests = slices.Delete(d.Interests, i, i+1)
		return
	}
	d.Interests = append(d.Interests, label)
}

// HasInterest reports whether label is currently selected.
func (d Draft) HasInterest(label string) bool {
	return slices.Contains(d.Interests, label)
}

// Fields returns the save payload for the draft.
func (d Draft) Fields() Fields {
	interests := slices.Clone(d.Interests)
	if interests == nil {
		interests = []string{}
	}
	return Fields{
		FullName:    d.DisplayName,
		YearOfStudy: d.YearOfStudy,
		Interests:   interests,
		FreeTime:    d.FreeTime,
		Bio:         d.Bio,
	}
}

// BioCounter renders the "n/150" hint shown under the bio input.
func (d Draft) BioCounter() string {
	return fmt.Sprintf("%d/%d", len([]rune(d.Bio)), MaxBioLength)
}

// DisplayNameFor picks the name shown on the card: the draft name, then the
// username, then a placeholder.
func DisplayNameFor(d Draft, c *Canonical) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	if c != nil && c.Username != "" {
		return c.Username
	}
	return "Your Name"
}

// AvatarURLFor returns the canonical avatar URL or a generated one seeded by
// the username.
func AvatarURLFor(c *Canonical) string {
	if c != nil && c.AvatarURL != "" {
		return c.AvatarURL
	}
	seed := "guest"
	if c != nil && c.Username != "" {
		seed = c.Username
	}
	return "https://api.dicebear.com/7.x/notionists/svg?seed=" + url.QueryEscape(seed)
}
