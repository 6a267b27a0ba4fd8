package profile

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{"empty", "", 0},
		{"short", "hello", 5},
		{"exactly max", strings.Repeat("a", 150), 150},
		{"one over", strings.Repeat("a", 151), 150},
		{"way over", strings.Repeat("x", 200), 150},
		{"multibyte over", strings.Repeat("é", 160), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Draft
			d.SetBio(tt.input)
			assert.Equal(t, tt.wantLen, len([]rune(d.Bio)))
			if len([]rune(tt.input)) <= MaxBioLength {
				assert.Equal(t, tt.input, d.Bio)
			} else {
				assert.True(t, strings.HasPrefix(tt.input, d.Bio))
			}
		})
	}
}

func TestToggleInterest_TwiceRestores(t *testing.T) {
	d := NewDraft(nil)
	c := DefaultCatalog()

	d.ToggleInterest(c, "Gaming")
	assert.Equal(t, []string{"Gaming"}, d.Interests)
	d.ToggleInterest(c, "Gaming")
	assert.Empty(t, d.Interests)
}

func TestToggleInterest_PreservesFirstAdditionOrder(t *testing.T) {
	d := NewDraft(nil)
	c := DefaultCatalog()

	for _, l := range []string{"Music", "Gym", "Coding", "Gym", "Reading"} {
		d.ToggleInterest(c, l)
	}
	assert.Equal(t, []string{"Music", "Coding", "Reading"}, d.Interests)
}

func TestToggleInterest_UnknownLabelIsNoop(t *testing.T) {
	d := NewDraft(&Canonical{Interests: []string{"Music"}})
	d.ToggleInterest(DefaultCatalog(), "Knitting")
	d.ToggleInterest(DefaultCatalog(), "music")
	assert.Equal(t, []string{"Music"}, d.Interests)
}

func TestToggleInterest_ParityProperty(t *testing.T) {
	c := DefaultCatalog()
	labels := append(c.InterestOptions(), "Unknown")
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		d := NewDraft(nil)
		counts := map[string]int{}
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			l := labels[rng.Intn(len(labels))]
			d.ToggleInterest(c, l)
			counts[l]++
		}

		seen := map[string]bool{}
		for _, l := range d.Interests {
			assert.False(t, seen[l], "duplicate %q in round %d", l, round)
			seen[l] = true
		}
		for _, l := range c.InterestOptions() {
			assert.Equal(t, counts[l]%2 == 1, d.HasInterest(l), "label %q toggled %d times", l, counts[l])
		}
		assert.False(t, d.HasInterest("Unknown"))
	}
}

func TestNewDraft_NormalizesCanonical(t *testing.T) {
	d := NewDraft(&Canonical{
		Interests: []string{"Music", "Gym", "Music"},
		Bio:       strings.Repeat("b", 180),
	})
	assert.Equal(t, []string{"Music", "Gym"}, d.Interests)
	assert.Len(t, d.Bio, MaxBioLength)
}

func TestNewDraft_DoesNotAliasCanonical(t *testing.T) {
	c := &Canonical{Interests: []string{"Music"}}
	d := NewDraft(c)
	d.ToggleInterest(DefaultCatalog(), "Gym")
	d.ToggleInterest(DefaultCatalog(), "Music")

	assert.Equal(t, []string{"Music"}, c.Interests)
}

func TestSetField(t *testing.T) {
	var d Draft
	d.SetField(FieldDisplayName, "Name")
	d.SetField(FieldYearOfStudy, "not a real year")
	d.SetField(FieldFreeTime, "")
	d.SetField(Field("bio"), "ignored")

	assert.Equal(t, "Name", d.DisplayName)
	assert.Equal(t, "not a real year", d.YearOfStudy)
	assert.Equal(t, "", d.Bio)
}

func TestBioCounter(t *testing.T) {
	d := Draft{Bio: "héllo"}
	assert.Equal(t, "5/150", d.BioCounter())
}

func TestAvatarURLFor(t *testing.T) {
	assert.Equal(t, "https://cdn/a.png", AvatarURLFor(&Canonical{AvatarURL: "https://cdn/a.png"}))
	assert.Equal(t, "https://api.dicebear.com/7.x/notionists/svg?seed=alex", AvatarURLFor(&Canonical{Username: "alex"}))
	assert.Equal(t, "https://api.dicebear.com/7.x/notionists/svg?seed=guest", AvatarURLFor(nil))
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, InterestStyles["Coding"], StyleFor("Coding"))
	assert.Equal(t, FallbackStyle, StyleFor("Knitting"))
}

type reasonErr struct{ reason string }

func (e reasonErr) Error() string  { return "store rejected payload: " + e.reason }
func (e reasonErr) Reason() string { return e.reason }

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("Network error"), "Network error"},
		{"blank", errors.New(""), DefaultSaveErrorMessage},
		{"reason", reasonErr{"bio too long"}, "bio too long"},
		{"wrapped reason", fmt.Errorf("save: %w", reasonErr{"bad year"}), "bad year"},
		{"empty reason", reasonErr{""}, "store rejected payload:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureMessage(tt.err))
		})
	}
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog([]string{" ", ""}, []string{" Chess ", "Hiking", "Chess"})
	assert.Equal(t, DefaultYearOptions, c.YearOptions())
	assert.Equal(t, []string{"Chess", "Hiking"}, c.InterestOptions())
	assert.True(t, c.HasYear("Graduate"))
}
