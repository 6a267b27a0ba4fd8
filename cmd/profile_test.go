package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/profile"
)

func newSetFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "set"}
	c.Flags().String("full-name", "", "")
	c.Flags().String("year", "", "")
	c.Flags().StringSlice("interest", nil, "")
	c.Flags().String("free-time", "", "")
	c.Flags().String("bio", "", "")
	require.NoError(t, c.ParseFlags(args))
	return c
}

func openEditor() *profile.Editor {
	e := profile.NewEditor(profile.DefaultCatalog(), nil)
	e.Reconcile(&profile.Canonical{
		DisplayName: "Priya",
		Username:    "priya",
		YearOfStudy: "2nd Year",
		Interests:   []string{"Coding", "Music"},
		Bio:         "hi",
	}, true)
	return e
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	e := openEditor()
	cmd := newSetFlags(t, "--year", "Graduate", "--bio", strings.Repeat("z", 200))

	require.NoError(t, applyFlags(cmd, e))

	d := e.Draft()
	assert.Equal(t, "Priya", d.DisplayName)
	assert.Equal(t, "Graduate", d.YearOfStudy)
	assert.Equal(t, []string{"Coding", "Music"}, d.Interests)
	assert.Len(t, d.Bio, profile.MaxBioLength)
}

func TestApplyFlags_ClearYear(t *testing.T) {
	e := openEditor()
	require.NoError(t, applyFlags(newSetFlags(t, "--year="), e))
	assert.Equal(t, "", e.Draft().YearOfStudy)
}

func TestApplyFlags_UnknownYear(t *testing.T) {
	e := openEditor()
	cmd := newSetFlags(t, "--full-name", "Priya S", "--year", "5th Year")

	err := applyFlags(cmd, e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown year "5th Year"`)
	assert.Equal(t, "2nd Year", e.Draft().YearOfStudy)
	assert.Equal(t, "Priya", e.Draft().DisplayName)
}

func TestSetInterests(t *testing.T) {
	e := openEditor()
	require.NoError(t, applyFlags(newSetFlags(t, "--interest", "Gym,Coding"), e))
	assert.Equal(t, []string{"Coding", "Gym"}, e.Draft().Interests)

	require.NoError(t, setInterests(e, nil))
	assert.Empty(t, e.Draft().Interests)
}

func TestSetInterests_UnknownLabel(t *testing.T) {
	e := openEditor()
	err := setInterests(e, []string{"Gym", "Knitting"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown interest "Knitting"`)
	assert.Equal(t, []string{"Coding", "Music"}, e.Draft().Interests)
}

func TestPrintCard(t *testing.T) {
	var buf bytes.Buffer
	printCard(&buf, &profile.Canonical{
		Username:    "alex",
		YearOfStudy: "1st Year",
		Interests:   []string{"Gym"},
	}, gamify.Placeholder)

	out := buf.String()
	assert.Contains(t, out, "alex (@alex)")
	assert.Contains(t, out, "Year:      1st Year")
	assert.Contains(t, out, "Interests: Gym")
	assert.NotContains(t, out, "Bio:")
	assert.Contains(t, out, "Level 12  2450/3000 XP  5 day streak  47 check-ins")
	assert.Contains(t, out, "seed=alex")
}
