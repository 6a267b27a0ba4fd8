package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit a profile without the TUI",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile card",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		c, err := e.profiles().Get(ctx, e.cfg.User)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no profile for %q (try `vibe seed`)", e.cfg.User)
		}
		if err != nil {
			return err
		}
		sum, err := e.store.Stats().Summary(ctx, e.cfg.User)
		if err != nil {
			return err
		}
		sum = sum.WithDefaults()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Profile *profile.Canonical `json:"profile"`
				Stats   gamify.Summary     `json:"stats"`
			}{c, sum})
		}
		printCard(cmd.OutOrStdout(), c, sum)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long:  "Update profile fields. Only the flags you pass are changed; --interest replaces the whole interest list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		repo := e.profiles()
		c, err := repo.Get(ctx, e.cfg.User)
		if errors.Is(err, store.ErrNotFound) {
			c, err = &profile.Canonical{Username: e.cfg.User, Interests: []string{}}, nil
		}
		if err != nil {
			return err
		}

		editor := profile.NewEditor(e.cfg.Catalog(), repo.Saver(e.cfg.User), profile.WithLogger(e.logger))
		editor.Reconcile(c, true)
		if err := applyFlags(cmd, editor); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, e.cfg.SaveTimeout)
		defer cancel()
		if err := editor.Save(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", e.cfg.User)
		return nil
	},
}

// applyFlags copies the changed flags into the editor's draft.
func applyFlags(cmd *cobra.Command, editor *profile.Editor) error {
	flags := cmd.Flags()
	if flags.Changed("year") {
		year, _ := flags.GetString("year")
		if catalog := editor.Catalog(); year != "" && !catalog.HasYear(year) {
			return fmt.Errorf("unknown year %q (choose from %s)", year, strings.Join(catalog.YearOptions(), ", "))
		}
	}
	for flag, field := range map[string]profile.Field{
		"full-name": profile.FieldDisplayName,
		"year":      profile.FieldYearOfStudy,
		"free-time": profile.FieldFreeTime,
	} {
		if flags.Changed(flag) {
			v, _ := flags.GetString(flag)
			editor.SetField(field, v)
		}
	}
	if flags.Changed("bio") {
		v, _ := flags.GetString("bio")
		editor.SetBio(v)
	}
	if flags.Changed("interest") {
		want, _ := flags.GetStringSlice("interest")
		return setInterests(editor, want)
	}
	return nil
}

// setInterests toggles the draft until it holds exactly want.
func setInterests(editor *profile.Editor, want []string) error {
	catalog := editor.Catalog()
	for _, label := range want {
		if !catalog.HasInterest(label) {
			return fmt.Errorf("unknown interest %q (choose from %s)", label, strings.Join(catalog.InterestOptions(), ", "))
		}
	}
	for _, label := range editor.Draft().Interests {
		if !slices.Contains(want, label) {
			editor.ToggleInterest(label)
		}
	}
	for _, label := range want {
		if !editor.Draft().HasInterest(label) {
			editor.ToggleInterest(label)
		}
	}
	return nil
}

func printCard(w io.Writer, c *profile.Canonical, sum gamify.Summary) {
	d := profile.NewDraft(c)
	fmt.Fprintf(w, "%s (@%s)\n", profile.DisplayNameFor(d, c), c.Username)
	if d.YearOfStudy != "" {
		fmt.Fprintf(w, "  Year:      %s\n", d.YearOfStudy)
	}
	if len(d.Interests) > 0 {
		fmt.Fprintf(w, "  Interests: %s\n", strings.Join(d.Interests, ", "))
	}
	if d.FreeTime != "" {
		fmt.Fprintf(w, "  Free time: %s\n", d.FreeTime)
	}
	if d.Bio != "" {
		fmt.Fprintf(w, "  Bio:       %s\n", d.Bio)
	}
	fmt.Fprintf(w, "  Avatar:    %s\n", profile.AvatarURLFor(c))
	fmt.Fprintf(w, "\n  Level %d  %d/%d XP  %d day streak  %d check-ins\n",
		sum.Level, sum.XP, sum.MaxXP, sum.Streak, sum.Checkins)
}

func init() {
	profileShowCmd.Flags().Bool("json", false, "Print as JSON")

	profileSetCmd.Flags().String("full-name", "", "Display name")
	profileSetCmd.Flags().String("year", "", "Year of study (empty to clear)")
	profileSetCmd.Flags().StringSlice("interest", nil, "Interest tag; repeat or comma-separate")
	profileSetCmd.Flags().String("free-time", "", "When you are usually free")
	profileSetCmd.Flags().String("bio", "", "Short bio, at most 150 characters")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
