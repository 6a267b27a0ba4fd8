package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/profile"
	"github.com/abhisek/vibe/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo profile with stats and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		repo := e.profiles()
		force, _ := cmd.Flags().GetBool("force")

		_, err = repo.Get(ctx, e.cfg.User)
		switch {
		case err == nil && !force:
			return fmt.Errorf("profile for %q already exists (use --force to overwrite)", e.cfg.User)
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return err
		}

		catalog := e.cfg.Catalog()
		years, interests := catalog.YearOptions(), catalog.InterestOptions()
		demo := &profile.Canonical{
			DisplayName: e.cfg.User,
			Username:    e.cfg.User,
			YearOfStudy: years[0],
			Interests:   interests[:min(2, len(interests))],
			FreeTime:    "Weekdays 6-8 PM",
			Bio:         "New here. Say hi!",
		}
		if err := repo.Upsert(ctx, demo); err != nil {
			return err
		}
		if err := e.store.Stats().Put(ctx, e.cfg.User, gamify.Placeholder); err != nil {
			return err
		}
		for _, a := range gamify.DefaultActivity(time.Now()) {
			if _, err := e.store.Activity().Append(ctx, e.cfg.User, a); err != nil {
				return err
			}
		}

		e.logger.Info("seeded profile", "user", e.cfg.User)
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded demo profile for %s\n", e.cfg.User)
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("force", false, "Overwrite an existing profile")
}
