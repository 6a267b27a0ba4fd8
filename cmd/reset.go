package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vibe/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a profile with its stats and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to delete without --yes")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		err = e.profiles().Delete(cmd.Context(), e.cfg.User)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "No profile for %s\n", e.cfg.User)
			return nil
		}
		if err != nil {
			return err
		}
		e.logger.Info("reset profile", "user", e.cfg.User)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile for %s\n", e.cfg.User)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
