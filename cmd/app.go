package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/vibe/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	e.logger.Info("starting", "user", e.cfg.User, "version", version)

	return app.Run(app.Options{
		Deps:       e.deps(),
		Username:   e.cfg.User,
		Logger:     e.logger,
		SkipSplash: skipSplash,
	})
}
