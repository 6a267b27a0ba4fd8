package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/vibe/internal/config"
	"github.com/abhisek/vibe/internal/logging"
	profilescreen "github.com/abhisek/vibe/internal/screens/profile"
	"github.com/abhisek/vibe/internal/store"
)

// env is what every command needs: config, logger and an open store.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	logs   io.Closer
}

// openEnv loads config, applies --db and --user, and opens the store.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.User = u
	}
	if cfg.User == "" {
		return nil, errors.New("no user: pass --user or set VIBE_USER")
	}

	logger, logs, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath, "user", cfg.User)

	return &env{cfg: cfg, logger: logger, store: st, logs: logs}, nil
}

func (e *env) Close() error {
	return errors.Join(e.store.Close(), e.logs.Close())
}

// profiles returns the profile repository validating against the
// configured catalog.
func (e *env) profiles() *store.ProfileRepo {
	return e.store.Profiles(e.cfg.Catalog())
}

// deps wires the store into the profile overlay.
func (e *env) deps() profilescreen.Deps {
	profiles := e.profiles()
	return profilescreen.Deps{
		Profiles:    profiles,
		Stats:       e.store.Stats(),
		Activity:    e.store.Activity(),
		Saver:       profiles.Saver(e.cfg.User),
		Catalog:     e.cfg.Catalog(),
		SaveTimeout: e.cfg.SaveTimeout,
		Logger:      e.logger,
	}
}
