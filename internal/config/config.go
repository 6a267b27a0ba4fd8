package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/vibe/internal/profile"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `env:"VIBE_DB"`

	// User is the username whose profile is opened by default.
	User string `env:"VIBE_USER"`

	// LogFile receives structured logs. Empty means the XDG state dir.
	LogFile  string `env:"VIBE_LOG_FILE"`
	LogLevel string `env:"VIBE_LOG_LEVEL" envDefault:"info"`

	// SaveTimeout bounds a single profile save.
	SaveTimeout time.Duration `env:"VIBE_SAVE_TIMEOUT" envDefault:"10s"`

	YearOptions     []string `env:"VIBE_YEAR_OPTIONS"     envSeparator:","`
	InterestOptions []string `env:"VIBE_INTEREST_OPTIONS" envSeparator:","`
}

// Load parses the environment into a Config and fills path defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.User == "" {
		cfg.User = os.Getenv("USER")
	}
	if cfg.LogFile == "" {
		p, err := defaultLogPath()
		if err != nil {
			return Config{}, err
		}
		cfg.LogFile = p
	}
	return cfg, nil
}

// Catalog returns the option catalogs, falling back to the built-in lists.
func (c Config) Catalog() profile.Catalog {
	return profile.NewCatalog(c.YearOptions, c.InterestOptions)
}

// ResolveDBPath returns DBPath if set, otherwise
// $XDG_DATA_HOME/vibe/vibe.db (or ~/.local/share/vibe/vibe.db).
// The parent directory is created.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, EnsureDir(c.DBPath)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataHome, "vibe", "vibe.db")
	return p, EnsureDir(p)
}

func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "vibe", "vibe.log"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
