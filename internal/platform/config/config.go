package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HomePath    string
	DBPath      string
	NotesPath   string
	SkipInvalid bool
}

// Env holds the FITSTAT_* overrides. Empty values leave the derived defaults alone.
type Env struct {
	HomePath    string `env:"FITSTAT_HOME"`
	DBPath      string `env:"FITSTAT_DB_PATH"`
	SkipInvalid bool   `env:"FITSTAT_SKIP_INVALID" envDefault:"false"`
}

func New(homePath string) (Config, error) {
	if homePath == "" {
		return Config{}, fmt.Errorf("home path is required")
	}
	return Config{
		HomePath:  homePath,
		DBPath:    filepath.Join(homePath, ".fitstat", "fitstat.db"),
		NotesPath: filepath.Join(homePath, "workouts"),
	}, nil
}

// ParseEnv loads the FITSTAT_* environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Load resolves the home directory (flag first, then FITSTAT_HOME) and
// applies the remaining environment overrides.
func Load(homeFlag string, homeFlagSet bool) (Config, error) {
	e, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	home := homeFlag
	if !homeFlagSet && e.HomePath != "" {
		home = e.HomePath
	}
	cfg, err := New(home)
	if err != nil {
		return Config{}, err
	}
	if e.DBPath != "" {
		cfg.DBPath = e.DBPath
	}
	cfg.SkipInvalid = e.SkipInvalid
	return cfg, nil
}
