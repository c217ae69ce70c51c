package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-cvfolio/internal/config"
)

// Environment variable names for overriding config values.
const (
	envBaseURL   = "CVFOLIO_BASE_URL"
	envData      = "CVFOLIO_DATA"
	envOutputDir = "CVFOLIO_OUTPUT_DIR"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// resolveConfig builds the effective configuration.
// Precedence: flags > environment > config file > defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := env.Getenv(envBaseURL); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := env.Getenv(envData); v != "" {
		cfg.Site.Data = v
	}
	if v := env.Getenv(envOutputDir); v != "" {
		cfg.Export.OutputDir = v
	}

	if flags.baseURL != "" {
		cfg.Site.BaseURL = flags.baseURL
	}
	if flags.data != "" {
		cfg.Site.Data = flags.data
	}
	if flags.out != "" {
		cfg.Export.OutputDir = flags.out
	}
	if flags.date != "" {
		cfg.Export.Date = flags.date
	}
	if flags.htmlOnly {
		cfg.Export.HTMLOnly = true
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
