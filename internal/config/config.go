// Package config loads and validates the CLI site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvfolio/internal/fileutil"
	"github.com/alnah/go-cvfolio/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
)

// Field length limits.
const (
	MaxBaseURLLength = 2048 // Browser limit
	MaxSourceLength  = 2048 // Directory path or URL
	MaxEditionLength = 100  // Edition identifier
	MaxDateLength    = 60   // "auto:FORMAT" or a literal date
	MaxPathLength    = 4096 // Output directory
)

// Config holds all configuration for resolution and export.
type Config struct {
	Site     SiteConfig   `yaml:"site"`
	Editions []string     `yaml:"editions"`
	Export   ExportConfig `yaml:"export"`
	Workers  int          `yaml:"workers"`
}

// SiteConfig identifies the canonical share origin and the data source.
type SiteConfig struct {
	BaseURL string `yaml:"baseURL"` // Canonical share origin, never the runtime host
	Data    string `yaml:"data"`    // Data directory or http(s) base URL
}

// ExportConfig defines export output options.
type ExportConfig struct {
	OutputDir string `yaml:"outputDir"` // Empty = current directory
	Date      string `yaml:"date"`      // "auto", "auto:FORMAT", or a literal
	HTMLOnly  bool   `yaml:"htmlOnly"`  // Skip rasterization (debugging)
}

// Validate checks field lengths and value shapes.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.baseURL", c.Site.BaseURL, MaxBaseURLLength); err != nil {
		return err
	}
	if c.Site.BaseURL != "" && !fileutil.IsURL(c.Site.BaseURL) {
		return fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidBaseURL, c.Site.BaseURL)
	}

	if err := validateFieldLength("site.data", c.Site.Data, MaxSourceLength); err != nil {
		return err
	}

	for i, ed := range c.Editions {
		if ed == "" {
			return fmt.Errorf("editions[%d]: edition cannot be empty", i)
		}
		if err := validateFieldLength(fmt.Sprintf("editions[%d]", i), ed, MaxEditionLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("export.outputDir", c.Export.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("export.date", c.Export.Date, MaxDateLength); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers: must be >= 0, got %d", c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Site:   SiteConfig{Data: "."},
		Export: ExportConfig{Date: "auto"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-cvfolio/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-cvfolio", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
