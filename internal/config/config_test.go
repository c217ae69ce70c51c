package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cvfolio.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
site:
  baseURL: https://cv.example.com
  data: ./data
editions:
  - acme
  - startup
export:
  outputDir: dist
  date: auto:long
workers: 2
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Site.BaseURL != "https://cv.example.com" {
		t.Errorf("BaseURL = %q", cfg.Site.BaseURL)
	}
	if cfg.Site.Data != "./data" {
		t.Errorf("Data = %q", cfg.Site.Data)
	}
	if len(cfg.Editions) != 2 || cfg.Editions[0] != "acme" {
		t.Errorf("Editions = %v", cfg.Editions)
	}
	if cfg.Export.OutputDir != "dist" || cfg.Export.Date != "auto:long" {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("empty name error = %v, want ErrEmptyConfigName", err)
	}

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file error = %v, want ErrConfigNotFound", err)
	}

	bad := writeConfig(t, "site: [not a map")
	if _, err := LoadConfig(bad); !errors.Is(err, ErrConfigParse) {
		t.Errorf("malformed YAML error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "site:\n  baseURL: https://cv.example.com\nbogus: true\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("unknown field error = %v, want ErrConfigParse", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{
			name:    "base URL without scheme",
			mutate:  func(c *Config) { c.Site.BaseURL = "cv.example.com" },
			wantErr: ErrInvalidBaseURL,
		},
		{
			name:    "base URL too long",
			mutate:  func(c *Config) { c.Site.BaseURL = "https://" + strings.Repeat("a", MaxBaseURLLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "edition too long",
			mutate:  func(c *Config) { c.Editions = []string{strings.Repeat("e", MaxEditionLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "empty edition",
			mutate: func(c *Config) { c.Editions = []string{""} },
		},
		{
			name:   "negative workers",
			mutate: func(c *Config) { c.Workers = -1 },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			wantFail := tt.name != "defaults valid"
			if wantFail && err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !wantFail && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Site.Data != "." {
		t.Errorf("Data = %q, want current directory", cfg.Site.Data)
	}
	if cfg.Export.Date != "auto" {
		t.Errorf("Date = %q, want auto", cfg.Export.Date)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
