package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testDataJSON = `{
	"profile": {"name": "Ada Lovelace", "title": "Engineer"},
	"summary": "First programmer."
}`

// testEnv returns an Environment writing to buffers with no ambient env vars.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
	}, &stdout, &stderr
}

// writeDataDir creates a temp directory with the default and an "acme"
// edition data file.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"cv-data.json", "cv-data-acme.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(testDataJSON), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if err := run("", nil, &cliFlags{}, env); !errors.Is(err, ErrNoCommand) {
		t.Errorf("run(\"\") error = %v, want ErrNoCommand", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if err := run("frobnicate", nil, &cliFlags{}, env); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("run(frobnicate) error = %v, want ErrUnknownCommand", err)
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := run("version", nil, &cliFlags{}, env); err != nil {
		t.Fatalf("run(version) error = %v", err)
	}
	if !strings.Contains(stdout.String(), "cvfolio") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := run("help", nil, &cliFlags{}, env); err != nil {
		t.Fatalf("run(help) error = %v", err)
	}
	for _, want := range []string{"export", "resolve", "stamp"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRunStamp(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	env, stdout, _ := testEnv()

	if err := runStamp([]string{filepath.Join(dir, "cv-data.json")}, env); err != nil {
		t.Fatalf("runStamp() error = %v", err)
	}

	stamp := strings.TrimSpace(stdout.String())
	if len(stamp) != 6 {
		t.Errorf("stamp = %q, want 6 chars", stamp)
	}
}

func TestRunStamp_Errors(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()

	if err := runStamp(nil, env); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("no args error = %v, want ErrMissingArgument", err)
	}
	if err := runStamp([]string{filepath.Join(t.TempDir(), "nope.json")}, env); !errors.Is(err, ErrReadData) {
		t.Errorf("missing file error = %v, want ErrReadData", err)
	}
}

func TestRunResolve(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	env, stdout, _ := testEnv()
	flags := &cliFlags{data: dir, baseURL: "https://cv.example.com"}

	if err := runResolve([]string{"/e/acme"}, flags, env); err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"edition:  acme",
		"provided: (none)",
		"status:   unknown",
		"path:     /e/acme",
		"share:    https://cv.example.com/e/acme/v/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("resolve output missing %q in:\n%s", want, out)
		}
	}
}

func TestRunResolve_Fallback(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	env, stdout, stderr := testEnv()
	flags := &cliFlags{data: dir}

	if err := runResolve([]string{"/e/ghost/v/AB12CD"}, flags, env); err != nil {
		t.Fatalf("runResolve() error = %v", err)
	}

	if !strings.Contains(stderr.String(), "fell back") {
		t.Error("fallback notice missing from stderr")
	}
	out := stdout.String()
	if !strings.Contains(out, "edition:  (default)") {
		t.Errorf("output missing default placeholder:\n%s", out)
	}
	if !strings.Contains(out, "path:     /v/AB12CD") {
		t.Errorf("output missing rewritten path:\n%s", out)
	}
	if !strings.Contains(out, "status:   mismatch") {
		t.Errorf("output missing mismatch status:\n%s", out)
	}
}

func TestRunResolve_MissingData(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	flags := &cliFlags{data: t.TempDir()}

	err := runResolve([]string{"/"}, flags, env)
	if err == nil {
		t.Fatal("runResolve() = nil error with no data files")
	}
	if got := exitCodeFor(err); got != ExitIO {
		t.Errorf("exit code = %d, want %d", got, ExitIO)
	}
}

func TestRunExport_HTMLOnly(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	out := t.TempDir()
	env, stdout, _ := testEnv()
	flags := &cliFlags{data: dir, out: out, htmlOnly: true}

	if err := runExport([]string{"/e/acme"}, flags, env); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	artifact := filepath.Join(out, "cv-acme.html")
	content, err := os.ReadFile(artifact) // #nosec G304 -- test-owned path
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !strings.Contains(string(content), "Ada Lovelace") {
		t.Error("exported HTML missing document content")
	}
	if !strings.Contains(stdout.String(), artifact) {
		t.Errorf("stdout does not mention %s:\n%s", artifact, stdout.String())
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(cfgPath, []byte("site:\n  baseURL: https://file.example.com\n  data: ./from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	env := &Environment{
		Getenv: func(key string) string {
			if key == envData {
				return "./from-env"
			}
			return ""
		},
	}
	flags := &cliFlags{config: cfgPath, baseURL: "https://flag.example.com"}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}

	// Flag beats file, env beats file.
	if cfg.Site.BaseURL != "https://flag.example.com" {
		t.Errorf("BaseURL = %q, want flag value", cfg.Site.BaseURL)
	}
	if cfg.Site.Data != "./from-env" {
		t.Errorf("Data = %q, want env value", cfg.Site.Data)
	}
}

func TestOutputFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		edition  string
		htmlOnly bool
		want     string
	}{
		{edition: "", htmlOnly: false, want: "cv.pdf"},
		{edition: "acme", htmlOnly: false, want: "cv-acme.pdf"},
		{edition: "", htmlOnly: true, want: "cv.html"},
		{edition: "acme", htmlOnly: true, want: "cv-acme.html"},
	}

	for _, tt := range tests {
		if got := outputFilename(tt.edition, tt.htmlOnly); got != tt.want {
			t.Errorf("outputFilename(%q, %v) = %q, want %q", tt.edition, tt.htmlOnly, got, tt.want)
		}
	}
}
