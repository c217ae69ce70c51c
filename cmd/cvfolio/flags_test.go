package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		wantRest []string
		check    func(t *testing.T, f *cliFlags)
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantCmd: "",
		},
		{
			name:    "bare command",
			args:    []string{"export"},
			wantCmd: "export",
		},
		{
			name:     "command with positional",
			args:     []string{"resolve", "/e/acme"},
			wantCmd:  "resolve",
			wantRest: []string{"/e/acme"},
		},
		{
			name:    "flags before command",
			args:    []string{"--data", "./data", "export"},
			wantCmd: "export",
			check: func(t *testing.T, f *cliFlags) {
				if f.data != "./data" {
					t.Errorf("data = %q", f.data)
				}
			},
		},
		{
			name:    "flags after command",
			args:    []string{"export", "--all", "-o", "dist", "--html-only"},
			wantCmd: "export",
			check: func(t *testing.T, f *cliFlags) {
				if !f.all || f.out != "dist" || !f.htmlOnly {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name:    "shorthand flags",
			args:    []string{"-c", "site", "-b", "https://cv.example.com", "-w", "4", "-q", "export"},
			wantCmd: "export",
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "site" || f.baseURL != "https://cv.example.com" || f.workers != 4 || !f.quiet {
					t.Errorf("flags = %+v", f)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flags, cmd, rest, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %q, want %q", cmd, tt.wantCmd)
			}
			if len(rest) != len(tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			} else {
				for i := range rest {
					if rest[i] != tt.wantRest[i] {
						t.Errorf("rest[%d] = %q, want %q", i, rest[i], tt.wantRest[i])
					}
				}
			}
			if tt.check != nil {
				tt.check(t, flags)
			}
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, _, err := parseFlags([]string{"--bogus"}); err == nil {
		t.Error("parseFlags(--bogus) = nil error")
	}
}
