package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrNoCommand indicates the CLI was invoked without a command.
var ErrNoCommand = errors.New("no command specified, run 'cvfolio help'")

// cliFlags holds flags shared across commands.
type cliFlags struct {
	config   string
	data     string
	baseURL  string
	out      string
	date     string
	workers  int
	all      bool
	htmlOnly bool
	quiet    bool
	verbose  bool
}

// parseFlags splits os.Args[1:] into the command word, its positional
// arguments, and the parsed flag set. Flags may appear before or after the
// command word; pflag interleaves them.
func parseFlags(args []string) (*cliFlags, string, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("cvfolio", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // Usage is printed by the help command

	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&flags.data, "data", "d", "", "data directory or http(s) base URL")
	fs.StringVarP(&flags.baseURL, "base-url", "b", "", "canonical share base URL")
	fs.StringVarP(&flags.out, "out", "o", "", "output directory")
	fs.StringVar(&flags.date, "date", "", `generation date: "auto", "auto:FORMAT", or literal`)
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&flags.all, "all", false, "export every configured edition")
	fs.BoolVar(&flags.htmlOnly, "html-only", false, "skip rasterization, write HTML")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "show detailed progress")

	if err := fs.Parse(args); err != nil {
		return nil, "", nil, fmt.Errorf("parsing flags: %w", err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return flags, "", nil, nil
	}
	return flags, rest[0], rest[1:], nil
}
