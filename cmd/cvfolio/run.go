package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cvfolio "github.com/alnah/go-cvfolio"
	"github.com/alnah/go-cvfolio/internal/config"
	"github.com/alnah/go-cvfolio/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrReadData        = errors.New("failed to read data file")
	ErrWriteOutput     = errors.New("failed to write output file")
)

// run dispatches the command word.
func run(cmd string, args []string, flags *cliFlags, env *Environment) error {
	switch cmd {
	case "":
		return ErrNoCommand
	case "help":
		runHelp(args, env)
		return nil
	case "version":
		fmt.Fprintf(env.Stdout, "cvfolio %s\n", Version)
		return nil
	case "resolve":
		return runResolve(args, flags, env)
	case "stamp":
		return runStamp(args, env)
	case "export":
		return runExport(args, flags, env)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// newSource builds a data source from the configured data location.
func newSource(cfg *config.Config) cvfolio.Source {
	if fileutil.IsURL(cfg.Site.Data) {
		return &cvfolio.HTTPSource{BaseURL: cfg.Site.Data}
	}
	return &cvfolio.FileSource{Dir: cfg.Site.Data}
}

// runResolve resolves a share path and prints the resolution.
func runResolve(args []string, flags *cliFlags, env *Environment) error {
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	loader := cvfolio.NewLoader(newSource(cfg))
	res, err := loader.Resolve(context.Background(), path)
	if err != nil {
		return err
	}

	if res.FellBack && !flags.quiet {
		fmt.Fprintf(env.Stderr, "edition resource unavailable, fell back to default\n")
	}

	edition := res.Edition
	if edition == "" {
		edition = "(default)"
	}
	provided := res.Provided
	if provided == "" {
		provided = "(none)"
	}

	fmt.Fprintf(env.Stdout, "edition:  %s\n", edition)
	fmt.Fprintf(env.Stdout, "stamp:    %s\n", res.Stamp)
	fmt.Fprintf(env.Stdout, "provided: %s\n", provided)
	fmt.Fprintf(env.Stdout, "status:   %s\n", res.Status)
	fmt.Fprintf(env.Stdout, "path:     %s\n", res.Path)
	if cfg.Site.BaseURL != "" {
		fmt.Fprintf(env.Stdout, "share:    %s\n", cvfolio.ShareURL(cfg.Site.BaseURL, res.Edition, res.Stamp))
	}
	return nil
}

// runStamp prints the version stamp of a local CV data file.
func runStamp(args []string, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: cvfolio stamp <cv-data.json>", ErrMissingArgument)
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadData, err)
	}

	doc, err := cvfolio.ParseDocument(data)
	if err != nil {
		return err
	}

	stamp, err := cvfolio.Stamp(doc)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, stamp)
	return nil
}
