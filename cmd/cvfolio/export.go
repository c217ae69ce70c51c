package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	cvfolio "github.com/alnah/go-cvfolio"
	"github.com/alnah/go-cvfolio/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ExportOutcome holds the result of a single export job.
type ExportOutcome struct {
	Path       string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// runExport exports one or more share paths to PDF files.
// With --all, the default edition and every configured edition is exported
// concurrently through an exporter pool.
func runExport(args []string, flags *cliFlags, env *Environment) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	paths := args
	if flags.all {
		paths = []string{"/"}
		for _, ed := range cfg.Editions {
			paths = append(paths, "/e/"+url.PathEscape(ed))
		}
	}
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	if cfg.Export.OutputDir != "" {
		if err := os.MkdirAll(cfg.Export.OutputDir, dirPermissions); err != nil {
			return fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
		}
	}

	loader := cvfolio.NewLoader(newSource(cfg))
	ctx := context.Background()

	var outcomes []ExportOutcome
	if len(paths) == 1 {
		exp, err := cvfolio.NewExporter()
		if err != nil {
			return err
		}
		defer exp.Close()
		outcomes = []ExportOutcome{exportOne(ctx, loader, exp, cfg, paths[0])}
	} else {
		pool := cvfolio.NewExporterPool(cvfolio.ResolvePoolSize(cfg.Workers))
		defer pool.Close()
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "Pool size: %d\n", pool.Size())
		}
		outcomes = exportBatch(ctx, loader, pool, cfg, paths)
	}

	var failed int
	for _, oc := range outcomes {
		if oc.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", oc.Path, oc.Err)
			continue
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", oc.OutputPath, oc.Pages)
		}
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "%s took %s\n", oc.Path, oc.Duration.Round(time.Millisecond))
		}
	}

	if failed > 0 {
		// The first failure's error drives the exit code.
		for _, oc := range outcomes {
			if oc.Err != nil {
				return fmt.Errorf("%d of %d exports failed: %w", failed, len(outcomes), oc.Err)
			}
		}
	}
	return nil
}

// exportOne resolves a share path and writes the exported artifact.
func exportOne(ctx context.Context, loader *cvfolio.Loader, exp *cvfolio.Exporter, cfg *config.Config, path string) ExportOutcome {
	start := time.Now()
	outcome := ExportOutcome{Path: path}

	res, err := loader.Resolve(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	var shareURL string
	if cfg.Site.BaseURL != "" {
		shareURL = cvfolio.ShareURL(cfg.Site.BaseURL, res.Edition, res.Stamp)
	}

	result, err := exp.Export(ctx, res.Document, cvfolio.ExportOptions{
		ShareURL: shareURL,
		Edition:  res.Edition,
		Stamp:    res.Stamp,
		Date:     cfg.Export.Date,
		HTMLOnly: cfg.Export.HTMLOnly,
	})
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outName := outputFilename(res.Edition, cfg.Export.HTMLOnly)
	outPath := filepath.Join(cfg.Export.OutputDir, outName)

	content := result.PDF
	if cfg.Export.HTMLOnly {
		content = result.HTML
	}
	if err := os.WriteFile(outPath, content, filePermissions); err != nil {
		outcome.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return outcome
	}

	outcome.OutputPath = outPath
	outcome.Pages = result.Pages
	outcome.Duration = time.Since(start)
	return outcome
}

// exportBatch processes share paths concurrently using the exporter pool.
func exportBatch(ctx context.Context, loader *cvfolio.Loader, pool *cvfolio.ExporterPool, cfg *config.Config, paths []string) []ExportOutcome {
	concurrency := pool.Size()
	if concurrency > len(paths) {
		concurrency = len(paths)
	}

	outcomes := make([]ExportOutcome, len(paths))
	var wg sync.WaitGroup
	jobs := make(chan int, len(paths))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			exp := pool.Acquire()
			if exp == nil {
				// Exporter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					outcomes[idx] = ExportOutcome{Path: paths[idx], Err: cvfolio.ErrBrowserConnect}
				}
				return
			}
			defer pool.Release(exp)

			for idx := range jobs {
				if ctx.Err() != nil {
					outcomes[idx] = ExportOutcome{Path: paths[idx], Err: ctx.Err()}
					continue
				}
				outcomes[idx] = exportOne(ctx, loader, exp, cfg, paths[idx])
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

// outputFilename returns the artifact name for an edition.
func outputFilename(edition string, htmlOnly bool) string {
	ext := ".pdf"
	if htmlOnly {
		ext = ".html"
	}
	if edition == "" {
		return "cv" + ext
	}
	return "cv-" + edition + ext
}
