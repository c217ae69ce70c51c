package main

import (
	"errors"
	"os"

	cvfolio "github.com/alnah/go-cvfolio"
	"github.com/alnah/go-cvfolio/internal/config"
)

// Exit codes for the cvfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, load failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, cvfolio.ErrBrowserConnect) ||
		errors.Is(err, cvfolio.ErrPageCreate) ||
		errors.Is(err, cvfolio.ErrPageLoad) ||
		errors.Is(err, cvfolio.ErrRasterize) {
		return ExitBrowser
	}

	// I/O and load errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cvfolio.ErrDocumentLoad) ||
		errors.Is(err, cvfolio.ErrResourceStatus) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadData) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, cvfolio.ErrDocumentParse) ||
		errors.Is(err, cvfolio.ErrDocumentInvalid) ||
		errors.Is(err, cvfolio.ErrEmptyDocument) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingArgument) {
		return ExitUsage
	}

	return ExitGeneral
}
