package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-splittext"
	"github.com/alnah/go-splittext/internal/config"
	"github.com/alnah/go-splittext/internal/fileutil"
)

// Exit codes for the splittext CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All input laid out and written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or layout; terminal stdin
	ExitIO      = 3 // Input or output stream failure, missing file
	ExitContent = 4 // Input that cannot be laid out (word wider than a column)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, splittext.ErrWordTooLong) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, splittext.ErrReadInput) ||
		errors.Is(err, splittext.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrFileNotFound) ||
		errors.Is(err, fileutil.ErrIsDirectory) ||
		errors.Is(err, fileutil.ErrCreateOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrValueTooLarge) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, splittext.ErrInvalidLayout) ||
		errors.Is(err, splittext.ErrPageTooNarrow) ||
		errors.Is(err, splittext.ErrInvalidMode) ||
		errors.Is(err, splittext.ErrInvalidInputFormat) ||
		errors.Is(err, ErrTerminalInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, fileutil.ErrEmptyFilePath) ||
		errors.Is(err, errFlagParse) ||
		errors.Is(err, flag.ErrHelp) {
		return ExitUsage
	}

	return ExitGeneral
}
