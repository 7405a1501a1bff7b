package main

import (
	"errors"
	"os"

	fontbundle "github.com/alnah/go-fontbundle"
	"github.com/alnah/go-fontbundle/internal/config"
)

// Exit codes for the fontbundle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrReadStylesheet) ||
		errors.Is(err, ErrWriteStylesheet) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, fontbundle.ErrEmptyBaseURL) {
		return ExitUsage
	}

	return ExitGeneral
}
