package main

import (
	"errors"
	"os"

	xmldoc2html "github.com/alnah/go-xmldoc2html"
	"github.com/alnah/go-xmldoc2html/internal/config"
)

// Exit codes for the xmldoc2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Input not found, read or write failure
	ExitParse   = 4 // Malformed XML
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, xmldoc2html.ErrParse) {
		return ExitParse
	}

	if errors.Is(err, xmldoc2html.ErrInputNotFound) ||
		errors.Is(err, xmldoc2html.ErrReadInput) ||
		errors.Is(err, xmldoc2html.ErrWriteOutput) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
