package main

import (
	"errors"
	"fmt"
	"strings"

	xmldoc2html "github.com/alnah/go-xmldoc2html"
	"github.com/alnah/go-xmldoc2html/internal/config"
	"github.com/alnah/go-xmldoc2html/internal/fileutil"
	"github.com/alnah/go-xmldoc2html/internal/hints"
)

// reportConversionError prints one line naming the error category.
// With verbose, an actionable hint follows when one applies.
func reportConversionError(env *Environment, err error, cfg *config.Config, verbose bool) {
	var prefix, hint string
	switch xmldoc2html.OutcomeOf(err) {
	case xmldoc2html.OutcomeNotFound:
		prefix, hint = "Error", hints.ForInputNotFound(cfg.Input.Path)
	case xmldoc2html.OutcomeParseError:
		prefix, hint = "XML Parse Error", hints.ForParseError(cfg.Input.Path)
	default:
		prefix = "Unexpected error"
		if errors.Is(err, xmldoc2html.ErrWriteOutput) {
			hint = hints.ForOutput(cfg.Output.Path)
		}
	}

	fmt.Fprintf(env.Stderr, "%s: %v\n", prefix, err)
	if verbose && hint != "" {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
	}
}

// reportConfigError prints a config resolution failure.
func reportConfigError(env *Environment, err error, flags *cliFlags) {
	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	if flags.verbose && errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(flags.config) {
		hint := hints.ForConfigNotFound(config.SearchPaths(flags.config))
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
	}
}
