package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	xmldoc2html "github.com/alnah/go-xmldoc2html"
	"github.com/alnah/go-xmldoc2html/internal/config"
)

// ErrUnexpectedArgs is returned when positional arguments are given.
var ErrUnexpectedArgs = errors.New("unexpected arguments (use --input and --output)")

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	cfg.Merge(&config.Config{
		Input:    config.InputConfig{Path: flags.input},
		Output:   config.OutputConfig{Path: flags.output},
		Document: config.DocumentConfig{Title: flags.title},
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runConvert converts cfg.Input.Path to cfg.Output.Path and reports the result.
func runConvert(cfg *config.Config, flags *cliFlags, env *Environment) error {
	opts := []xmldoc2html.Option{xmldoc2html.WithTitle(cfg.Document.Title)}
	if flags.verbose {
		handler := slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, xmldoc2html.WithLogger(slog.New(handler)))
	}

	start := env.Now()
	result, err := xmldoc2html.NewConverter(opts...).ConvertFile(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		return err
	}

	if flags.quiet {
		return nil
	}
	if flags.verbose {
		elapsed := env.Now().Sub(start)
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", cfg.Input.Path, result.OutputPath, elapsed.Round(time.Millisecond))
	}
	fmt.Fprintf(env.Stdout, "Styled documentation written to %s\n", result.OutputPath)
	fmt.Fprintf(env.Stdout, "Processed %d documentation members\n", result.Members)
	return nil
}
