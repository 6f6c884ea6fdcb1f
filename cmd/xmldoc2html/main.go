package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args, runs one conversion and returns the process exit code.
// Every failure is reported on env.Stderr before returning.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err == nil && len(positional) > 0 {
		err = fmt.Errorf("%w: %v", ErrUnexpectedArgs, positional)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'xmldoc2html --help' for usage.")
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "go-xmldoc2html %s\n", Version)
		return ExitSuccess
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		reportConfigError(env, err, flags)
		return exitCodeFor(err)
	}

	if err := runConvert(cfg, flags, env); err != nil {
		reportConversionError(env, err, cfg, flags.verbose)
		return exitCodeFor(err)
	}

	return ExitSuccess
}
