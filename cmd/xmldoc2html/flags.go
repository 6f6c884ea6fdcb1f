package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag. Empty strings mean "not set".
type cliFlags struct {
	config  string
	input   string
	output  string
	title   string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (without the program name) and returns positional args.
// Returns flag.ErrHelp when -h/--help is given.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("xmldoc2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.input, "input", "i", "", "XML documentation file")
	fs.StringVarP(&f.output, "output", "o", "", "HTML output file")
	fs.StringVarP(&f.title, "title", "t", "", "page title and heading")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics and timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
