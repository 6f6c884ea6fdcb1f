package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-xmldoc2html/internal/config"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xmldoc2html [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Visual Studio XML documentation file as a styled HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>     XML documentation file")
	fmt.Fprintln(w, "  -o, --output <path>    HTML output file (overwritten)")
	fmt.Fprintln(w, "  -t, --title <s>        Page title and heading")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show debug diagnostics and timing")
	fmt.Fprintln(w, "      --version          Show version information")
	fmt.Fprintln(w, "  -h, --help             Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Defaults:")
	fmt.Fprintf(w, "  input   %s\n", config.DefaultInputPath)
	fmt.Fprintf(w, "  output  %s\n", config.DefaultOutputPath)
	fmt.Fprintf(w, "  title   %s\n", config.DefaultTitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  invalid flags or config")
	fmt.Fprintln(w, "  3  input not found, or file read/write failure")
	fmt.Fprintln(w, "  4  malformed XML")
}
