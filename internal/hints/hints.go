// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-xmldoc2html/internal/fileutil"
)

// ForInputNotFound returns hints for a missing XML documentation file.
// When the path points into a build output directory, it reminds the user that
// the compiler only writes the file when documentation generation is enabled.
func ForInputNotFound(path string) string {
	hints := []string{"use --input /path/to/Project.xml"}

	slashed := filepath.ToSlash(path)
	if strings.Contains(slashed, "/bin/") || strings.HasPrefix(slashed, "bin/") {
		hints = append(hints, "set <GenerateDocumentationFile>true</GenerateDocumentationFile> in the project file and rebuild")
	}

	return formatHints(hints)
}

// ForParseError returns a hint for malformed XML input.
func ForParseError(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return format("the file must be well-formed XML with a single root element")
	}
	return format("expected the XML documentation file produced by the compiler, got " + filepath.Base(path))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the first searched user config file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-xmldoc2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutput returns hints for output write errors.
func ForOutput(path string) string {
	dir := filepath.Dir(path)
	if fileutil.FileExists(dir) {
		return format(dir + " is a file, not a directory")
	}
	return format("check " + dir + " is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
