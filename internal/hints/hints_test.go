package hints

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForInputNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		wantBuild bool
	}{
		{name: "build output path", path: "MyLib/bin/Debug/net9.0/MyLib.xml", wantBuild: true},
		{name: "relative bin path", path: "bin/Release/MyLib.xml", wantBuild: true},
		{name: "windows build output path", path: `C:\src\MyLib\bin\Debug\MyLib.xml`, wantBuild: filepath.Separator == '\\'},
		{name: "plain path", path: "docs/MyLib.xml", wantBuild: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForInputNotFound(tt.path)
			assert.Contains(t, hint, "\n  hint: ")
			assert.Contains(t, hint, "--input")
			if tt.wantBuild {
				assert.Contains(t, hint, "GenerateDocumentationFile")
			} else {
				assert.NotContains(t, hint, "GenerateDocumentationFile")
			}
		})
	}
}

func TestForParseError(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ForParseError("MyLib.xml"), "well-formed XML")
	assert.Contains(t, ForParseError("notes.txt"), "notes.txt")
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		userPath := filepath.Join("home", "me", ".config", "go-xmldoc2html", "api.yaml")
		hint := ForConfigNotFound([]string{"api.yaml", userPath})
		assert.Contains(t, hint, "--config")
		assert.Contains(t, hint, "or create "+userPath)
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"api.yaml"})
		assert.Equal(t, "\n  hint: use --config /path/to/file.yaml", hint)
	})
}

func TestForOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	assert.Contains(t, ForOutput(filepath.Join(blocker, "out.html")), "is a file, not a directory")
	assert.Contains(t, ForOutput(filepath.Join(dir, "out.html")), "is writable")
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formatHints(nil))
	assert.Empty(t, format(""))
	assert.Equal(t, "\n  hint: a; b", formatHints([]string{"a", "b"}))
}
