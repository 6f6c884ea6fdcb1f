package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-xmldoc2html/internal/fileutil"
	"github.com/alnah/go-xmldoc2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxTitleLength = 200
)

// Fixed defaults used when neither a config file nor a flag says otherwise.
const (
	DefaultInputPath  = "NuGetInspectorApp/bin/Debug/net9.0/NuGetInspectorApp.xml"
	DefaultOutputPath = "NuGetInspectorApp_Doc_Styled.html"
	DefaultTitle      = "NuGetInspectorApp Documentation"
)

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "go-xmldoc2html"

// Config holds everything a single conversion needs from the outside world.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig locates the XML documentation file.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates the generated HTML file.
type OutputConfig struct {
	Path string `yaml:"path"` // Overwritten if it exists
}

// DocumentConfig holds presentation settings.
type DocumentConfig struct {
	Title string `yaml:"title"` // Used for <title> and the top-level heading
}

// DefaultConfig returns the fixed input/output pair and title.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{Path: DefaultInputPath},
		Output:   OutputConfig{Path: DefaultOutputPath},
		Document: DocumentConfig{Title: DefaultTitle},
	}
}

// Validate checks field lengths. Called by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength("document.title", c.Document.Title, MaxTitleLength)
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a config by file path or by name.
// A value containing a path separator is read as-is; a bare name is searched
// as NAME.yaml / NAME.yml in the working directory, then in the user config
// directory. Keys left empty in the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fromFile Config
	if err := yamlutil.UnmarshalStrict(data, &fromFile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := fromFile.Validate(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Merge(&fromFile)
	return cfg, nil
}

// Merge copies every non-empty field of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Input.Path != "" {
		c.Input.Path = other.Input.Path
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Document.Title != "" {
		c.Document.Title = other.Document.Title
	}
}

// SearchPaths lists the files LoadConfig tries for a bare config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
