package assets

// DefaultStyleName is the stylesheet every rendered page embeds.
const DefaultStyleName = "default"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// MustLoadStyle is like LoadStyle but panics on error. It is meant for
// package-level initialization of styles compiled into the binary.
func MustLoadStyle(name string) string {
	css, err := LoadStyle(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return css
}
