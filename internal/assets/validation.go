package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names carrying path separators,
// dots or NUL bytes, so a name always maps to exactly one file in styles/.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
