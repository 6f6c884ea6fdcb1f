package xmldoc2html

import (
	"strings"

	"github.com/alnah/go-xmldoc2html/internal/assets"
)

var stylesheet = strings.TrimRight(assets.MustLoadStyle(assets.DefaultStyleName), "\n")

// Stylesheet returns the CSS embedded in every generated page.
func Stylesheet() string {
	return stylesheet
}
