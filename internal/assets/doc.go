// Package assets holds the stylesheet embedded in every generated page.
//
// Styles live in styles/{name}.css and are compiled into the binary with
// go:embed. EmbeddedLoader serves them by name; names are validated so they
// cannot reach outside the styles directory.
package assets
