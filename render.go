package xmldoc2html

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// RenderHTML builds the complete HTML page for every member under root.
// An empty title falls back to DefaultTitle; a nil root yields a page with
// no member blocks.
func RenderHTML(root *etree.Element, title string) string {
	return renderMembers(FindMembers(root), title)
}

func renderMembers(members []*etree.Element, title string) string {
	if title == "" {
		title = DefaultTitle
	}
	escapedTitle := html.EscapeString(title)

	parts := make([]string, 0, 14+4*len(members))
	parts = append(parts,
		"<!DOCTYPE html>",
		"<html lang='en'>",
		"<head>",
		"    <meta charset='UTF-8'>",
		"    <meta name='viewport' content='width=device-width, initial-scale=1.0'>",
		"    <title>"+escapedTitle+"</title>",
		"    <style>",
		Stylesheet(),
		"    </style>",
		"</head>",
		"<body>",
		"    <h1>"+escapedTitle+"</h1>",
	)

	for _, el := range members {
		m := ExtractMember(el)
		parts = append(parts,
			"    <div class='member-block'>",
			"        <h2><code class='member-name'>"+html.EscapeString(m.Name)+"</code></h2>",
			"        <p>"+m.SummaryHTML+"</p>",
			"    </div>",
		)
	}

	parts = append(parts,
		"</body>",
		"</html>",
	)

	return strings.Join(parts, "\n")
}
