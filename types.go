package xmldoc2html

import "errors"

// DefaultTitle is used for the page title and heading when none is given.
const DefaultTitle = "NuGetInspectorApp Documentation"

// UnknownMemberName replaces a missing name attribute.
const UnknownMemberName = "Unknown"

// NoSummaryHTML is the markup rendered for members without summary text.
// It is already valid HTML and is emitted as-is.
const NoSummaryHTML = `<span class="no-summary">No summary available.</span>`

// Member is the renderable form of one <member> element.
type Member struct {
	Name        string // Raw identifier; escaped when rendered
	SummaryHTML string // Escaped summary text or NoSummaryHTML
}

// Result describes a finished conversion.
type Result struct {
	HTML       string // Complete HTML document
	Members    int    // Number of member blocks in HTML
	OutputPath string // Empty for in-memory renders
}

// Outcome classifies how a conversion ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNotFound
	OutcomeParseError
	OutcomeUnexpected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not found"
	case OutcomeParseError:
		return "parse error"
	default:
		return "unexpected"
	}
}

// OutcomeOf maps an error returned by this package to its Outcome.
// Errors it does not recognize are OutcomeUnexpected.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrInputNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrParse):
		return OutcomeParseError
	default:
		return OutcomeUnexpected
	}
}
