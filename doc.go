// Package xmldoc2html renders a Visual Studio XML documentation export as a
// single styled HTML page.
//
// # Quick Start
//
//	result, err := xmldoc2html.ConvertFile("bin/Debug/net9.0/MyLib.xml", "MyLib.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d members\n", result.Members)
//
// # Input
//
// Every <member> element found below the root, at any depth, becomes one
// block in the output, in document order. A member contributes its name
// attribute and the text of its first <summary> child:
//
//	<doc>
//	  <members>
//	    <member name="M:MyLib.Client.Send">
//	      <summary>Sends a request.</summary>
//	    </member>
//	  </members>
//	</doc>
//
// Summary text includes the text of nested elements such as <c>, with
// whitespace runs collapsed to one space; empty elements like <see/> add
// nothing. Members without a name are rendered as "Unknown"; members without
// summary text get a muted "No summary available." marker.
//
// # Output
//
// A self-contained HTML5 page: the stylesheet returned by Stylesheet is
// inlined, and all text taken from the input is HTML-escaped.
//
// # Errors
//
// ConvertFile wraps ErrInputNotFound, ErrReadInput, ErrParse or
// ErrWriteOutput. OutcomeOf folds any of them into an Outcome for callers
// that only need the category, such as a CLI choosing its exit status.
package xmldoc2html
