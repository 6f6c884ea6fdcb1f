package xmldoc2html

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

const (
	memberTag  = "member"
	summaryTag = "summary"
	nameAttr   = "name"
)

// ExtractMember reads the name attribute and the first <summary> child of el.
// Runs of whitespace in the summary text collapse to one space.
// Missing pieces fall back to UnknownMemberName and NoSummaryHTML.
func ExtractMember(el *etree.Element) Member {
	m := Member{Name: UnknownMemberName, SummaryHTML: NoSummaryHTML}
	if el == nil {
		return m
	}

	if attr := el.SelectAttr(nameAttr); attr != nil {
		m.Name = attr.Value
	}

	if summary := el.SelectElement(summaryTag); summary != nil {
		if text := collapseSpace(innerText(summary)); text != "" {
			m.SummaryHTML = html.EscapeString(text)
		}
	}

	return m
}

// FindMembers returns every <member> element below root in depth-first
// pre-order. root itself is not included.
func FindMembers(root *etree.Element) []*etree.Element {
	if root == nil {
		return nil
	}
	var members []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == memberTag {
				members = append(members, child)
			}
			walk(child)
		}
	}
	walk(root)
	return members
}

// innerText concatenates the character data of e and its descendants.
func innerText(e *etree.Element) string {
	var sb strings.Builder
	var collect func(*etree.Element)
	collect = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				sb.WriteString(t.Data)
			case *etree.Element:
				collect(t)
			}
		}
	}
	collect(e)
	return sb.String()
}

// collapseSpace trims s and joins its words with single spaces, so an empty
// inline element such as <see cref="..."/> leaves no double gap behind.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
