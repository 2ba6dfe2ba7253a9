package excel2xml

import (
	"strings"

	"github.com/beevik/etree"
)

// indentTree pretty-prints e in place with unit per level. Unlike
// etree.Document.Indent, elements holding text (values and rich text with
// markup) are left untouched so their content keeps its exact whitespace.
func indentTree(e *etree.Element, depth int, unit string) {
	if hasText(e) {
		return
	}
	var tokens []etree.Token
	for _, t := range e.Child {
		if cd, ok := t.(*etree.CharData); ok && isBlank(cd) {
			continue
		}
		tokens = append(tokens, t)
	}
	for len(e.Child) > 0 {
		e.RemoveChildAt(0)
	}
	if len(tokens) == 0 {
		return
	}

	inner := "\n" + strings.Repeat(unit, depth+1)
	for _, t := range tokens {
		e.CreateText(inner)
		e.AddChild(t)
		if child, ok := t.(*etree.Element); ok {
			indentTree(child, depth+1, unit)
		}
	}
	e.CreateText("\n" + strings.Repeat(unit, depth))
}

// hasText reports whether e holds non-whitespace character data, i.e. is a
// leaf value or rich text whose child order is significant.
func hasText(e *etree.Element) bool {
	for _, t := range e.Child {
		if cd, ok := t.(*etree.CharData); ok && !isBlank(cd) {
			return true
		}
	}
	return false
}

func isBlank(cd *etree.CharData) bool {
	return !cd.IsCData() && strings.Trim(cd.Data, " \t\r\n") == ""
}

// newDocument wraps root in a document with an XML declaration, indented
// with unit.
func newDocument(root *etree.Element, unit string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")
	doc.SetRoot(root)
	doc.CreateText("\n")
	indentTree(root, 0, unit)
	return doc
}
