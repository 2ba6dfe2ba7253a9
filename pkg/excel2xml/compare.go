package excel2xml

import (
	"fmt"
	"slices"

	"github.com/beevik/etree"
	"github.com/pmezard/go-difflib/difflib"
)

// Normalize brings a data file into a canonical form for comparisons:
// random ID suffixes are removed, the children of every element are sorted
// by their id attribute (stable, elements without id keep their order),
// attributes are sorted and the result is re-indented. Comments between
// elements are dropped.
func Normalize(xml string) (string, error) {
	derandomized, err := DerandomizeXSDID(xml, true)
	if err != nil {
		return "", err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(derandomized); err != nil {
		return "", fmt.Errorf("failed to parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("xml has no root element")
	}
	sortByID(root)

	return newDocument(root, "  ").WriteToString()
}

func sortByID(e *etree.Element) {
	e.SortAttrs()
	children := e.ChildElements()
	if !hasText(e) {
		for len(e.Child) > 0 {
			e.RemoveChildAt(0)
		}
		slices.SortStableFunc(children, func(a, b *etree.Element) int {
			ida, idb := a.SelectAttrValue("id", ""), b.SelectAttrValue("id", "")
			switch {
			case ida < idb:
				return -1
			case ida > idb:
				return 1
			}
			return 0
		})
		for _, c := range children {
			e.AddChild(c)
		}
	}
	for _, c := range children {
		sortByID(c)
	}
}

// Equivalent reports whether two data files are equal after Normalize.
func Equivalent(a, b string) (bool, error) {
	na, err := Normalize(a)
	if err != nil {
		return false, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return false, err
	}
	return na == nb, nil
}

// Diff returns a unified diff of the normalized forms of two data files.
// An empty string means the files are equivalent.
func Diff(a, b, nameA, nameB string) (string, error) {
	na, err := Normalize(a)
	if err != nil {
		return "", fmt.Errorf("%s: %w", nameA, err)
	}
	nb, err := Normalize(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", nameB, err)
	}
	if na == nb {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(na),
		B:        difflib.SplitLines(nb),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  3,
	})
}
