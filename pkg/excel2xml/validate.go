package excel2xml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// resourceTags are the top-level elements that carry an xsd:ID.
var resourceTags = map[string]bool{
	"resource":      true,
	"annotation":    true,
	"region":        true,
	"link":          true,
	"video-segment": true,
	"audio-segment": true,
}

// referenceTags hold the ID of another resource as text.
var referenceTags = map[string]bool{
	"resptr":      true,
	"isSegmentOf": true,
	"relatesTo":   true,
}

// Validate checks the constraints of the import format that the XSD
// expresses through xsd:ID and xsd:IDREF: IDs are well-formed and unique,
// permissions attributes name a permissions block, and resource references
// point to a resource of the document (or are absolute IRIs).
func Validate(root *etree.Element) error {
	if root == nil || root.Tag != "knora" {
		return fmt.Errorf("%w: root element must be <knora>", core.ErrInvalidDocument)
	}

	var errs []error
	ids := make(map[string]string)
	permissions := make(map[string]bool)
	for _, child := range root.ChildElements() {
		id := child.SelectAttrValue("id", "")
		if child.Tag != "permissions" && !resourceTags[child.Tag] {
			errs = append(errs, fmt.Errorf("unexpected element <%s>", child.Tag))
			continue
		}
		if !IsXSDID(id) {
			errs = append(errs, fmt.Errorf("<%s> has an invalid id %q", child.Tag, id))
			continue
		}
		if prev, dup := ids[id]; dup {
			errs = append(errs, fmt.Errorf("id %q is used by <%s> and <%s>", id, prev, child.Tag))
			continue
		}
		ids[id] = child.Tag
		if child.Tag == "permissions" {
			permissions[id] = true
		}
	}

	for _, child := range root.ChildElements() {
		if !resourceTags[child.Tag] {
			continue
		}
		owner := child.SelectAttrValue("id", "")
		errs = append(errs, checkReferences(child, owner, ids, permissions)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", core.ErrInvalidDocument, errors.Join(errs...))
	}
	return nil
}

func checkReferences(el *etree.Element, owner string, ids map[string]string, permissions map[string]bool) []error {
	var errs []error
	if perm := el.SelectAttrValue("permissions", ""); perm != "" && !permissions[perm] {
		errs = append(errs, fmt.Errorf("%s: <%s> uses unknown permissions %q", owner, el.Tag, perm))
	}
	if referenceTags[el.Tag] {
		target := strings.TrimSpace(el.Text())
		if _, ok := ids[target]; !ok && !strings.HasPrefix(target, "http") {
			errs = append(errs, fmt.Errorf("%s: <%s> points to unknown id %q", owner, el.Tag, target))
		}
	}
	for _, child := range el.ChildElements() {
		errs = append(errs, checkReferences(child, owner, ids, permissions)...)
	}
	return errs
}
