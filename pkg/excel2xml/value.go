package excel2xml

import (
	"fmt"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// Encodings of text values.
const (
	EncodingUTF8 = "utf8"
	EncodingXML  = "xml"
)

// Default permission IDs appended by AppendPermissions.
const (
	ResDefault     = "res-default"
	ResRestricted  = "res-restricted"
	PropDefault    = "prop-default"
	PropRestricted = "prop-restricted"
)

// PropertyElement is a single value of a property together with the
// attributes of its value element.
type PropertyElement struct {
	Value       string
	Permissions string // defaults to PropDefault
	Comment     string
	Encoding    string // only used by text properties, defaults to EncodingUTF8
}

// Value wraps a plain value with default permissions.
func Value(v string) PropertyElement {
	return PropertyElement{Value: v}
}

// Values wraps several plain values with default permissions.
func Values(vs ...string) []PropertyElement {
	out := make([]PropertyElement, 0, len(vs))
	for _, v := range vs {
		out = append(out, Value(v))
	}
	return out
}

func (p PropertyElement) permissions() string {
	if p.Permissions == "" {
		return PropDefault
	}
	return p.Permissions
}

func (p PropertyElement) encoding() string {
	if p.Encoding == "" {
		return EncodingUTF8
	}
	return p.Encoding
}

// checkValues rejects empty value lists and values without usable content.
func checkValues(name string, values []PropertyElement) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: property %q has no values", core.ErrInvalidValue, name)
	}
	for _, v := range values {
		if !CheckNotNA(v.Value) {
			return fmt.Errorf("%w: property %q has an empty value %q", core.ErrInvalidValue, name, v.Value)
		}
		if v.Encoding != "" && v.Encoding != EncodingUTF8 && v.Encoding != EncodingXML {
			return fmt.Errorf("%w: property %q has unknown encoding %q", core.ErrInvalidValue, name, v.Encoding)
		}
	}
	return nil
}
