package excel2xml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// Segment properties are written as plain elements directly inside
// <video-segment> and <audio-segment>, without a wrapping *-prop element.

func makeSegmentProp(tag string, value PropertyElement, richText bool) (*etree.Element, error) {
	if !CheckNotNA(value.Value) {
		return nil, fmt.Errorf("%w: %s has an empty value %q", core.ErrInvalidValue, tag, value.Value)
	}
	el := etree.NewElement(tag)
	el.CreateAttr("permissions", value.permissions())
	if value.Comment != "" {
		el.CreateAttr("comment", value.Comment)
	}
	if richText {
		setRichText(el, value.Value)
	} else {
		el.SetText(value.Value)
	}
	return el, nil
}

// MakeIsSegmentOfProp points a segment to its video or audio resource.
func MakeIsSegmentOfProp(target PropertyElement) (*etree.Element, error) {
	if !IsXSDID(target.Value) {
		return nil, fmt.Errorf("%w: isSegmentOf target %q is not a resource id", core.ErrInvalidValue, target.Value)
	}
	return makeSegmentProp("isSegmentOf", target, false)
}

// MakeHasSegmentBoundsProp sets start and end of a segment in seconds.
func MakeHasSegmentBoundsProp(start, end float64, permissions string) (*etree.Element, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: segment bounds %v-%v", core.ErrInvalidValue, start, end)
	}
	if permissions == "" {
		permissions = PropDefault
	}
	el := etree.NewElement("hasSegmentBounds")
	el.CreateAttr("segment_start", strconv.FormatFloat(start, 'f', -1, 64))
	el.CreateAttr("segment_end", strconv.FormatFloat(end, 'f', -1, 64))
	el.CreateAttr("permissions", permissions)
	return el, nil
}

// MakeHasTitleProp sets the title of a segment.
func MakeHasTitleProp(value PropertyElement) (*etree.Element, error) {
	return makeSegmentProp("hasTitle", value, false)
}

// MakeHasCommentProp adds a rich text comment to a segment.
func MakeHasCommentProp(value PropertyElement) (*etree.Element, error) {
	return makeSegmentProp("hasComment", value, true)
}

// MakeHasDescriptionProp adds a rich text description to a segment.
func MakeHasDescriptionProp(value PropertyElement) (*etree.Element, error) {
	return makeSegmentProp("hasDescription", value, true)
}

// MakeHasKeywordProp adds a keyword to a segment.
func MakeHasKeywordProp(value PropertyElement) (*etree.Element, error) {
	return makeSegmentProp("hasKeyword", value, false)
}

// MakeRelatesToProp links a segment to another resource.
func MakeRelatesToProp(target PropertyElement) (*etree.Element, error) {
	if !IsXSDID(target.Value) {
		return nil, fmt.Errorf("%w: relatesTo target %q is not a resource id", core.ErrInvalidValue, target.Value)
	}
	return makeSegmentProp("relatesTo", target, false)
}
