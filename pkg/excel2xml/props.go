package excel2xml

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

var (
	colorPattern    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	datePattern     = regexp.MustCompile(`^(GREGORIAN:|JULIAN:)?(CE:|BCE:|BC:|AD:)?(\d{1,4})(-\d{1,2})?(-\d{1,2})?((:CE|:BCE|:BC|:AD)?:(\d{1,4})(-\d{1,2})?(-\d{1,2})?)?$`)
	timePattern     = regexp.MustCompile(`^\d{4}-[0-1]\d-[0-3]\dT[0-2]\d:[0-5]\d:[0-5]\d(\.\d{1,12})?(Z|[+-][0-1]\d:[0-5]\d)$`)
	geonamePattern  = regexp.MustCompile(`^[0-9]+$`)
	integerPattern  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	intervalPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?:[+-]?\d+(\.\d+)?$`)
)

// normalizer validates a raw value and returns the text written to the XML.
type normalizer func(v string) (string, error)

func identity(v string) (string, error) { return v, nil }

// makeValueProp builds <tag name="..."> with one <valueTag> per value.
func makeValueProp(tag, valueTag, name string, values []PropertyElement, norm normalizer) (*etree.Element, error) {
	if err := checkValues(name, values); err != nil {
		return nil, err
	}
	prop := etree.NewElement(tag)
	prop.CreateAttr("name", name)
	for _, v := range values {
		text, err := norm(strings.TrimSpace(v.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: property %q: %v", core.ErrInvalidValue, name, err)
		}
		el := prop.CreateElement(valueTag)
		el.CreateAttr("permissions", v.permissions())
		if v.Comment != "" {
			el.CreateAttr("comment", v.Comment)
		}
		el.SetText(text)
	}
	return prop, nil
}

func single(name string, values []PropertyElement) error {
	if len(values) > 1 {
		return fmt.Errorf("%w: property %q accepts only one value, got %d", core.ErrInvalidValue, name, len(values))
	}
	return nil
}

// MakeTextProp creates a <text-prop>. Values with EncodingXML are parsed as
// rich text markup; markup that is not well-formed is kept as escaped text.
func MakeTextProp(name string, values ...PropertyElement) (*etree.Element, error) {
	if err := checkValues(name, values); err != nil {
		return nil, err
	}
	prop := etree.NewElement("text-prop")
	prop.CreateAttr("name", name)
	for _, v := range values {
		el := prop.CreateElement("text")
		el.CreateAttr("permissions", v.permissions())
		if v.Comment != "" {
			el.CreateAttr("comment", v.Comment)
		}
		el.CreateAttr("encoding", v.encoding())
		if v.encoding() == EncodingXML {
			setRichText(el, v.Value)
		} else {
			el.SetText(v.Value)
		}
	}
	return prop, nil
}

// setRichText moves the parsed markup of value into el.
func setRichText(el *etree.Element, value string) {
	frag := etree.NewDocument()
	if err := frag.ReadFromString("<text>" + value + "</text>"); err != nil {
		el.SetText(value)
		return
	}
	src := frag.Root()
	for len(src.Child) > 0 {
		el.AddChild(src.Child[0])
	}
}

// MakeBooleanProp creates a <boolean-prop>. Accepted spellings are
// true/false, 1/0 and yes/no in any case.
func MakeBooleanProp(name string, value PropertyElement) (*etree.Element, error) {
	return makeValueProp("boolean-prop", "boolean", name, []PropertyElement{value}, func(v string) (string, error) {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return "true", nil
		case "false", "0", "no":
			return "false", nil
		}
		return "", fmt.Errorf("%q is not a boolean", v)
	})
}

// MakeColorProp creates a <color-prop> with hexadecimal colors (#rrggbb).
func MakeColorProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("color-prop", "color", name, values, func(v string) (string, error) {
		if !colorPattern.MatchString(v) {
			return "", fmt.Errorf("%q is not a color", v)
		}
		return v, nil
	})
}

// MakeDateProp creates a <date-prop>. Values must already be DSP dates,
// see FindDateInString.
func MakeDateProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("date-prop", "date", name, values, func(v string) (string, error) {
		if !datePattern.MatchString(v) {
			return "", fmt.Errorf("%q is not a DSP date", v)
		}
		return v, nil
	})
}

// MakeTimeProp creates a <time-prop> with xsd:dateTimeStamp values.
func MakeTimeProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("time-prop", "time", name, values, func(v string) (string, error) {
		if !timePattern.MatchString(v) {
			return "", fmt.Errorf("%q is not a timestamp with time zone", v)
		}
		return v, nil
	})
}

// MakeDecimalProp creates a <decimal-prop>. Values are written the way a
// float is usually printed by the DSP tooling ("5" becomes "5.0").
func MakeDecimalProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("decimal-prop", "decimal", name, values, func(v string) (string, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%q is not a decimal", v)
		}
		return formatDecimal(f), nil
	})
}

func formatDecimal(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// MakeIntegerProp creates an <integer-prop>.
func MakeIntegerProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("integer-prop", "integer", name, values, func(v string) (string, error) {
		if !integerPattern.MatchString(v) {
			return "", fmt.Errorf("%q is not an integer", v)
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(i), nil
	})
}

// MakeGeonameProp creates a <geoname-prop> with geonames.org identifiers.
func MakeGeonameProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("geoname-prop", "geoname", name, values, func(v string) (string, error) {
		if !geonamePattern.MatchString(v) {
			return "", fmt.Errorf("%q is not a geonames.org identifier", v)
		}
		return v, nil
	})
}

// MakeURIProp creates a <uri-prop>. Values must be absolute URIs.
func MakeURIProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("uri-prop", "uri", name, values, func(v string) (string, error) {
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" || strings.ContainsAny(v, " \t\n") {
			return "", fmt.Errorf("%q is not an absolute URI", v)
		}
		return v, nil
	})
}

// MakeIntervalProp creates an <interval-prop> with "start:end" values in
// seconds.
func MakeIntervalProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("interval-prop", "interval", name, values, func(v string) (string, error) {
		if !intervalPattern.MatchString(v) {
			return "", fmt.Errorf("%q is not an interval", v)
		}
		return v, nil
	})
}

// MakeListProp creates a <list-prop> referencing nodes of listName by their
// names.
func MakeListProp(listName, name string, values ...PropertyElement) (*etree.Element, error) {
	if !CheckNotNA(listName) {
		return nil, fmt.Errorf("%w: property %q has no list name", core.ErrInvalidValue, name)
	}
	prop, err := makeValueProp("list-prop", "list", name, values, identity)
	if err != nil {
		return nil, err
	}
	prop.CreateAttr("list", listName)
	return prop, nil
}

// MakeResptrProp creates a <resptr-prop> pointing to other resources by ID.
func MakeResptrProp(name string, values ...PropertyElement) (*etree.Element, error) {
	return makeValueProp("resptr-prop", "resptr", name, values, func(v string) (string, error) {
		if !IsXSDID(v) && !strings.HasPrefix(v, "http") {
			return "", fmt.Errorf("%q is neither a resource id nor an IRI", v)
		}
		return v, nil
	})
}

// geometry is the subset of the region geometry JSON that is validated.
type geometry struct {
	Type      string   `json:"type"`
	LineColor string   `json:"lineColor"`
	LineWidth *float64 `json:"lineWidth"`
	Points    []struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	} `json:"points"`
	Radius *struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	} `json:"radius"`
}

// MakeGeometryProp creates a <geometry-prop> for regions. The value is the
// JSON geometry produced by the DSP web client.
func MakeGeometryProp(name string, value PropertyElement) (*etree.Element, error) {
	return makeValueProp("geometry-prop", "geometry", name, []PropertyElement{value}, func(v string) (string, error) {
		var g geometry
		if err := json.Unmarshal([]byte(v), &g); err != nil {
			return "", fmt.Errorf("geometry is not valid JSON: %v", err)
		}
		switch g.Type {
		case "rectangle", "polygon":
		case "circle":
			if g.Radius == nil || g.Radius.X == nil || g.Radius.Y == nil {
				return "", fmt.Errorf("circle geometry needs a radius")
			}
		default:
			return "", fmt.Errorf("unknown geometry type %q", g.Type)
		}
		if g.LineColor != "" && !colorPattern.MatchString(g.LineColor) {
			return "", fmt.Errorf("geometry lineColor %q is not a color", g.LineColor)
		}
		if len(g.Points) == 0 {
			return "", fmt.Errorf("geometry has no points")
		}
		for i, p := range g.Points {
			if p.X == nil || p.Y == nil {
				return "", fmt.Errorf("geometry point %d needs x and y", i)
			}
		}
		return v, nil
	})
}

// MakeBitstreamProp creates the <bitstream> of a resource with a file.
// The path is written as given; use CheckBitstream to verify it exists.
func MakeBitstreamProp(path, permissions string) (*etree.Element, error) {
	if !CheckNotNA(path) {
		return nil, fmt.Errorf("%w: bitstream path %q", core.ErrInvalidValue, path)
	}
	if permissions == "" {
		permissions = PropDefault
	}
	el := etree.NewElement("bitstream")
	el.CreateAttr("permissions", permissions)
	el.SetText(path)
	return el, nil
}

// CheckBitstream reports whether the file referenced by a bitstream exists.
func CheckBitstream(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: bitstream %q: %v", core.ErrNotFound, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: bitstream %q is a directory", core.ErrNotFound, path)
	}
	return nil
}
