package excel2xml

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

type propMaker func(name string, values ...PropertyElement) (*etree.Element, error)

func TestValueProps(t *testing.T) {
	boolean := func(name string, values ...PropertyElement) (*etree.Element, error) {
		return MakeBooleanProp(name, values[0])
	}
	geometry := func(name string, values ...PropertyElement) (*etree.Element, error) {
		return MakeGeometryProp(name, values[0])
	}

	tests := []struct {
		name    string
		make    propMaker
		tag     string
		in      string
		want    string
		wantErr bool
	}{
		{"boolean true", boolean, "boolean-prop", "TRUE", "true", false},
		{"boolean no", boolean, "boolean-prop", "no", "false", false},
		{"boolean invalid", boolean, "", "maybe", "", true},
		{"color", MakeColorProp, "color-prop", "#5d1f1e", "#5d1f1e", false},
		{"color name", MakeColorProp, "", "red", "", true},
		{"date", MakeDateProp, "date-prop", "GREGORIAN:CE:1849:CE:1850", "GREGORIAN:CE:1849:CE:1850", false},
		{"date unparsed", MakeDateProp, "", "1849/50", "", true},
		{"time", MakeTimeProp, "time-prop", "2019-10-23T13:45:12.01-14:00", "2019-10-23T13:45:12.01-14:00", false},
		{"time without zone", MakeTimeProp, "", "2019-10-23T13:45:12", "", true},
		{"decimal integer", MakeDecimalProp, "decimal-prop", "5", "5.0", false},
		{"decimal", MakeDecimalProp, "decimal-prop", "0.35", "0.35", false},
		{"decimal invalid", MakeDecimalProp, "", "5 kg", "", true},
		{"integer", MakeIntegerProp, "integer-prop", "+7", "7", false},
		{"integer float", MakeIntegerProp, "", "1.5", "", true},
		{"geoname", MakeGeonameProp, "geoname-prop", "2661604", "2661604", false},
		{"geoname name", MakeGeonameProp, "", "Bern", "", true},
		{"uri", MakeURIProp, "uri-prop", "https://en.wikipedia.org/wiki/Anubis", "https://en.wikipedia.org/wiki/Anubis", false},
		{"uri relative", MakeURIProp, "", "www.example.com", "", true},
		{"interval", MakeIntervalProp, "interval-prop", "0:5.5", "0:5.5", false},
		{"interval invalid", MakeIntervalProp, "", "0-5", "", true},
		{"resptr", MakeResptrProp, "resptr-prop", "Anubis_1", "Anubis_1", false},
		{"resptr iri", MakeResptrProp, "resptr-prop", "http://rdfh.ch/4123/abc", "http://rdfh.ch/4123/abc", false},
		{"resptr label", MakeResptrProp, "", "Anubis statue", "", true},
		{"geometry", geometry, "geometry-prop", `{"type": "polygon", "points": [{"x": 0.1, "y": 0.2}]}`, `{"type": "polygon", "points": [{"x": 0.1, "y": 0.2}]}`, false},
		{"geometry circle without radius", geometry, "", `{"type": "circle", "points": [{"x": 0.1, "y": 0.2}]}`, "", true},
		{"geometry without points", geometry, "", `{"type": "rectangle", "points": []}`, "", true},
		{"geometry not json", geometry, "", `rectangle`, "", true},
		{"empty", MakeColorProp, "", " ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, err := tt.make(":prop", Value(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tag, prop.Tag)
			assert.Equal(t, ":prop", prop.SelectAttrValue("name", ""))
			values := prop.ChildElements()
			require.Len(t, values, 1)
			assert.Equal(t, tt.want, values[0].Text())
			assert.Equal(t, PropDefault, values[0].SelectAttrValue("permissions", ""))
		})
	}
}

func TestMultipleValues(t *testing.T) {
	prop, err := MakeResptrProp("hasLinkTo", Values("a_1", "b_2")...)
	require.NoError(t, err)
	values := prop.ChildElements()
	require.Len(t, values, 2)
	assert.Equal(t, "a_1", values[0].Text())
	assert.Equal(t, "b_2", values[1].Text())

	_, err = MakeColorProp(":hasColor")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestMakeTextProp(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		prop, err := MakeTextProp(":hasName", PropertyElement{Value: "Bowl", Permissions: PropRestricted, Comment: "note"})
		require.NoError(t, err)
		text := prop.SelectElement("text")
		require.NotNil(t, text)
		assert.Equal(t, "Bowl", text.Text())
		assert.Equal(t, PropRestricted, text.SelectAttrValue("permissions", ""))
		assert.Equal(t, "note", text.SelectAttrValue("comment", ""))
		assert.Equal(t, EncodingUTF8, text.SelectAttrValue("encoding", ""))
	})

	t.Run("rich text keeps markup", func(t *testing.T) {
		prop, err := MakeTextProp(":hasDescription", PropertyElement{Value: "Statue of <strong>Anubis</strong>", Encoding: EncodingXML})
		require.NoError(t, err)
		text := prop.SelectElement("text")
		require.NotNil(t, text)
		assert.Equal(t, "Statue of ", text.Text())
		strong := text.SelectElement("strong")
		require.NotNil(t, strong)
		assert.Equal(t, "Anubis", strong.Text())
	})

	t.Run("malformed rich text is escaped", func(t *testing.T) {
		prop, err := MakeTextProp(":hasDescription", PropertyElement{Value: "A meteorite & its history", Encoding: EncodingXML})
		require.NoError(t, err)
		text := prop.SelectElement("text")
		assert.Equal(t, "A meteorite & its history", text.Text())
		assert.Empty(t, text.ChildElements())
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := MakeTextProp(":hasName", PropertyElement{Value: "x", Encoding: "html"})
		assert.ErrorIs(t, err, core.ErrInvalidValue)
	})
}

func TestSingleValueProps(t *testing.T) {
	_, err := MakeGeometryProp("hasGeometry", Value(""))
	assert.ErrorIs(t, err, core.ErrInvalidValue)
	assert.NoError(t, single("x", Values("a")))
	assert.ErrorIs(t, single("x", Values("a", "b")), core.ErrInvalidValue)
}

func TestMakeListProp(t *testing.T) {
	prop, err := MakeListProp("category", ":hasCategory", Values("artwork", "objects")...)
	require.NoError(t, err)
	assert.Equal(t, "list-prop", prop.Tag)
	assert.Equal(t, "category", prop.SelectAttrValue("list", ""))
	assert.Len(t, prop.SelectElements("list"), 2)

	_, err = MakeListProp("", ":hasCategory", Value("artwork"))
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestBitstream(t *testing.T) {
	el, err := MakeBitstreamProp("images/Anubis.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, "images/Anubis.jpg", el.Text())
	assert.Equal(t, PropDefault, el.SelectAttrValue("permissions", ""))

	_, err = MakeBitstreamProp("", "")
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	dir := t.TempDir()
	assert.ErrorIs(t, CheckBitstream(dir), core.ErrNotFound)
	assert.ErrorIs(t, CheckBitstream(dir+"/missing.jpg"), core.ErrNotFound)
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "5.0", formatDecimal(5))
	assert.Equal(t, "-12.5", formatDecimal(-12.5))
	assert.Equal(t, "0.0", formatDecimal(0))
	assert.Equal(t, "1e-05", formatDecimal(0.00001))
}
