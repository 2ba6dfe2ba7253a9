package excel2xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

func TestMakeRoot(t *testing.T) {
	root := AppendPermissions(MakeRoot("00A1", "import"))

	assert.Equal(t, "knora", root.Tag)
	assert.Equal(t, "00A1", root.SelectAttrValue("shortcode", ""))
	assert.Equal(t, "import", root.SelectAttrValue("default-ontology", ""))
	assert.Equal(t, Namespace, root.SelectAttrValue("xmlns", ""))

	perms := root.SelectElements("permissions")
	require.Len(t, perms, 4)
	var ids []string
	for _, p := range perms {
		ids = append(ids, p.SelectAttrValue("id", ""))
	}
	assert.Equal(t, []string{ResDefault, ResRestricted, PropDefault, PropRestricted}, ids)

	// restricted permissions hide the resource from unknown users
	assert.Len(t, perms[0].SelectElements("allow"), 4)
	assert.Len(t, perms[1].SelectElements("allow"), 3)
	assert.Equal(t, "CR", perms[0].SelectElements("allow")[3].Text())
}

func TestMakeResource(t *testing.T) {
	res, err := MakeResource("Anubis", ":Object", "Anubis_1")
	require.NoError(t, err)
	assert.Equal(t, "resource", res.Tag)
	assert.Equal(t, "Anubis", res.SelectAttrValue("label", ""))
	assert.Equal(t, ":Object", res.SelectAttrValue("restype", ""))
	assert.Equal(t, "Anubis_1", res.SelectAttrValue("id", ""))
	assert.Equal(t, ResDefault, res.SelectAttrValue("permissions", ""))
	assert.Nil(t, res.SelectAttr("ark"))

	t.Run("options", func(t *testing.T) {
		res, err := MakeResource("Anubis", ":Object", "Anubis_1",
			WithPermissions(ResRestricted),
			WithARK("ark:/72163/4123-31ec6eab334-a.2022829"),
			WithCreationDate("1999-12-31T23:59:59.9999999+01:00"),
		)
		require.NoError(t, err)
		assert.Equal(t, ResRestricted, res.SelectAttrValue("permissions", ""))
		assert.Equal(t, "ark:/72163/4123-31ec6eab334-a.2022829", res.SelectAttrValue("ark", ""))
		assert.Equal(t, "1999-12-31T23:59:59.9999999+01:00", res.SelectAttrValue("creation_date", ""))
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]func() error{
			"empty label": func() error { _, err := MakeResource("", ":Object", "a"); return err },
			"bad id":      func() error { _, err := MakeResource("A", ":Object", "1a"); return err },
			"no restype":  func() error { _, err := MakeResource("A", "", "a"); return err },
			"ark and iri": func() error {
				_, err := MakeResource("A", ":Object", "a", WithARK("ark:/1"), WithIRI("http://rdfh.ch/1"))
				return err
			},
			"bad creation date": func() error {
				_, err := MakeResource("A", ":Object", "a", WithCreationDate("yesterday"))
				return err
			},
		}
		for name, fn := range cases {
			assert.ErrorIs(t, fn(), core.ErrInvalidValue, name)
		}
	})
}

func TestBaseResources(t *testing.T) {
	annotation, err := MakeAnnotation("Annotation to Anubis", "annotation_to_anubis")
	require.NoError(t, err)
	assert.Equal(t, "annotation", annotation.Tag)
	assert.Nil(t, annotation.SelectAttr("restype"))

	region, err := MakeRegion("Region", "region_1", WithPermissions(ResRestricted))
	require.NoError(t, err)
	assert.Equal(t, "region", region.Tag)
	assert.Equal(t, ResRestricted, region.SelectAttrValue("permissions", ""))

	link, err := MakeLink("Link", "link_1")
	require.NoError(t, err)
	assert.Equal(t, "link", link.Tag)

	video, err := MakeVideoSegment("Intro", "segment_1")
	require.NoError(t, err)
	assert.Equal(t, "video-segment", video.Tag)

	audio, err := MakeAudioSegment("Intro", "segment_2")
	require.NoError(t, err)
	assert.Equal(t, "audio-segment", audio.Tag)

	_, err = MakeLink("Link", "not an id")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestSegmentProps(t *testing.T) {
	bounds, err := MakeHasSegmentBoundsProp(0, 5.5, "")
	require.NoError(t, err)
	assert.Equal(t, "hasSegmentBounds", bounds.Tag)
	assert.Equal(t, "0", bounds.SelectAttrValue("segment_start", ""))
	assert.Equal(t, "5.5", bounds.SelectAttrValue("segment_end", ""))
	assert.Equal(t, PropDefault, bounds.SelectAttrValue("permissions", ""))

	_, err = MakeHasSegmentBoundsProp(5, 1, "")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
	_, err = MakeHasSegmentBoundsProp(-1, 1, "")
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	of, err := MakeIsSegmentOfProp(Value("video_1"))
	require.NoError(t, err)
	assert.Equal(t, "isSegmentOf", of.Tag)
	assert.Equal(t, "video_1", of.Text())

	_, err = MakeIsSegmentOfProp(Value("my video"))
	assert.ErrorIs(t, err, core.ErrInvalidValue)
	_, err = MakeRelatesToProp(Value("http://rdfh.ch/1"))
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	comment, err := MakeHasCommentProp(PropertyElement{Value: "A <em>short</em> intro", Comment: "draft"})
	require.NoError(t, err)
	assert.Equal(t, "hasComment", comment.Tag)
	assert.Equal(t, "draft", comment.SelectAttrValue("comment", ""))
	assert.NotNil(t, comment.SelectElement("em"))

	title, err := MakeHasTitleProp(Value("A <em>title</em>"))
	require.NoError(t, err)
	assert.Equal(t, "A <em>title</em>", title.Text())
	assert.Empty(t, title.ChildElements())

	_, err = MakeHasKeywordProp(Value(""))
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}
