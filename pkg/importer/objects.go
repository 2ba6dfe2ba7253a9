package importer

import (
	"fmt"
	"strings"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// addObject creates the :Object of one table row.
func (b *builder) addObject(row core.Row, categories *categoryMapper) error {
	line := row.Line()
	label := row.Get(ColObject)

	id, err := excel2xml.MakeXSDIDCompatible(label)
	if err != nil {
		return fmt.Errorf("row %d: column %q: %w", line, ColObject, err)
	}
	b.objectIDs[label] = id

	res, err := excel2xml.MakeResource(label, ":Object", id)
	if err != nil {
		return fmt.Errorf("row %d: %w", line, err)
	}
	p := &props{parent: res}

	for _, img := range b.images {
		if strings.Contains(img.label, label) {
			p.add(excel2xml.MakeResptrProp(":hasImage", excel2xml.Value(img.id)))
		}
	}

	p.add(excel2xml.MakeTextProp(":hasName", excel2xml.Value(row.Get(ColTitle))))
	p.add(excel2xml.MakeTextProp(":hasDescription", excel2xml.PropertyElement{
		Value:       row.Get(ColDescription),
		Permissions: excel2xml.PropRestricted,
		Comment:     "comment to 'Description'",
		Encoding:    excel2xml.EncodingXML,
	}))

	if names := categories.Names(row.Get(categories.column)); len(names) > 0 {
		p.add(excel2xml.MakeListProp(categories.list, ":hasCategory", excel2xml.Values(names...)...))
	}

	if v := row.Get(ColPublic); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeBooleanProp(":isPublic", excel2xml.Value(v)))
	}
	if v := row.Get(ColColor); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeColorProp(":hasColor", excel2xml.Value(v)))
	}
	if date := excel2xml.FindDateInString(row.Get(ColDate)); date != "" {
		p.add(excel2xml.MakeDateProp(":hasDate", excel2xml.Value(date)))
	} else {
		b.warn(line, core.WarnMissingDate, fmt.Sprintf("Error in row %d: The column '%s' should contain a date!", line, ColDate))
	}
	if v := row.Get(ColTime); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeTimeProp(":hasTime", excel2xml.Value(v)))
	}
	if v := row.Get(ColWeight); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeDecimalProp(":hasWeight", excel2xml.Value(v)))
	}
	if v := row.Get(ColLocation); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeGeonameProp(":hasLocation", excel2xml.Value(v)))
	}
	if v := row.Get(ColURL); excel2xml.CheckNotNA(v) {
		p.add(excel2xml.MakeURIProp(":hasExternalLink", excel2xml.Value(v)))
	}

	if p.err != nil {
		return fmt.Errorf("row %d (%s): %w", line, label, p.err)
	}
	b.root.AddChild(res)
	return nil
}
