package importer

import (
	"fmt"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// Labels of the resources the base resources point to.
const (
	AnnotatedObject = "Anubis"
	RegionImage     = "GibeonMeteorite.jpg"
	LinkSource      = "BM1888-0601-716"
	LinkTarget      = "Horohoroto"
)

const regionGeometry = `{"type": "rectangle", "lineColor": "#ff3333", "lineWidth": 2, ` +
	`"points": [{"x": 0.08, "y": 0.16}, {"x": 0.73, "y": 0.72}], "original_index": 0}`

func richText(v string) excel2xml.PropertyElement {
	return excel2xml.PropertyElement{Value: v, Encoding: excel2xml.EncodingXML}
}

// addBaseResources appends the annotation, region and link. These DSP base
// resources take base properties, written without a leading colon.
func (b *builder) addBaseResources() error {
	anubis, err := b.objectID(AnnotatedObject)
	if err != nil {
		return fmt.Errorf("annotation: %w", err)
	}
	meteorite, err := b.imageID(RegionImage)
	if err != nil {
		return fmt.Errorf("region: %w", err)
	}
	source, err := b.objectID(LinkSource)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	target, err := b.objectID(LinkTarget)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}

	annotation, err := excel2xml.MakeAnnotation("Annotation to Anubis", "annotation_to_anubis")
	if err != nil {
		return err
	}
	p := &props{parent: annotation}
	p.add(excel2xml.MakeTextProp("hasComment", richText("Date and time are invented, like for the other resources.")))
	p.add(excel2xml.MakeResptrProp("isAnnotationOf", excel2xml.Value(anubis)))
	if p.err != nil {
		return fmt.Errorf("annotation: %w", p.err)
	}
	b.root.AddChild(annotation)

	region, err := excel2xml.MakeRegion("Region of the Meteorite image", "region_of_meteorite")
	if err != nil {
		return err
	}
	p = &props{parent: region}
	p.add(excel2xml.MakeTextProp("hasComment", richText("This is a comment")))
	p.add(excel2xml.MakeColorProp("hasColor", excel2xml.Value("#5d1f1e")))
	p.add(excel2xml.MakeResptrProp("isRegionOf", excel2xml.Value(meteorite)))
	p.add(excel2xml.MakeGeometryProp("hasGeometry", excel2xml.Value(regionGeometry)))
	if p.err != nil {
		return fmt.Errorf("region: %w", p.err)
	}
	b.root.AddChild(region)

	link, err := excel2xml.MakeLink("Link between BM1888-0601-716 and Horohoroto", "link_BM1888-0601-716_horohoroto")
	if err != nil {
		return err
	}
	p = &props{parent: link}
	p.add(excel2xml.MakeTextProp("hasComment", richText("This is a comment")))
	p.add(excel2xml.MakeResptrProp("hasLinkTo", excel2xml.Values(source, target)...))
	if p.err != nil {
		return fmt.Errorf("link: %w", p.err)
	}
	b.root.AddChild(link)

	return nil
}
