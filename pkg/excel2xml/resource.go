package excel2xml

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// resourceOptions holds the optional attributes of a resource.
type resourceOptions struct {
	permissions  string
	ark          string
	iri          string
	creationDate string
}

// ResourceOption configures optional attributes of a resource element.
type ResourceOption func(*resourceOptions)

// WithPermissions overrides the default resource permissions (res-default).
func WithPermissions(id string) ResourceOption {
	return func(o *resourceOptions) {
		o.permissions = id
	}
}

// WithARK attaches the ARK of a resource that already exists elsewhere.
func WithARK(ark string) ResourceOption {
	return func(o *resourceOptions) {
		o.ark = ark
	}
}

// WithIRI attaches the IRI of a resource that already exists elsewhere.
func WithIRI(iri string) ResourceOption {
	return func(o *resourceOptions) {
		o.iri = iri
	}
}

// WithCreationDate sets the creation date of the resource (RFC 3339 with zone).
func WithCreationDate(date string) ResourceOption {
	return func(o *resourceOptions) {
		o.creationDate = date
	}
}

func buildResourceOptions(opts []ResourceOption) *resourceOptions {
	o := &resourceOptions{permissions: ResDefault}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func checkLabelAndID(kind, label, id string) error {
	if !CheckNotNA(label) {
		return fmt.Errorf("%w: %s with id %q has no usable label", core.ErrInvalidValue, kind, id)
	}
	if !IsXSDID(id) {
		return fmt.Errorf("%w: %s %q has an invalid id %q", core.ErrInvalidValue, kind, label, id)
	}
	return nil
}

// MakeResource creates a <resource> of the given class.
// restype is usually a class of the default ontology, e.g. ":Object".
func MakeResource(label, restype, id string, opts ...ResourceOption) (*etree.Element, error) {
	if err := checkLabelAndID("resource", label, id); err != nil {
		return nil, err
	}
	if !CheckNotNA(restype) {
		return nil, fmt.Errorf("%w: resource %q has no restype", core.ErrInvalidValue, label)
	}
	o := buildResourceOptions(opts)
	if o.ark != "" && o.iri != "" {
		return nil, fmt.Errorf("%w: resource %q cannot have both an ARK and an IRI", core.ErrInvalidValue, label)
	}

	res := etree.NewElement("resource")
	res.CreateAttr("label", label)
	res.CreateAttr("restype", restype)
	res.CreateAttr("id", id)
	res.CreateAttr("permissions", o.permissions)
	if o.ark != "" {
		res.CreateAttr("ark", o.ark)
	}
	if o.iri != "" {
		res.CreateAttr("iri", o.iri)
	}
	if o.creationDate != "" {
		if _, err := time.Parse(time.RFC3339Nano, o.creationDate); err != nil {
			return nil, fmt.Errorf("%w: resource %q has an invalid creation date %q", core.ErrInvalidValue, label, o.creationDate)
		}
		res.CreateAttr("creation_date", o.creationDate)
	}
	return res, nil
}

func makeBaseResource(tag, label, id string, opts []ResourceOption) (*etree.Element, error) {
	if err := checkLabelAndID(tag, label, id); err != nil {
		return nil, err
	}
	o := buildResourceOptions(opts)
	el := etree.NewElement(tag)
	el.CreateAttr("label", label)
	el.CreateAttr("id", id)
	el.CreateAttr("permissions", o.permissions)
	return el, nil
}

// MakeAnnotation creates an <annotation>, a DSP base resource that takes the
// base properties hasComment and isAnnotationOf.
func MakeAnnotation(label, id string, opts ...ResourceOption) (*etree.Element, error) {
	return makeBaseResource("annotation", label, id, opts)
}

// MakeRegion creates a <region> of an image. It takes hasColor, isRegionOf,
// hasGeometry and hasComment.
func MakeRegion(label, id string, opts ...ResourceOption) (*etree.Element, error) {
	return makeBaseResource("region", label, id, opts)
}

// MakeLink creates a <link> between resources. It takes hasComment and
// hasLinkTo.
func MakeLink(label, id string, opts ...ResourceOption) (*etree.Element, error) {
	return makeBaseResource("link", label, id, opts)
}

// MakeVideoSegment creates a <video-segment>.
func MakeVideoSegment(label, id string, opts ...ResourceOption) (*etree.Element, error) {
	return makeBaseResource("video-segment", label, id, opts)
}

// MakeAudioSegment creates an <audio-segment>.
func MakeAudioSegment(label, id string, opts ...ResourceOption) (*etree.Element, error) {
	return makeBaseResource("audio-segment", label, id, opts)
}
