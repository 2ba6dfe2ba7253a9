package importer

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// image is an :Image2D resource, kept in file name order.
type image struct {
	label string
	id    string
}

// builder holds the state of one Build: the tree under construction and the
// label to ID maps used to wire references.
type builder struct {
	cfg    config.Config
	logger *slog.Logger
	report *core.Report
	root   *etree.Element

	images    []image
	objectIDs map[string]string
}

func newBuilder(cfg config.Config, logger *slog.Logger) *builder {
	root := excel2xml.MakeRoot(cfg.Shortcode, cfg.DefaultOntology)
	return &builder{
		cfg:       cfg,
		logger:    logger,
		report:    &core.Report{},
		root:      excel2xml.AppendPermissions(root),
		objectIDs: make(map[string]string),
	}
}

// warn logs a soft failure and adds it to the report.
func (b *builder) warn(line int, code, msg string) {
	if line > 0 {
		b.logger.Warn(msg, "line", line, "code", code)
	} else {
		b.logger.Warn(msg, "code", code)
	}
	b.report.Warn(line, code, msg)
}

func (b *builder) imageID(label string) (string, error) {
	for _, img := range b.images {
		if img.label == label {
			return img.id, nil
		}
	}
	return "", fmt.Errorf("%w: no image %q in %s", core.ErrNotFound, label, b.cfg.ImagesDir)
}

func (b *builder) objectID(label string) (string, error) {
	id, ok := b.objectIDs[label]
	if !ok {
		return "", fmt.Errorf("%w: no object %q in %s", core.ErrNotFound, label, b.cfg.DataFile)
	}
	return id, nil
}

// props appends properties to a resource and keeps the first error, so a
// sequence of Make* calls can be checked once.
type props struct {
	parent *etree.Element
	err    error
}

func (p *props) add(el *etree.Element, err error) {
	if p.err != nil {
		return
	}
	if err != nil {
		p.err = err
		return
	}
	p.parent.AddChild(el)
}
