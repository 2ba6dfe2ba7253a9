// Package importer converts the object table of the 00A1 project into a
// DSP XML data file: one :Image2D per image file, one :Object per table row,
// plus the annotation, region, link and video resources of the project.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/table"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// Columns of the input table.
const (
	ColObject      = "Object"
	ColTitle       = "Title"
	ColDescription = "Description"
	ColPublic      = "Public"
	ColColor       = "Color"
	ColDate        = "Date"
	ColTime        = "Time"
	ColWeight      = "Weight (kg)"
	ColLocation    = "Location"
	ColURL         = "URL"
)

// Importer builds and writes the data file described by a config.Config.
type Importer struct {
	cfg     config.Config
	logger  *slog.Logger
	readers map[string]table.Reader

	mu    sync.RWMutex
	state State
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger. Warnings about the input are logged at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) {
		if logger != nil {
			im.logger = logger
		}
	}
}

// WithReader registers a table reader for a file extension (e.g. ".ods").
func WithReader(ext string, r table.Reader) Option {
	return func(im *Importer) {
		im.readers[ext] = r
	}
}

// New creates an importer for cfg.
func New(cfg config.Config, opts ...Option) *Importer {
	im := &Importer{
		cfg:    cfg,
		logger: slog.Default(),
		readers: table.DefaultReaders(table.Options{
			Delimiter: cfg.DelimiterRune(),
			Sheet:     cfg.Sheet,
		}),
	}
	for _, opt := range opts {
		opt(im)
	}
	im.state.DataFile = cfg.DataFile
	im.state.Output = cfg.Output
	return im
}

// Config returns the configuration the importer runs with.
func (im *Importer) Config() config.Config {
	return im.cfg
}

// Result summarizes a run.
type Result struct {
	Output    string
	Resources int
	Report    *core.Report
	Duration  time.Duration
}

// LoadTable reads the data file and drops the rows without any usable value.
func (im *Importer) LoadTable() (*core.Table, error) {
	raw, err := table.ReadFile(im.cfg.DataFile, im.readers)
	if err != nil {
		return nil, err
	}
	tbl := table.Normalize(raw, excel2xml.CheckNotNA)
	if err := table.RequireColumns(tbl,
		ColObject, ColTitle, ColDescription, im.cfg.Category.Column, ColPublic,
		ColColor, ColDate, ColTime, ColWeight, ColLocation, ColURL,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", im.cfg.DataFile, err)
	}
	im.logger.Debug("table loaded", "file", im.cfg.DataFile, "rows", len(raw.Rows), "usable", len(tbl.Rows))
	return tbl, nil
}

// Build creates the <knora> tree. Soft failures (dates that cannot be
// parsed, category values without list node, missing files) are logged and
// collected in the report; everything else aborts the build.
func (im *Importer) Build(ctx context.Context) (*etree.Element, *core.Report, error) {
	tbl, err := im.LoadTable()
	if err != nil {
		return nil, nil, err
	}

	b := newBuilder(im.cfg, im.logger)

	categories, err := newCategoryMapper(im.cfg, tbl, b)
	if err != nil {
		return nil, b.report, err
	}

	if err := b.addImages(); err != nil {
		return nil, b.report, err
	}

	for _, row := range tbl.Rows {
		if err := ctx.Err(); err != nil {
			return nil, b.report, err
		}
		if err := b.addObject(row, categories); err != nil {
			return nil, b.report, err
		}
	}

	if err := b.addBaseResources(); err != nil {
		return nil, b.report, err
	}
	if err := b.addVideo(); err != nil {
		return nil, b.report, err
	}

	return b.root, b.report, nil
}

// Run builds the tree and writes it to the configured output.
func (im *Importer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	root, report, err := im.Build(ctx)
	if err != nil {
		im.record(nil, err)
		return nil, err
	}

	res := &Result{
		Output:    im.cfg.Output,
		Resources: countResources(root),
		Report:    report,
	}
	err = excel2xml.WriteXML(root, im.cfg.Output)
	res.Duration = time.Since(start)
	im.record(res, err)
	if err != nil {
		return res, err
	}

	im.logger.Info("data file written",
		"output", im.cfg.Output,
		"resources", res.Resources,
		"warnings", len(report.Warnings),
		"duration", res.Duration,
	)
	return res, nil
}

func countResources(root *etree.Element) int {
	n := 0
	for _, c := range root.ChildElements() {
		if c.Tag != "permissions" {
			n++
		}
	}
	return n
}
