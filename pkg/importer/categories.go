package importer

import (
	"fmt"
	"strings"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// categoryMapper resolves the free-text values of the category column to
// list node names in two tiers: the labels of the list nodes first, then
// the similarity mapping built from all values of the column.
type categoryMapper struct {
	list      string
	column    string
	separator string
	labels    map[string]string
	similar   map[string]string
}

func newCategoryMapper(cfg config.Config, tbl *core.Table, b *builder) (*categoryMapper, error) {
	c := cfg.Category
	labels, err := excel2xml.CreateJSONListMapping(cfg.ProjectFile, c.List, c.Language)
	if err != nil {
		return nil, err
	}

	similar, unmatched, err := excel2xml.CreateJSONExcelListMapping(cfg.ProjectFile, c.List, tbl.Column(c.Column), c.Separator, nil)
	if err != nil {
		return nil, err
	}
	for _, v := range unmatched {
		b.warn(0, core.WarnUnmatchedValue, fmt.Sprintf(
			"Did not find a close match to the excel list entry '%s' among the values in the JSON project list '%s'", v, c.List))
	}

	return &categoryMapper{
		list:      c.List,
		column:    c.Column,
		separator: c.Separator,
		labels:    labels,
		similar:   similar,
	}, nil
}

// lookup resolves a single value; the similarity mapping is keyed by the
// lower-cased value.
func (c *categoryMapper) lookup(value string) (string, bool) {
	if name, ok := c.labels[value]; ok {
		return name, true
	}
	if name, ok := c.similar[value]; ok {
		return name, true
	}
	name, ok := c.similar[strings.ToLower(value)]
	return name, ok
}

// Names splits a cell and returns the node names of its values in order.
// Values that resolve to nothing are dropped, as are repeated names.
func (c *categoryMapper) Names(cell string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, v := range strings.Split(cell, c.separator) {
		name, ok := c.lookup(strings.TrimSpace(v))
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
