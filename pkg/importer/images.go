package importer

import (
	"fmt"
	"path/filepath"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/fs"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

// addImages creates an :Image2D for every visible file of the images
// directory, in file name order.
func (b *builder) addImages() error {
	names, err := fs.ListFiles(b.cfg.ImagesDir, "*")
	if err != nil {
		return err
	}
	if len(names) == 0 {
		b.logger.Warn("no images found", "dir", b.cfg.ImagesDir)
	}

	for _, name := range names {
		id, err := excel2xml.MakeXSDIDCompatible(name)
		if err != nil {
			return fmt.Errorf("image %q: %w", name, err)
		}
		res, err := excel2xml.MakeResource(name, ":Image2D", id)
		if err != nil {
			return err
		}

		path := filepath.Join(b.cfg.ImagesDir, name)
		if err := excel2xml.CheckBitstream(path); err != nil {
			b.warn(0, core.WarnMissingBitstream, err.Error())
		}

		p := &props{parent: res}
		p.add(excel2xml.MakeBitstreamProp(b.cfg.Rel(path), ""))
		p.add(excel2xml.MakeTextProp(":hasTitle", excel2xml.Value(name)))
		if p.err != nil {
			return fmt.Errorf("image %q: %w", name, p.err)
		}

		b.root.AddChild(res)
		b.images = append(b.images, image{label: name, id: id})
	}
	return nil
}
