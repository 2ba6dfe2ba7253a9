package excel2xml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/fs"
)

// ToBytes serializes root with an XML declaration and 4-space indentation.
// root itself is left untouched.
func ToBytes(root *etree.Element) ([]byte, error) {
	return newDocument(root.Copy(), "    ").WriteToBytes()
}

// WriteXML writes the document to path atomically and validates it.
// The file is written even if validation fails, so it can be inspected;
// the returned error then wraps core.ErrInvalidDocument.
func WriteXML(root *etree.Element, path string) error {
	doc := newDocument(root.Copy(), "    ")
	err := fs.WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}
	if err := Validate(root); err != nil {
		return fmt.Errorf("%s was written but is not valid: %w", path, err)
	}
	return nil
}
