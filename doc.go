// Package dspimport is the composition root of the 00A1 import.
//
// It converts the object spreadsheet of project 00A1 into a data file in the
// DSP XML import format: every image file becomes an :Image2D, every row an
// :Object with its images, categories and values, followed by the
// annotation, region, link and video resources of the project. The result
// is written atomically to data-processed.xml and can be uploaded with
// dsp-tools.
//
// Features:
//
//   - **Two-tier list mapping**: category values resolve through the list
//     labels of the project file first, then by similarity to node names.
//   - **Soft failures**: unparsable dates, unknown categories and missing
//     files are logged and reported; the conversion goes on.
//   - **Watch mode**: the data file is rebuilt whenever an input changes.
//   - **Golden comparison**: Diff compares two data files modulo random IDs
//     and resource order.
//
// Usage:
//
//	im, err := dspimport.New("import.yaml", dspimport.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	res, err := im.Run(ctx)
package dspimport
