// Package table reads the tabular input of an import (CSV or Excel) into a
// core.Table. Every cell is kept as text.
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// Reader parses one tabular file format.
type Reader interface {
	Read(r io.Reader) (*core.Table, error)
}

// Options tune the readers returned by DefaultReaders.
type Options struct {
	// Delimiter of .csv files, defaults to ','.
	Delimiter rune
	// Sheet of Excel workbooks, defaults to the first sheet.
	Sheet string
}

// DefaultReaders returns the standard set of readers, keyed by extension.
func DefaultReaders(opts Options) map[string]Reader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	excel := NewExcelReader(opts.Sheet)
	return map[string]Reader{
		".csv":  NewCSVReader(opts.Delimiter),
		".tsv":  NewCSVReader('\t'),
		".xlsx": excel,
		".xlsm": excel,
	}
}

// ReadFile picks the reader by the extension of path.
func ReadFile(path string, readers map[string]Reader) (*core.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	t, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// --- CSV Reader ---

// CSVReader handles delimited text files. The first record is the header.
type CSVReader struct {
	Delimiter rune
}

// NewCSVReader creates a new CSV reader.
func NewCSVReader(delimiter rune) *CSVReader {
	return &CSVReader{Delimiter: delimiter}
}

func (c *CSVReader) Read(r io.Reader) (*core.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: csv is not valid UTF-8", core.ErrInvalidValue)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = c.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return fromRecords(records)
}

// --- Excel Reader ---

// ExcelReader handles .xlsx and .xlsm workbooks.
type ExcelReader struct {
	// Sheet to read; empty means the first sheet of the workbook.
	Sheet string
}

// NewExcelReader creates a new Excel reader.
func NewExcelReader(sheet string) *ExcelReader {
	return &ExcelReader{Sheet: sheet}
}

func (e *ExcelReader) Read(r io.Reader) (*core.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := e.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", core.ErrNotFound)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

// fromRecords turns raw records into a table. Rows are padded or cut to the
// header width.
func fromRecords(records [][]string) (*core.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: table has no header", core.ErrInvalidValue)
	}

	header := make([]string, len(records[0]))
	seen := make(map[string]bool, len(header))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("%w: column %d has no name", core.ErrInvalidValue, i+1)
		}
		if seen[h] {
			return nil, fmt.Errorf("%w: duplicate column %q", core.ErrInvalidValue, h)
		}
		seen[h] = true
		header[i] = h
	}

	t := &core.Table{Header: header, Rows: make([]core.Row, 0, len(records)-1)}
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(rec) {
				fields[h] = rec[j]
			} else {
				fields[h] = ""
			}
		}
		t.Rows = append(t.Rows, core.Row{Index: i, Fields: fields})
	}
	return t, nil
}

// Normalize blanks every cell for which usable returns false and drops the
// rows left without any value. Row indices are preserved.
func Normalize(t *core.Table, usable func(string) bool) *core.Table {
	out := &core.Table{Header: t.Header, Rows: make([]core.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		fields := make(map[string]string, len(row.Fields))
		empty := true
		for k, v := range row.Fields {
			if !usable(v) {
				v = ""
			}
			if v != "" {
				empty = false
			}
			fields[k] = v
		}
		if empty {
			continue
		}
		out.Rows = append(out.Rows, core.Row{Index: row.Index, Fields: fields})
	}
	return out
}

// RequireColumns fails with core.ErrMissingColumn if any name is absent.
func RequireColumns(t *core.Table, names ...string) error {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", core.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
