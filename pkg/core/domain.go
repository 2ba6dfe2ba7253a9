// Package core holds the domain types shared by the readers, the XML helpers
// and the importer.
package core

// Row is a single record of the input table.
// Index is the 0-based position of the row among the data rows of the source
// file, before any filtering.
type Row struct {
	Index  int
	Fields map[string]string
}

// Get returns the value of the named column, or "" if the column is absent.
func (r Row) Get(column string) string {
	return r.Fields[column]
}

// Line returns the line number of the row in a spreadsheet view of the
// source file (header on line 1).
func (r Row) Line() int {
	return r.Index + 2
}

// Table is the parsed input: an ordered header plus rows.
type Table struct {
	Header []string
	Rows   []Row
}

// Column returns all values of a column in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		values = append(values, r.Get(name))
	}
	return values
}

// HasColumn reports whether the header contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// EventType represents the type of change observed on an input file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of one of the import inputs.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
