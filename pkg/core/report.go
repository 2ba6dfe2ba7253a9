package core

import "fmt"

// Warning codes emitted while converting a table.
const (
	WarnMissingDate      = "missing-date"
	WarnUnmatchedValue   = "unmatched-list-value"
	WarnMissingBitstream = "missing-bitstream"
)

// Warning is a soft failure: the conversion continues, the value is dropped.
type Warning struct {
	// Line is the spreadsheet line the warning relates to (0 if none).
	Line    int
	Code    string
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// Report collects the warnings of one conversion run.
type Report struct {
	Warnings []Warning
}

// Warn appends a warning.
func (r *Report) Warn(line int, code, message string) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Code: code, Message: message})
}

// Count returns the number of warnings with the given code.
func (r *Report) Count(code string) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}

// Lines returns the lines of all warnings with the given code, in order.
func (r *Report) Lines(code string) []int {
	var lines []int
	for _, w := range r.Warnings {
		if w.Code == code {
			lines = append(lines, w.Line)
		}
	}
	return lines
}
