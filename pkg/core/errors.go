package core

import "errors"

// Common errors.
var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidDocument   = errors.New("invalid xml document")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
