package dspimport

import _ "embed"

// Version is the version of the importer, read from the VERSION file.
//
//go:embed VERSION
var Version string
