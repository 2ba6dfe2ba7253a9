package platform

import (
	"log/slog"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/table"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
)

// options holds the internal configuration of the composition root.
type options struct {
	logger    *slog.Logger
	readers   map[string]table.Reader
	overrides []func(*config.Config)
	workDir   string
	dataFile  *string
	output    *string
}

// Option defines a functional option for configuring the importer.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		readers: make(map[string]table.Reader),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger of the importer and the dsp-tools client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReader registers a table reader for a file extension, replacing the
// built-in one if any.
func WithReader(ext string, r table.Reader) Option {
	return func(o *options) {
		o.readers[ext] = r
	}
}

// WithConfig applies fn to the loaded configuration before it is validated.
func WithConfig(fn func(*config.Config)) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, fn)
	}
}

// WithDataFile overrides the input table. A relative path is taken from
// the working directory (see WithWorkDir), not from the project directory.
func WithDataFile(path string) Option {
	return func(o *options) {
		o.dataFile = &path
	}
}

// WithOutput overrides the path of the generated XML file. A relative path
// is taken from the working directory, like WithDataFile.
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = &path
	}
}

// WithWorkDir sets the directory used to look up the configuration when no
// path is given. Defaults to the current working directory.
func WithWorkDir(dir string) Option {
	return func(o *options) {
		o.workDir = dir
	}
}
