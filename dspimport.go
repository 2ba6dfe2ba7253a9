package dspimport

import (
	"context"
	"log/slog"

	"github.com/dasch-swiss/00A1-import-scripts/internal/platform"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/table"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/importer"
)

// --- Types ---

// Importer builds and writes the data file.
type Importer = importer.Importer

// Result summarizes a conversion.
type Result = importer.Result

// WatchOptions tunes Importer.Watch.
type WatchOptions = importer.WatchOptions

// Config is the content of import.yaml.
type Config = config.Config

// --- Configuration ---

// Option defines a functional option for configuring the importer.
type Option = platform.Option

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithReader registers a table reader for a file extension (e.g. ".ods").
func WithReader(ext string, r table.Reader) Option {
	return platform.WithReader(ext, r)
}

// WithConfig adjusts the loaded configuration before it is validated.
func WithConfig(fn func(*Config)) Option {
	return platform.WithConfig(fn)
}

// WithDataFile overrides the input table. Relative paths are taken from the
// working directory.
func WithDataFile(path string) Option {
	return platform.WithDataFile(path)
}

// WithOutput overrides the path of the generated data file. Relative paths
// are taken from the working directory.
func WithOutput(path string) Option {
	return platform.WithOutput(path)
}

// WithWorkDir sets where the configuration is looked up when no path is given.
func WithWorkDir(dir string) Option {
	return platform.WithWorkDir(dir)
}

// --- Factory ---

// New creates an importer from the configuration at configPath. An empty
// path looks for import.yaml in the working directory and its parents.
func New(configPath string, opts ...Option) (*Importer, error) {
	return platform.New(configPath, opts...)
}

// LoadConfig loads and validates the configuration at configPath.
func LoadConfig(configPath string, opts ...Option) (Config, error) {
	return platform.LoadConfig(configPath, opts...)
}

// FindProjectRoot looks upwards from startDir for a directory with an import.yaml.
func FindProjectRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// --- Operations ---

// Convert builds the data file.
func Convert(ctx context.Context, configPath string, opts ...Option) (*Result, error) {
	return platform.Convert(ctx, configPath, opts...)
}

// Create runs dsp-tools create with the project file.
func Create(ctx context.Context, configPath string, opts ...Option) (string, error) {
	return platform.Create(ctx, configPath, opts...)
}

// Upload runs dsp-tools xmlupload with the data file, building it first if
// rebuild is set.
func Upload(ctx context.Context, configPath string, rebuild bool, opts ...Option) (string, error) {
	return platform.Upload(ctx, configPath, rebuild, opts...)
}

// Diff returns a unified diff of two data files after removing random ID
// suffixes and sorting resources by ID. It is empty when they match.
func Diff(expected, actual, expectedName, actualName string) (string, error) {
	return excel2xml.Diff(expected, actual, expectedName, actualName)
}
