package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/importer"
)

// Convert builds the data file described by the configuration at configPath.
func Convert(ctx context.Context, configPath string, opts ...Option) (*importer.Result, error) {
	im, err := New(configPath, opts...)
	if err != nil {
		return nil, err
	}
	return im.Run(ctx)
}

// Create creates the project on the DSP server from the project file.
func Create(ctx context.Context, configPath string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	cfg, err := loadConfig(configPath, o)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(cfg.ProjectFile); err != nil {
		return "", fmt.Errorf("project file: %w", err)
	}
	return NewClient(cfg, o.logger).Create(ctx, cfg.ProjectFile)
}

// Upload uploads the generated data file. With rebuild set, the data file is
// generated first; otherwise it must already exist.
func Upload(ctx context.Context, configPath string, rebuild bool, opts ...Option) (string, error) {
	o := buildOptions(opts)
	cfg, err := loadConfig(configPath, o)
	if err != nil {
		return "", err
	}
	if rebuild {
		if _, err := newImporter(cfg, o).Run(ctx); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		return "", fmt.Errorf("data file: %w (run convert first)", err)
	}
	return NewClient(cfg, o.logger).XMLUpload(ctx, cfg.Output)
}
