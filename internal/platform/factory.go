package platform

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/dsptools"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/importer"
)

// LoadConfig resolves and loads the configuration, then applies the
// overrides of opts and validates the result.
func LoadConfig(configPath string, opts ...Option) (config.Config, error) {
	return loadConfig(configPath, buildOptions(opts))
}

func loadConfig(configPath string, o *options) (config.Config, error) {
	path, err := ResolveConfigPath(configPath, o.workDir)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if len(o.overrides) == 0 && o.dataFile == nil && o.output == nil {
		return cfg, nil
	}
	for _, fn := range o.overrides {
		fn(&cfg)
	}
	// overrides may bring relative paths
	cfg.Resolve(cfg.BaseDir)

	if o.dataFile != nil || o.output != nil {
		wd, err := resolveWorkDir(o)
		if err != nil {
			return cfg, err
		}
		if o.dataFile != nil {
			cfg.DataFile = fromDir(wd, *o.dataFile)
		}
		if o.output != nil {
			cfg.Output = fromDir(wd, *o.output)
		}
	}
	return cfg, cfg.Validate()
}

func resolveWorkDir(o *options) (string, error) {
	if o.workDir != "" {
		return filepath.Abs(o.workDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// fromDir joins a relative path to dir. Empty paths stay empty so that
// validation reports them.
func fromDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// New loads the configuration at configPath (see ResolveConfigPath) and
// creates an importer for it.
//
//	im, err := dspimport.New("", dspimport.WithOutput("out.xml"))
func New(configPath string, opts ...Option) (*importer.Importer, error) {
	o := buildOptions(opts)
	cfg, err := loadConfig(configPath, o)
	if err != nil {
		return nil, err
	}
	return newImporter(cfg, o), nil
}

func newImporter(cfg config.Config, o *options) *importer.Importer {
	imOpts := []importer.Option{importer.WithLogger(o.logger)}
	for ext, r := range o.readers {
		imOpts = append(imOpts, importer.WithReader(ext, r))
	}
	return importer.New(cfg, imOpts...)
}

// NewClient creates a dsp-tools client from the dsp block of cfg. The
// client runs in the project directory so relative paths in its output
// match the configuration.
func NewClient(cfg config.Config, logger *slog.Logger) *dsptools.Client {
	c := dsptools.NewClient(cfg.DSP.Binary, cfg.BaseDir, logger)
	c.Server = cfg.DSP.Server
	c.User = cfg.DSP.User
	c.Password = cfg.DSP.Password
	return c
}
