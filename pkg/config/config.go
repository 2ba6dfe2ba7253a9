// Package config loads the settings of an import run from an optional YAML
// file, with environment overrides for the DSP credentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "import.yaml"

// Environment variables that override the dsp block.
const (
	EnvServer   = "DSP_SERVER"
	EnvUser     = "DSP_USER"
	EnvPassword = "DSP_PASSWORD"
)

// Category describes where the categorical values come from and which list
// they are mapped to.
type Category struct {
	List      string `yaml:"list"`
	Language  string `yaml:"language"`
	Column    string `yaml:"column"`
	Separator string `yaml:"separator"`
}

// DSP holds the connection settings of the dsp-tools CLI.
// Empty values leave the dsp-tools defaults in place.
type DSP struct {
	Server   string `yaml:"server"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Binary   string `yaml:"binary"`
}

// Config is the complete configuration of one import.
type Config struct {
	Shortcode       string   `yaml:"shortcode"`
	DefaultOntology string   `yaml:"default_ontology"`
	ProjectFile     string   `yaml:"project_file"`
	DataFile        string   `yaml:"data_file"`
	Sheet           string   `yaml:"sheet"`
	Delimiter       string   `yaml:"delimiter"`
	ImagesDir       string   `yaml:"images_dir"`
	Output          string   `yaml:"output"`
	Category        Category `yaml:"category"`
	DSP             DSP      `yaml:"dsp"`

	// BaseDir is the directory relative paths were resolved against.
	BaseDir string `yaml:"-"`
}

// Default returns the settings of the 00A1 project.
func Default() Config {
	return Config{
		Shortcode:       "00A1",
		DefaultOntology: "import",
		ProjectFile:     "import_project.json",
		DataFile:        "data_raw.csv",
		Delimiter:       ",",
		ImagesDir:       "images",
		Output:          "data-processed.xml",
		Category: Category{
			List:      "category",
			Language:  "de",
			Column:    "Category",
			Separator: ",",
		},
		DSP: DSP{Binary: "dsp-tools"},
	}
}

// Load reads path on top of Default. A missing file is not an error: the
// defaults are used and relative paths resolve against the directory path
// would have lived in. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", core.ErrInvalidConfig, path, err)
		}
	}

	cfg.ApplyEnv()

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to resolve config dir: %w", err)
	}
	cfg.Resolve(base)

	return cfg, cfg.Validate()
}

// ApplyEnv overrides the dsp block with the DSP_* environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvServer); ok {
		c.DSP.Server = v
	}
	if v, ok := os.LookupEnv(EnvUser); ok {
		c.DSP.User = v
	}
	if v, ok := os.LookupEnv(EnvPassword); ok {
		c.DSP.Password = v
	}
}

// Resolve makes the file paths absolute with respect to base.
func (c *Config) Resolve(base string) {
	c.BaseDir = base
	for _, p := range []*string{&c.ProjectFile, &c.DataFile, &c.ImagesDir, &c.Output} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Rel returns path relative to BaseDir when it lies below it.
func (c *Config) Rel(path string) string {
	if c.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(c.BaseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// DelimiterRune returns the single-character delimiter.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Delimiter)
	if c.Delimiter == `\t` {
		return '\t'
	}
	if len(r) != 1 {
		return ','
	}
	return r[0]
}

var shortcodeRegex = regexp.MustCompile(`^[0-9A-Fa-f]{4}$`)

// Validate checks that the configuration can drive an import.
func (c *Config) Validate() error {
	var errs []error
	if !shortcodeRegex.MatchString(c.Shortcode) {
		errs = append(errs, fmt.Errorf("shortcode %q must be 4 hexadecimal characters", c.Shortcode))
	}
	if c.DefaultOntology == "" {
		errs = append(errs, errors.New("default_ontology is empty"))
	}
	if c.ProjectFile == "" {
		errs = append(errs, errors.New("project_file is empty"))
	}
	if c.DataFile == "" {
		errs = append(errs, errors.New("data_file is empty"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is empty"))
	}
	if c.Delimiter != `\t` && len([]rune(c.Delimiter)) != 1 {
		errs = append(errs, fmt.Errorf("delimiter %q must be a single character", c.Delimiter))
	}
	if c.Category.List == "" || c.Category.Column == "" {
		errs = append(errs, errors.New("category.list and category.column are required"))
	}
	if c.Category.Separator == "" {
		errs = append(errs, errors.New("category.separator is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
