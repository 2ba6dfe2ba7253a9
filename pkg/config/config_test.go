package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvServer, "")
	os.Unsetenv(EnvServer)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, "00A1", cfg.Shortcode)
	assert.Equal(t, "import", cfg.DefaultOntology)
	assert.Equal(t, filepath.Join(dir, "data_raw.csv"), cfg.DataFile)
	assert.Equal(t, filepath.Join(dir, "data-processed.xml"), cfg.Output)
	assert.Equal(t, "category", cfg.Category.List)
	assert.Equal(t, "de", cfg.Category.Language)
	assert.Equal(t, "dsp-tools", cfg.DSP.Binary)
	assert.Equal(t, "", cfg.DSP.Server)
	assert.Equal(t, ',', cfg.DelimiterRune())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.yaml")
	content := `
shortcode: "4123"
data_file: input/objects.xlsx
sheet: Objects
delimiter: ";"
output: /tmp/out.xml
category:
  language: en
dsp:
  server: http://0.0.0.0:3333
  user: root@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(EnvPassword, "test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4123", cfg.Shortcode)
	assert.Equal(t, filepath.Join(dir, "input", "objects.xlsx"), cfg.DataFile)
	assert.Equal(t, "Objects", cfg.Sheet)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, "/tmp/out.xml", cfg.Output)
	assert.Equal(t, "en", cfg.Category.Language)
	assert.Equal(t, "category", cfg.Category.List, "unset keys keep their default")
	assert.Equal(t, "http://0.0.0.0:3333", cfg.DSP.Server)
	assert.Equal(t, "test", cfg.DSP.Password)
	assert.Equal(t, "input/objects.xlsx", cfg.Rel(cfg.DataFile))
	assert.Equal(t, "/tmp/out.xml", cfg.Rel(cfg.Output))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dsp:\n  user: file@example.com\n"), 0o644))
	t.Setenv(EnvUser, "env@example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", cfg.DSP.User)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shortcode: [\n"), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, core.ErrInvalidConfig)
	})

	t.Run("bad values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shortcode: XYZ\ndelimiter: ';;'\n"), 0o644))
		_, err := Load(path)
		require.ErrorIs(t, err, core.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "shortcode")
		assert.Contains(t, err.Error(), "delimiter")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Output = ""
	cfg.Category.Separator = ""
	err := cfg.Validate()
	require.ErrorIs(t, err, core.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "separator")
}

func TestDelimiterRune_Tab(t *testing.T) {
	cfg := Default()
	cfg.Delimiter = `\t`
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, '\t', cfg.DelimiterRune())
}
