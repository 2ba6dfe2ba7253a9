package platform_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/00A1-import-scripts/internal/platform"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// setupProject copies the importer fixtures into a temp dir and writes an
// import.yaml that uses echo in place of dsp-tools.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.CopyFS(dir, os.DirFS("../../pkg/importer/testdata")))
	yaml := "shortcode: \"00A1\"\noutput: out/data-processed.xml\ndsp:\n  binary: echo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte(yaml), 0644))
	return dir
}

func quiet() platform.Option {
	return platform.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNew(t *testing.T) {
	dir := setupProject(t)

	t.Run("found from a subdirectory", func(t *testing.T) {
		im, err := platform.New("", platform.WithWorkDir(filepath.Join(dir, "images")), quiet())
		require.NoError(t, err)
		cfg := im.Config()
		assert.Equal(t, filepath.Join(dir, "data_raw.csv"), cfg.DataFile)
		assert.Equal(t, filepath.Join(dir, "out", "data-processed.xml"), cfg.Output)
	})

	t.Run("config overrides are resolved against the project", func(t *testing.T) {
		im, err := platform.New(filepath.Join(dir, config.DefaultFile), platform.WithConfig(func(c *config.Config) {
			c.Output = "other.xml"
		}), quiet())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "other.xml"), im.Config().Output)
	})

	t.Run("path overrides are resolved against the working directory", func(t *testing.T) {
		wd := filepath.Join(dir, "images")
		im, err := platform.New("",
			platform.WithWorkDir(wd),
			platform.WithOutput("other.xml"),
			platform.WithDataFile(filepath.Join("..", "data_raw.csv")),
			quiet(),
		)
		require.NoError(t, err)
		cfg := im.Config()
		assert.Equal(t, filepath.Join(wd, "other.xml"), cfg.Output)
		assert.Equal(t, filepath.Join(dir, "data_raw.csv"), cfg.DataFile)
		assert.Equal(t, filepath.Join(dir, "import_project.json"), cfg.ProjectFile)
	})

	t.Run("invalid overrides", func(t *testing.T) {
		_, err := platform.New(filepath.Join(dir, config.DefaultFile), platform.WithDataFile(""), quiet())
		assert.ErrorIs(t, err, core.ErrInvalidConfig)
	})
}

func TestConvert(t *testing.T) {
	dir := setupProject(t)

	res, err := platform.Convert(context.Background(), filepath.Join(dir, config.DefaultFile), quiet())
	require.NoError(t, err)
	assert.Equal(t, 14, res.Resources)
	assert.FileExists(t, filepath.Join(dir, "out", "data-processed.xml"))
}

func TestCreateAndUpload(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	dir := setupProject(t)
	cfgPath := filepath.Join(dir, config.DefaultFile)
	ctx := context.Background()

	out, err := platform.Create(ctx, cfgPath, quiet())
	require.NoError(t, err)
	assert.Equal(t, "create "+filepath.Join(dir, "import_project.json"), out)

	_, err = platform.Upload(ctx, cfgPath, false, quiet())
	assert.ErrorIs(t, err, os.ErrNotExist)

	out, err = platform.Upload(ctx, cfgPath, true, quiet())
	require.NoError(t, err)
	assert.Equal(t, "xmlupload "+filepath.Join(dir, "out", "data-processed.xml"), out)

	t.Setenv(config.EnvServer, "http://0.0.0.0:3333")
	out, err = platform.Upload(ctx, cfgPath, false, quiet())
	require.NoError(t, err)
	assert.Equal(t, "xmlupload --server http://0.0.0.0:3333 "+filepath.Join(dir, "out", "data-processed.xml"), out)
}
