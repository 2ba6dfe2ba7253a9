package dsptools

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoClient(t *testing.T) *Client {
	t.Helper()
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	return NewClient("echo", t.TempDir(), nil)
}

func TestClient_Create(t *testing.T) {
	c := echoClient(t)

	out, err := c.Create(context.Background(), "import_project.json")
	require.NoError(t, err)
	assert.Equal(t, "create import_project.json", out)
}

func TestClient_XMLUploadWithConnection(t *testing.T) {
	c := echoClient(t)
	c.Server = "http://0.0.0.0:3333"
	c.User = "root@example.com"
	c.Password = "test"

	out, err := c.XMLUpload(context.Background(), "data-processed.xml")
	require.NoError(t, err)
	assert.Equal(t, "xmlupload --server http://0.0.0.0:3333 --user root@example.com --password test data-processed.xml", out)
}

func TestClient_Failure(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	c := NewClient("false", t.TempDir(), nil)

	_, err := c.Create(context.Background(), "import_project.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "false create failed")
}

func TestClient_MissingBinary(t *testing.T) {
	c := NewClient("dsp-tools-does-not-exist", t.TempDir(), nil)
	_, err := c.XMLUpload(context.Background(), "data-processed.xml")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "", nil)
	assert.Equal(t, "dsp-tools", c.Binary)
	assert.NotNil(t, c.Logger)
}

func TestRedact(t *testing.T) {
	args := []string{"xmlupload", "--password", "secret", "file.xml"}
	assert.Equal(t, []string{"xmlupload", "--password", "***", "file.xml"}, redact(args))
	assert.Equal(t, "secret", args[2], "input is not modified")
}
