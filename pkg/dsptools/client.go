// Package dsptools drives the external dsp-tools command line to create the
// project on a DSP server and to upload the generated data file.
package dsptools

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Client wraps dsp-tools command execution.
type Client struct {
	Binary   string
	Server   string
	User     string
	Password string
	WorkDir  string
	Logger   *slog.Logger
}

// NewClient creates a new client running binary (default "dsp-tools") in workDir.
func NewClient(binary, workDir string, logger *slog.Logger) *Client {
	if binary == "" {
		binary = "dsp-tools"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		Binary:  binary,
		WorkDir: workDir,
		Logger:  logger,
	}
}

// connectionArgs returns the --server/--user/--password flags that are set.
func (c *Client) connectionArgs() []string {
	var args []string
	if c.Server != "" {
		args = append(args, "--server", c.Server)
	}
	if c.User != "" {
		args = append(args, "--user", c.User)
	}
	if c.Password != "" {
		args = append(args, "--password", c.Password)
	}
	return args
}

// Run executes a raw dsp-tools command and returns its combined output.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	c.Logger.Debug("executing dsp-tools", "binary", c.Binary, "args", redact(args), "dir", c.WorkDir)

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		name := c.Binary
		if len(args) > 0 {
			name += " " + args[0]
		}
		return output, fmt.Errorf("%s failed: %w\nOutput: %s", name, err, output)
	}

	return strings.TrimSpace(output), nil
}

// Create creates the project described by projectFile on the server.
func (c *Client) Create(ctx context.Context, projectFile string) (string, error) {
	args := append([]string{"create"}, c.connectionArgs()...)
	return c.Run(ctx, append(args, projectFile)...)
}

// XMLUpload uploads the data file xmlFile to the server.
func (c *Client) XMLUpload(ctx context.Context, xmlFile string) (string, error) {
	args := append([]string{"xmlupload"}, c.connectionArgs()...)
	return c.Run(ctx, append(args, xmlFile)...)
}

// redact hides the value following --password.
func redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "--password" {
			out[i+1] = "***"
		}
	}
	return out
}
