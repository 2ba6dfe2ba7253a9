package importer

import (
	"time"

	"github.com/aretw0/introspection"
)

// State exposes internal state for observability.
type State struct {
	DataFile      string     `json:"data_file"`
	Output        string     `json:"output"`
	Runs          int        `json:"runs"`
	Failures      int        `json:"failures"`
	Watching      bool       `json:"watching"`
	LastRun       *time.Time `json:"last_run,omitempty"`
	LastResources int        `json:"last_resources"`
	LastWarnings  int        `json:"last_warnings"`
	LastError     string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (im *Importer) State() any {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.state
}

// ComponentType implements introspection.Component.
func (im *Importer) ComponentType() string {
	return "importer"
}

var _ introspection.Introspectable = (*Importer)(nil)
var _ introspection.Component = (*Importer)(nil)

func (im *Importer) record(res *Result, err error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	now := time.Now()
	im.state.Runs++
	im.state.LastRun = &now
	im.state.LastError = ""
	if err != nil {
		im.state.Failures++
		im.state.LastError = err.Error()
	}
	if res != nil {
		im.state.LastResources = res.Resources
		im.state.LastWarnings = len(res.Report.Warnings)
	}
}

func (im *Importer) setWatching(watching bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.state.Watching = watching
}
