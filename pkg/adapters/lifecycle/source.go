// Package lifecycle turns changes of the import inputs into lifecycle events.
package lifecycle

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/aretw0/lifecycle"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// Input names the part of an import a changed file belongs to.
type Input string

const (
	InputData    Input = "data file"
	InputProject Input = "project file"
	InputImage   Input = "image"
	InputOther   Input = "input"
)

// Inputs locates the files of one import. Paths are compared in absolute
// form; empty fields never match.
type Inputs struct {
	DataFile    string
	ProjectFile string
	ImagesDir   string
}

// Classify returns the input path belongs to.
func (in Inputs) Classify(path string) Input {
	path = absPath(path)
	switch {
	case in.DataFile != "" && path == absPath(in.DataFile):
		return InputData
	case in.ProjectFile != "" && path == absPath(in.ProjectFile):
		return InputProject
	case in.ImagesDir != "" && strings.HasPrefix(path, absPath(in.ImagesDir)+string(filepath.Separator)):
		return InputImage
	}
	return InputOther
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Change is the lifecycle event for one changed input file.
type Change struct {
	core.Event
	Input Input
}

// String reads like "image created: images/Anubis.jpg".
func (c Change) String() string {
	var verb string
	switch c.Type {
	case core.EventCreate:
		verb = "created"
	case core.EventDelete:
		verb = "removed"
	default:
		verb = "modified"
	}
	return string(c.Input) + " " + verb + ": " + c.Path
}

type inputSource struct {
	inputs Inputs
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source emitting a Change for every event of
// an fs.Watcher. Its channel is closed when ctx ends or events is closed.
func NewSource(inputs Inputs, events <-chan core.Event) lifecycle.Source {
	return &inputSource{
		inputs: inputs,
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *inputSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *inputSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				change := Change{Event: e, Input: s.inputs.Classify(e.Path)}
				select {
				case s.out <- change:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
