package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/fs"
	ilifecycle "github.com/dasch-swiss/00A1-import-scripts/pkg/adapters/lifecycle"
	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// WatchOptions tunes Watch.
type WatchOptions struct {
	// Debounce defaults to fs.DefaultDebounce.
	Debounce time.Duration
	// OnResult is called after every rebuild, including the initial one.
	OnResult func(*Result, error)
}

// Watch rebuilds the data file once, then again whenever the data file, the
// project file or the images directory change. Failed rebuilds are reported
// and do not end the watch. It returns when ctx is cancelled.
func (im *Importer) Watch(ctx context.Context, opts WatchOptions) error {
	if _, err := os.Stat(im.cfg.DataFile); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan core.Event, 16)
	spec := supervisor.Spec{
		Name: "input-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return fs.NewWatcher(fs.WatchConfig{
				Files:    []string{im.cfg.DataFile, im.cfg.ProjectFile},
				Dirs:     []string{im.cfg.ImagesDir},
				Ignore:   []string{im.cfg.Output},
				Debounce: opts.Debounce,
				Logger:   im.logger,
			}, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
			ResetDuration:   time.Minute,
			MaxRestarts:     5,
			MaxDuration:     5 * time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("import-watch", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := sup.Stop(stopCtx); err != nil {
			im.logger.Warn("failed to stop watcher", "error", err)
		}
	}()

	src := ilifecycle.NewSource(ilifecycle.Inputs{
		DataFile:    im.cfg.DataFile,
		ProjectFile: im.cfg.ProjectFile,
		ImagesDir:   im.cfg.ImagesDir,
	}, events)
	if err := src.Start(ctx); err != nil {
		return err
	}

	im.setWatching(true)
	defer im.setWatching(false)

	rebuild := func(reason string) {
		im.logger.Info("rebuilding", "reason", reason)
		res, err := im.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			im.logger.Error("rebuild failed", "error", err)
		}
		if opts.OnResult != nil {
			opts.OnResult(res, err)
		}
	}

	rebuild("initial")
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-src.Events():
			if !ok {
				return nil
			}
			reason := e.String()
			// one rebuild covers everything that is already queued
		drain:
			for {
				select {
				case more, ok := <-src.Events():
					if !ok {
						break drain
					}
					im.logger.Debug("coalesced change", "event", more.String())
				default:
					break drain
				}
			}
			rebuild(reason)
		}
	}
}
