package fs

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

func TestWatcherSupervisorRestarts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	events := make(chan core.Event, 4)
	created := make(chan *Watcher, 2)

	spec := supervisor.Spec{
		Name: "input-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			w := NewWatcher(WatchConfig{Dirs: []string{dir}, Debounce: 10 * time.Millisecond}, events)
			created <- w
			return w, nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      1,
			ResetDuration:   50 * time.Millisecond,
			MaxRestarts:     2,
			MaxDuration:     200 * time.Millisecond,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("test-watcher", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		t.Fatalf("failed to start supervisor: %v", err)
	}

	first := waitForWorker(t, created, "first")
	waitForActive(t, first)

	// closing the fsnotify watcher ends the loop with an error
	_ = first.watcher.Close()

	second := waitForWorker(t, created, "second")
	if first == second {
		t.Fatalf("expected supervisor to restart watcher with a new instance")
	}
	waitForActive(t, second)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	if err := sup.Stop(stopCtx); err != nil {
		t.Fatalf("failed to stop supervisor: %v", err)
	}
}

func waitForWorker(t *testing.T, ch <-chan *Watcher, label string) *Watcher {
	t.Helper()

	select {
	case w := <-ch:
		return w
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for %s watcher", label)
		return nil
	}
}

func waitForActive(t *testing.T, w *Watcher) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		if state, ok := w.Inspect().(WatcherState); ok && state.Active {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for watcher to become active")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
