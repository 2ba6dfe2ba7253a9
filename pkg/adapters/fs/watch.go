package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// DefaultDebounce is the quiet period after which a change is reported.
const DefaultDebounce = 200 * time.Millisecond

// WatchConfig selects what a Watcher observes.
type WatchConfig struct {
	// Files are watched individually (through their parent directory).
	Files []string
	// Dirs are watched as a whole: any visible file inside counts.
	Dirs []string
	// Ignore lists paths that are never reported, e.g. the generated output.
	Ignore []string
	// Debounce defaults to DefaultDebounce.
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Watcher reports changes of the import inputs on a channel.
// It is a lifecycle worker and can run under a supervisor.
type Watcher struct {
	*worker.BaseWorker
	config    WatchConfig
	files     map[string]bool
	dirs      map[string]bool
	ignore    map[string]bool
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc

	mu        sync.RWMutex
	active    bool
	delivered int
	lastEvent *core.Event
}

// NewWatcher creates a watcher that sends debounced events to events.
func NewWatcher(cfg WatchConfig, events chan<- core.Event) *Watcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	w := &Watcher{
		BaseWorker: worker.NewBaseWorker("input-watcher"),
		config:     cfg,
		files:      make(map[string]bool),
		dirs:       make(map[string]bool),
		ignore:     make(map[string]bool),
		events:     events,
	}
	for _, f := range cfg.Files {
		w.files[absPath(f)] = true
	}
	for _, d := range cfg.Dirs {
		w.dirs[absPath(d)] = true
	}
	for _, i := range cfg.Ignore {
		w.ignore[absPath(i)] = true
	}
	return w
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(p)
}

// Start registers the watched directories and runs the event loop.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.BaseWorker.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.register(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.config.Debounce)
	w.setActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// register adds the parent directory of every watched file and every
// watched directory. Missing directories are skipped; a directory created
// later is not picked up until restart.
func (w *Watcher) register(watcher *fsnotify.Watcher) error {
	seen := make(map[string]bool)
	added := 0
	add := func(dir string) error {
		if seen[dir] {
			return nil
		}
		seen[dir] = true
		if err := watcher.Add(dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				w.config.Logger.Warn("not watching missing directory", "dir", dir)
				return nil
			}
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		added++
		return nil
	}
	for f := range w.files {
		if err := add(filepath.Dir(f)); err != nil {
			return err
		}
	}
	for d := range w.dirs {
		if info, err := os.Stat(d); err == nil && !info.IsDir() {
			return fmt.Errorf("%s is not a directory", d)
		}
		if err := add(d); err != nil {
			return err
		}
	}
	if added == 0 {
		return fmt.Errorf("nothing to watch")
	}
	return nil
}

// Stop ends the event loop.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

// State implements worker.Worker.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Active    bool        `json:"active"`
	Files     int         `json:"files"`
	Dirs      int         `json:"dirs"`
	Delivered int         `json:"delivered"`
	LastEvent *core.Event `json:"last_event,omitempty"`
}

// Inspect returns a snapshot of the watcher, see introspection.Introspectable.
func (w *Watcher) Inspect() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WatcherState{
		Active:    w.active,
		Files:     len(w.files),
		Dirs:      len(w.dirs),
		Delivered: w.delivered,
		LastEvent: w.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "watcher"
}

var _ introspection.Component = (*Watcher)(nil)

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
}

func (w *Watcher) recordDelivery(e core.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.delivered++
	w.lastEvent = &e
}

// relevant reports whether a filesystem path belongs to the watched inputs.
func (w *Watcher) relevant(name string) bool {
	p := absPath(name)
	if w.ignore[p] || IsTempFile(p) || IsHidden(p) {
		return false
	}
	if w.files[p] {
		return true
	}
	return w.dirs[filepath.Dir(p)]
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func (w *Watcher) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if !w.relevant(event.Name) {
		return false
	}
	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      absPath(event.Name),
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// the events channel may be closed while stopping
			_ = recover()
		}()
		select {
		case w.events <- e:
			w.recordDelivery(e)
		case <-ctx.Done():
		}
	})
	return true
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.config.Logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.setActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.config.Logger.Error("fsnotify error", "error", wErr)
			if w.config.ErrorHandler != nil {
				w.config.ErrorHandler(wErr)
			}
		}
	}
}
