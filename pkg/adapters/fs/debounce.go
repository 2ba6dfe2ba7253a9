package fs

import (
	"sync"
	"time"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/core"
)

// debouncer coalesces bursts of events per path: only the last event of a
// burst is delivered, once the path has been quiet for delay.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Path]; ok && t.Stop() {
		// the stopped timer never runs, release its slot
		d.pending.Done()
	}

	d.pending.Add(1)
	d.timers[e.Path] = time.AfterFunc(d.delay, func() {
		defer d.pending.Done()
		d.mu.Lock()
		delete(d.timers, e.Path)
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fire(e)
		}
	})
}

// stopAndWait drops pending events and waits up to timeout for timers that
// are already firing.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.pending.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
