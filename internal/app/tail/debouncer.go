package tail

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid write notifications into a single callback
// after a quiet period
type Debouncer interface {
	Trigger()
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration time.Duration
	callback func()
	timer    *time.Timer
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a new Debouncer with the specified quiet period and callback
func NewDebouncer(duration time.Duration, callback func()) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger registers a notification and resets the debounce timer. A zero
// duration fires the callback immediately.
func (d *debouncer) Trigger() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.duration == 0 {
		d.mu.Unlock()
		d.callback()

		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
	d.mu.Unlock()
}

// Stop stops the debouncer and cancels any pending callback
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire executes the callback once the quiet period has elapsed
func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	d.timer = nil
	d.mu.Unlock()

	d.callback()
}
