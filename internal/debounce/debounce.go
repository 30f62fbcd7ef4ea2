// Package debounce provides the quiet-period primitive that delays a
// rapidly-changing input value until it has been stable for a fixed
// duration. It is a pure timing component: no retries, no error states.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultQuietPeriod is the keystroke settle time before a value is
// treated as a query.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer emits the latest value only after no new value has arrived for
// the quiet period. Every Update cancels and restarts the timer; a value
// superseded before its timer fires is never emitted, and nothing is emitted
// after Stop.
type Debouncer struct {
	quiet time.Duration
	clock clockwork.Clock
	emit  func(string)

	mu      sync.Mutex
	timer   clockwork.Timer
	pending string
	stopped bool
}

// New creates a Debouncer that calls emit with each settled value.
// The emit callback runs on the timer goroutine.
func New(quiet time.Duration, clock clockwork.Clock, emit func(value string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		quiet: quiet,
		clock: clock,
		emit:  emit,
	}
}

// Update feeds a new input value, restarting the quiet-period timer.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.emit(value)
}

// Cancel discards any pending emit without stopping the Debouncer; later
// Updates behave normally.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop cancels any pending emit permanently. Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
