// Package autofill detects bulk external population of form fields, the
// platform-neutral contract behind browser autofill: some native signal
// marks fields as externally populated, the first subsequent input event
// confirms it, and one batched callback fires with every filled value.
package autofill

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultBatchWindow is the settle time that batches near-simultaneous
// population of multiple fields into a single event.
const DefaultBatchWindow = 100 * time.Millisecond

// Values is a flat record of the form's non-empty field values at the
// moment an autofill occurrence fired.
type Values map[string]string

type state int

const (
	stateIdle state = iota
	stateArmed
	stateBatching
)

// Detector observes one form. The population signal is the sole gate that
// arms it; ordinary keystrokes never fire the callback. After firing once
// it disarms and waits for the next occurrence.
type Detector struct {
	window   time.Duration
	clock    clockwork.Clock
	snapshot func() map[string]string
	callback func(Values)

	mu     sync.Mutex
	state  state
	timer  clockwork.Timer
	closed bool
}

// NewDetector creates a Detector over a form. snapshot must return the
// form's current field values; callback receives the batched, trimmed,
// non-empty values once per autofill occurrence.
func NewDetector(window time.Duration, clock clockwork.Clock, snapshot func() map[string]string, callback func(Values)) *Detector {
	if window <= 0 {
		window = DefaultBatchWindow
	}
	return &Detector{
		window:   window,
		clock:    clock,
		snapshot: snapshot,
		callback: callback,
	}
}

// SignalPopulation reports the platform's external-population signal (the
// analog of the autofill pseudo-state animation firing). Arms the detector
// unless a batch is already pending.
func (d *Detector) SignalPopulation() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.state == stateBatching {
		return
	}
	d.state = stateArmed
}

// FieldInput reports an input event on an observed field. Only the first
// input after arming starts the batch window; inputs while idle are
// ordinary typing and are ignored.
func (d *Detector) FieldInput() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.state != stateArmed {
		return
	}
	d.state = stateBatching
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.window, d.fire)
}

func (d *Detector) fire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.state = stateIdle
	d.timer = nil
	callback := d.callback
	snapshot := d.snapshot
	d.mu.Unlock()

	values := make(Values)
	for field, value := range snapshot() {
		if value = strings.TrimSpace(value); value != "" {
			values[field] = value
		}
	}
	callback(values)
}

// Close detaches the detector and resets its state. Safe to call multiple
// times; a closed detector never fires.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.state = stateIdle
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
