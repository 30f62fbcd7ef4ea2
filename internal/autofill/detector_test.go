package autofill

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	detector *Detector
	clock    *clockwork.FakeClock

	mu     sync.Mutex
	fields map[string]string
	fired  []Values
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:  clockwork.NewFakeClock(),
		fields: make(map[string]string),
	}
	f.detector = NewDetector(100*time.Millisecond, f.clock,
		func() map[string]string {
			f.mu.Lock()
			defer f.mu.Unlock()
			snap := make(map[string]string, len(f.fields))
			for k, v := range f.fields {
				snap[k] = v
			}
			return snap
		},
		func(v Values) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.fired = append(f.fired, v)
		},
	)
	t.Cleanup(f.detector.Close)
	return f
}

func (f *fixture) setField(name, value string) {
	f.mu.Lock()
	f.fields[name] = value
	f.mu.Unlock()
}

func (f *fixture) firedEvents() []Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Values(nil), f.fired...)
}

func TestDetector_BatchesAutofillIntoOneEvent(t *testing.T) {
	f := newFixture(t)

	// Browser autofills five fields nearly at once: the population signal
	// fires per field, followed by input events.
	fields := map[string]string{
		"addressLineOne": "510 W Georgia St",
		"city":           "Vancouver",
		"province":       "BC",
		"postalCode":     "V6B 1Z6",
		"country":        "CA",
	}
	for name, value := range fields {
		f.setField(name, value)
		f.detector.SignalPopulation()
		f.detector.FieldInput()
	}

	f.clock.Advance(100 * time.Millisecond)
	require.Eventually(t, func() bool { return len(f.firedEvents()) == 1 }, time.Second, time.Millisecond,
		"one batched event per autofill occurrence")
	assert.Equal(t, Values(fields), f.firedEvents()[0])
}

func TestDetector_IgnoresOrdinaryTyping(t *testing.T) {
	f := newFixture(t)

	f.setField("addressLineOne", "5")
	f.detector.FieldInput()
	f.setField("addressLineOne", "51")
	f.detector.FieldInput()

	f.clock.Advance(time.Second)
	assert.Empty(t, f.firedEvents(), "keystrokes without the population signal never fire")
}

func TestDetector_TrimsAndDropsEmptyValues(t *testing.T) {
	f := newFixture(t)

	f.setField("addressLineOne", "  510 W Georgia St  ")
	f.setField("addressLineTwo", "   ")
	f.setField("city", "")
	f.detector.SignalPopulation()
	f.detector.FieldInput()

	f.clock.Advance(100 * time.Millisecond)
	require.Eventually(t, func() bool { return len(f.firedEvents()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, Values{"addressLineOne": "510 W Georgia St"}, f.firedEvents()[0])
}

func TestDetector_RearmsForNextOccurrence(t *testing.T) {
	f := newFixture(t)

	f.setField("city", "Vancouver")
	f.detector.SignalPopulation()
	f.detector.FieldInput()
	f.clock.Advance(100 * time.Millisecond)
	require.Eventually(t, func() bool { return len(f.firedEvents()) == 1 }, time.Second, time.Millisecond)

	// Typing after the occurrence completed does not fire again.
	f.detector.FieldInput()
	f.clock.Advance(time.Second)
	require.Len(t, f.firedEvents(), 1, "self-disarms after one fire")

	// A second autofill occurrence fires a second event.
	f.setField("city", "Toronto")
	f.detector.SignalPopulation()
	f.detector.FieldInput()
	f.clock.Advance(100 * time.Millisecond)
	require.Eventually(t, func() bool { return len(f.firedEvents()) == 2 }, time.Second, time.Millisecond)
}

func TestDetector_OneFirePerOccurrence(t *testing.T) {
	f := newFixture(t)

	f.setField("city", "Vancouver")
	f.detector.SignalPopulation()
	f.detector.FieldInput()

	// More signals and inputs inside the batch window stay in the same
	// occurrence.
	f.detector.SignalPopulation()
	f.detector.FieldInput()
	f.detector.FieldInput()

	f.clock.Advance(200 * time.Millisecond)
	require.Eventually(t, func() bool { return len(f.firedEvents()) >= 1 }, time.Second, time.Millisecond)
	assert.Len(t, f.firedEvents(), 1)
}

func TestDetector_CloseSuppressesPendingFire(t *testing.T) {
	f := newFixture(t)

	f.setField("city", "Vancouver")
	f.detector.SignalPopulation()
	f.detector.FieldInput()

	f.detector.Close()
	f.detector.Close() // idempotent
	f.clock.Advance(time.Second)

	assert.Empty(t, f.firedEvents())

	f.detector.SignalPopulation()
	f.detector.FieldInput()
	f.clock.Advance(time.Second)
	assert.Empty(t, f.firedEvents(), "closed detector stays detached")
}
