package resolver

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/address-entry/internal/debounce"
	"github.com/couchcryptid/address-entry/internal/domain"
	"github.com/couchcryptid/address-entry/internal/observability"
)

// State is the typeahead field's position in the query-select cycle.
// "No results", "loading", and "below the query threshold" are three
// distinguishable, mutually exclusive states.
type State string

const (
	// StateIdle: query below the two-character threshold, nothing to show.
	StateIdle State = "idle"
	// StateQuerying: a debounced query is in flight.
	StateQuerying State = "querying"
	// StateResulted: a candidate list (possibly empty) is available.
	StateResulted State = "resulted"
	// StateResolving: a chosen candidate's full details are being fetched.
	StateResolving State = "resolving"
)

// Snapshot is a point-in-time view of the typeahead for rendering.
type Snapshot struct {
	State      State              `json:"state"`
	Text       string             `json:"text"`
	Candidates []domain.Candidate `json:"candidates"`
	Error      string             `json:"error,omitempty"`
}

// Typeahead drives one address field: it debounces keystrokes into queries,
// holds the candidate list, and resolves selections. A disabled mode makes
// it a plain pass-through text field that never queries.
type Typeahead struct {
	resolver  *Resolver
	mode      Mode
	debouncer *debounce.Debouncer
	filters   func() QueryFilters
	suppress  func() bool // autofill-in-progress flag shared with the form
	onResolve func(Resolution)
	metrics   *observability.Metrics
	logger    *slog.Logger

	mu           sync.Mutex
	text         string
	queried      string // text of the query whose results are current
	state        State
	candidates   []domain.Candidate
	queryErr     error
	skipNext     bool
	forceRefresh bool
}

// TypeaheadConfig wires a Typeahead to its form.
type TypeaheadConfig struct {
	Mode        Mode
	QuietPeriod time.Duration
	Clock       clockwork.Clock
	// Filters supplies the live contextual filters (bias position from the
	// viewport, country restriction from the form) at query time.
	Filters func() QueryFilters
	// Suppress reports whether an autofill resolution is in flight, in
	// which case queries against the autofilled text are skipped.
	Suppress func() bool
	// OnResolve receives every successful selection or geolocation
	// resolution so the form can apply it.
	OnResolve func(Resolution)
}

// NewTypeahead creates the state machine for one address field.
func NewTypeahead(r *Resolver, cfg TypeaheadConfig, metrics *observability.Metrics, logger *slog.Logger) *Typeahead {
	t := &Typeahead{
		resolver:  r,
		mode:      cfg.Mode,
		filters:   cfg.Filters,
		suppress:  cfg.Suppress,
		onResolve: cfg.OnResolve,
		metrics:   metrics,
		logger:    logger,
		state:     StateIdle,
	}
	if t.filters == nil {
		t.filters = func() QueryFilters { return QueryFilters{} }
	}
	if t.suppress == nil {
		t.suppress = func() bool { return false }
	}
	t.debouncer = debounce.New(cfg.QuietPeriod, cfg.Clock, t.settled)
	return t
}

// SetText feeds a new visible text value, from a keystroke or a
// programmatic rewrite. Queries fire only after the quiet period, and only
// when the text actually changed since the last feed (a forced-refresh
// marker from CloseDropdown overrides the equality check once).
func (t *Typeahead) SetText(text string) {
	t.mu.Lock()

	if t.mode == ModeDisabled {
		t.text = text
		t.mu.Unlock()
		return
	}

	changed := text != t.text || t.forceRefresh
	t.forceRefresh = false
	t.text = text

	if t.skipNext {
		// A selection or geolocation just rewrote the text; the first feed
		// after that rewrite is its render echo, whether or not the value
		// changed. Honored exactly once.
		t.skipNext = false
		t.mu.Unlock()
		t.metrics.QueriesSuppressed.WithLabelValues("skip_next").Inc()
		return
	}

	if !changed {
		t.mu.Unlock()
		return
	}

	if t.suppress() {
		t.mu.Unlock()
		t.metrics.QueriesSuppressed.WithLabelValues("autofill").Inc()
		return
	}

	t.mu.Unlock()
	t.debouncer.Update(text)
}

// settled receives the debounced text and runs the query.
func (t *Typeahead) settled(text string) {
	if utf8.RuneCountInString(text) < MinQueryLength {
		t.mu.Lock()
		t.state = StateIdle
		t.candidates = nil
		t.queryErr = nil
		t.queried = text
		t.mu.Unlock()
		t.metrics.QueriesSuppressed.WithLabelValues("short_query").Inc()
		return
	}

	if t.suppress() {
		// Autofill resolution started while this value sat in the quiet
		// period; its composite query supersedes the field's own.
		t.metrics.QueriesSuppressed.WithLabelValues("autofill").Inc()
		return
	}

	t.mu.Lock()
	t.state = StateQuerying
	t.queried = text
	filters := t.filters()
	t.mu.Unlock()

	candidates, err := t.resolver.Query(context.Background(), t.mode, text, DropdownMaxResults, filters)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.queried != text {
		// A newer query superseded this one while it was in flight; its
		// results must not overwrite fresher state.
		return
	}
	t.state = StateResulted
	t.candidates = candidates
	t.queryErr = err
	if err != nil {
		t.logger.Warn("typeahead query failed", "mode", string(t.mode), "error", err)
	}
}

// Select resolves a chosen candidate into a full address. On success the
// visible text is rewritten to the derived first address line and the next
// query against that rewrite is skipped.
func (t *Typeahead) Select(ctx context.Context, candidate domain.Candidate) (Resolution, error) {
	if !candidate.Valid() {
		return Resolution{}, ErrNoResults
	}

	t.mu.Lock()
	t.state = StateResolving
	filters := t.filters()
	t.mu.Unlock()

	res, err := t.resolver.Resolve(ctx, candidate, filters.Language, filters.PoliticalView)

	t.mu.Lock()
	if err != nil {
		t.state = StateResulted
		t.mu.Unlock()
		return Resolution{}, err
	}
	t.state = StateIdle
	t.candidates = nil
	t.queryErr = nil
	t.text = res.AddressLineOne
	t.skipNext = true
	t.mu.Unlock()
	t.debouncer.Cancel()

	if t.onResolve != nil {
		t.onResolve(res)
	}
	return res, nil
}

// Locate resolves the user's current coordinate (the geolocation button)
// through reverse geocoding, with the same text-rewrite and skip-next
// behavior as a selection.
func (t *Typeahead) Locate(ctx context.Context, position []float64) (Resolution, error) {
	t.mu.Lock()
	t.state = StateResolving
	filters := t.filters()
	t.mu.Unlock()

	res, err := t.resolver.ResolveFromPosition(ctx, position, filters.Language)

	t.mu.Lock()
	if err != nil {
		t.state = StateIdle
		t.mu.Unlock()
		return Resolution{}, err
	}
	t.state = StateIdle
	t.candidates = nil
	t.queryErr = nil
	t.text = res.AddressLineOne
	t.skipNext = true
	t.mu.Unlock()
	t.debouncer.Cancel()

	if t.onResolve != nil {
		t.onResolve(res)
	}
	return res, nil
}

// CloseDropdown reports that the dropdown closed without a selection. The
// typed text is preserved, and the next SetText re-evaluates even when the
// string content is identical. This matters for autofill-originated values,
// which never generate an ordinary change the machine would notice.
func (t *Typeahead) CloseDropdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forceRefresh = true
}

// Reset returns the field to its pristine empty state.
func (t *Typeahead) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = ""
	t.queried = ""
	t.state = StateIdle
	t.candidates = nil
	t.queryErr = nil
	t.skipNext = false
	t.forceRefresh = false
}

// SetTextResolved rewrites the visible text from a resolution applied
// outside this field (autofill), skipping the next query it would trigger.
func (t *Typeahead) SetTextResolved(text string) {
	t.debouncer.Cancel()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
	t.skipNext = true
}

// Snapshot returns the current render state.
func (t *Typeahead) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		State:      t.state,
		Text:       t.text,
		Candidates: append([]domain.Candidate(nil), t.candidates...),
	}
	if t.queryErr != nil {
		s.Error = t.queryErr.Error()
	}
	return s
}

// Stop cancels the debouncer; pending queries never fire afterwards.
func (t *Typeahead) Stop() {
	t.debouncer.Stop()
}
