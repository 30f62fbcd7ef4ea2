package resolver

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/address-entry/internal/adapter/geoplaces"
	"github.com/couchcryptid/address-entry/internal/debounce"
	"github.com/couchcryptid/address-entry/internal/domain"
)

type typeaheadFixture struct {
	api      *fakePlaces
	clock    *clockwork.FakeClock
	field    *Typeahead
	suppress atomic.Bool
	resolved chan Resolution
}

func newTypeaheadFixture(t *testing.T, mode Mode, api *fakePlaces) *typeaheadFixture {
	t.Helper()
	f := &typeaheadFixture{
		api:      api,
		clock:    clockwork.NewFakeClock(),
		resolved: make(chan Resolution, 4),
	}
	r := newTestResolver(api)
	f.field = NewTypeahead(r, TypeaheadConfig{
		Mode:        mode,
		QuietPeriod: debounce.DefaultQuietPeriod,
		Clock:       f.clock,
		Suppress:    f.suppress.Load,
		OnResolve:   func(res Resolution) { f.resolved <- res },
	}, r.metrics, r.logger)
	t.Cleanup(f.field.Stop)
	return f
}

// settle advances past the quiet period and waits for the query round trip.
func (f *typeaheadFixture) settle(t *testing.T) {
	t.Helper()
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	require.Eventually(t, func() bool {
		return f.field.Snapshot().State == StateResulted
	}, time.Second, time.Millisecond)
}

func oneCandidateAPI() *fakePlaces {
	return &fakePlaces{
		autocompleteOut: geoplaces.AutocompleteOutput{
			ResultItems: []geoplaces.AutocompleteResultItem{
				{PlaceID: "p1", Address: &domain.FullAddress{Label: "510 W Georgia St, Vancouver, BC"}},
			},
		},
		getPlaceOut: geoplaces.GetPlaceOutput{
			PlaceID: "p1",
			Address: &domain.FullAddress{
				Label:         "510 W Georgia St, Vancouver, BC V6B 1Z6, Canada",
				Country:       &domain.CountryRef{Code2: "CA"},
				Street:        "W Georgia St",
				AddressNumber: "510",
			},
			Position: []float64{-123.116226, 49.28133},
		},
	}
}

func TestTypeahead_DebouncesKeystrokesIntoOneQuery(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	for _, text := range []string{"5", "51", "510", "510 W"} {
		f.field.SetText(text)
		f.clock.Advance(100 * time.Millisecond)
	}
	f.settle(t)

	ac, _, _, _ := f.api.calls()
	assert.Equal(t, 1, ac, "only the settled text queries")

	s := f.field.Snapshot()
	assert.Equal(t, StateResulted, s.State)
	assert.Equal(t, "510 W", s.Text)
	require.Len(t, s.Candidates, 1)
	assert.Equal(t, "p1", s.Candidates[0].PlaceID)
}

func TestTypeahead_ShortTextSettlesToIdle(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	f.field.SetText("510")
	f.settle(t)
	require.Equal(t, StateResulted, f.field.Snapshot().State)

	// Deleting back below the threshold clears the dropdown without a query.
	f.field.SetText("5")
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	require.Eventually(t, func() bool {
		return f.field.Snapshot().State == StateIdle
	}, time.Second, time.Millisecond)

	assert.Empty(t, f.field.Snapshot().Candidates)
	ac, _, _, _ := f.api.calls()
	assert.Equal(t, 1, ac)
}

func TestTypeahead_UnchangedTextDoesNotRequery(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	f.field.SetText("510")
	f.settle(t)
	f.field.SetText("510")
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	ac, _, _, _ := f.api.calls()
	assert.Equal(t, 1, ac)
}

func TestTypeahead_SelectRewritesTextAndSkipsNextQuery(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	f.field.SetText("510")
	f.settle(t)

	res, err := f.field.Select(context.Background(), f.field.Snapshot().Candidates[0])
	require.NoError(t, err)
	assert.Equal(t, "510 W Georgia St", res.AddressLineOne)

	s := f.field.Snapshot()
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, "510 W Georgia St", s.Text)
	assert.Empty(t, s.Candidates)

	select {
	case got := <-f.resolved:
		assert.Equal(t, "p1", got.PlaceID)
	default:
		t.Fatal("resolution callback not delivered")
	}

	// The rewrite arrives back as a SetText; it must not query again.
	f.field.SetText("510 W Georgia St")
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	ac, _, _, _ := f.api.calls()
	assert.Equal(t, 1, ac, "skip-next consumed the rewrite")

	// But only once: the user editing the rewritten text queries normally.
	f.field.SetText("510 W Georgia Street")
	f.settle(t)
	ac, _, _, _ = f.api.calls()
	assert.Equal(t, 2, ac)
}

func TestTypeahead_SelectInvalidCandidate(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	_, err := f.field.Select(context.Background(), domain.Candidate{})
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestTypeahead_AutofillSuppressionSkipsQuery(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())
	f.suppress.Store(true)

	f.field.SetText("510 W Georgia St")
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	ac, _, _, _ := f.api.calls()
	assert.Zero(t, ac, "autofilled text must not open a dropdown")
	assert.Equal(t, "510 W Georgia St", f.field.Snapshot().Text)

	f.suppress.Store(false)
	f.field.SetText("510 W Georgia St N")
	f.settle(t)
	ac, _, _, _ = f.api.calls()
	assert.Equal(t, 1, ac)
}

func TestTypeahead_CloseDropdownForcesReevaluation(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	f.field.SetText("510")
	f.settle(t)

	// Dropdown dismissed, then the same text is fed again (the autofill
	// pathway re-feeds unchanged values). It must requery this time.
	f.field.CloseDropdown()
	f.field.SetText("510")
	f.settle(t)

	ac, _, gp, _ := f.api.calls()
	assert.Equal(t, 1, ac, "identical query text served from the cache")
	assert.Zero(t, gp)
}

func TestTypeahead_DisabledModeNeverQueries(t *testing.T) {
	f := newTypeaheadFixture(t, ModeDisabled, oneCandidateAPI())

	f.field.SetText("510 W Georgia St")
	f.clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)

	s := f.field.Snapshot()
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, "510 W Georgia St", s.Text)
	ac, sg, _, _ := f.api.calls()
	assert.Zero(t, ac+sg)
}

func TestTypeahead_LocateRewritesFromPosition(t *testing.T) {
	api := oneCandidateAPI()
	api.reverseGeocodeOut = geoplaces.ReverseGeocodeOutput{
		ResultItems: []geoplaces.ReverseGeocodeResultItem{{
			PlaceID: "rev-1",
			Address: &domain.FullAddress{
				AddressNumber: "510",
				Street:        "W Georgia St",
				Country:       &domain.CountryRef{Code2: "CA"},
			},
			Position: []float64{-123.116226, 49.28133},
		}},
	}
	f := newTypeaheadFixture(t, ModeAutocomplete, api)

	res, err := f.field.Locate(context.Background(), []float64{-123.1162, 49.2813})
	require.NoError(t, err)
	assert.Equal(t, "510 W Georgia St", res.AddressLineOne)
	assert.Equal(t, "510 W Georgia St", f.field.Snapshot().Text)

	// The rewrite is skip-next protected like a selection.
	f.field.SetText("510 W Georgia St")
	f.clock.Advance(debounce.DefaultQuietPeriod + time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	ac, _, _, _ := f.api.calls()
	assert.Zero(t, ac)
}

func TestTypeahead_ResetClearsEverything(t *testing.T) {
	f := newTypeaheadFixture(t, ModeAutocomplete, oneCandidateAPI())

	f.field.SetText("510")
	f.settle(t)
	f.field.Reset()

	s := f.field.Snapshot()
	assert.Equal(t, StateIdle, s.State)
	assert.Empty(t, s.Text)
	assert.Empty(t, s.Candidates)
}
