package form

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/address-entry/internal/cache"
	"github.com/couchcryptid/address-entry/internal/observability"
	"github.com/couchcryptid/address-entry/internal/resolver"
)

func newTestRegistry(t *testing.T, geo *fakeGeo) (*Sessions, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := resolver.New(geo, cache.New(30*time.Minute, clock, metrics), metrics, logger)

	reg := NewSessions(r, Config{
		Mode:  resolver.ModeAutocomplete,
		Clock: clock,
	}, metrics, logger)
	t.Cleanup(reg.CloseAll)
	return reg, clock
}

func TestSessions_Lifecycle(t *testing.T) {
	reg, _ := newTestRegistry(t, vancouverGeo())

	a := reg.Create()
	b := reg.Create()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, reg.Len())

	got, err := reg.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, reg.Close(a.ID()))
	assert.Equal(t, 1, reg.Len())

	_, err = reg.Get(a.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, reg.Close(a.ID()), ErrSessionNotFound)
}

func TestSessions_StateDoesNotLeakAcrossSessions(t *testing.T) {
	reg, clock := newTestRegistry(t, vancouverGeo())

	a := reg.Create()
	b := reg.Create()

	a.SetData(Patch{AddressLineOne: ptr("510 W Georgia St")})
	clock.Advance(301 * time.Millisecond)
	require.Eventually(t, func() bool {
		return a.Typeahead().Snapshot().State == resolver.StateResulted
	}, time.Second, time.Millisecond)
	_, err := a.Typeahead().Select(context.Background(), a.Typeahead().Snapshot().Candidates[0])
	require.NoError(t, err)

	assert.Equal(t, "Vancouver", a.Data().City)
	assert.Empty(t, b.Data(), "sibling session untouched")
	assert.Equal(t, resolver.StateIdle, b.Typeahead().Snapshot().State)
}

func TestSessions_ShareOneResultCache(t *testing.T) {
	geo := vancouverGeo()
	reg, clock := newTestRegistry(t, geo)

	a := reg.Create()
	b := reg.Create()

	for _, s := range []*Session{a, b} {
		s.SetData(Patch{AddressLineOne: ptr("510 W Georgia St")})
		clock.Advance(301 * time.Millisecond)
		require.Eventually(t, func() bool {
			return s.Typeahead().Snapshot().State == resolver.StateResulted
		}, time.Second, time.Millisecond)
	}

	ac, _, _ := geo.calls()
	assert.Equal(t, 1, ac, "identical queries across sessions dedupe")
}
