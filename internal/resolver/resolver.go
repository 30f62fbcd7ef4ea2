// Package resolver turns free-text address input into resolved, structured
// addresses. It owns the typeahead query path (autocomplete or suggest,
// through the shared result cache), candidate filtering, and the resolution
// of a chosen candidate or raw coordinate into a full address plus position.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/couchcryptid/address-entry/internal/adapter/geoplaces"
	"github.com/couchcryptid/address-entry/internal/cache"
	"github.com/couchcryptid/address-entry/internal/domain"
	"github.com/couchcryptid/address-entry/internal/observability"
)

// MinQueryLength is the shortest debounced query that triggers a network
// call; anything shorter clears the candidate list instead.
const MinQueryLength = 2

// DropdownMaxResults is the candidate count requested for the dropdown.
const DropdownMaxResults = 5

// PlaceTypePointOfInterest marks places whose own name should land in the
// second address line so a business name never overwrites the street address.
const PlaceTypePointOfInterest = "PointOfInterest"

// Cache tags for consumed-entry cleanup.
const (
	tagTypeahead      = "typeahead"
	tagGetPlace       = "getPlace"
	tagReverseGeocode = "reverseGeocode"
)

// ErrNoResults is returned when a resolution finds no matching place.
var ErrNoResults = errors.New("no geocoding results found")

// Mode selects which backend query shape drives the typeahead.
type Mode string

const (
	// ModeAutocomplete is the broad query shape with no mandatory bias position.
	ModeAutocomplete Mode = "autocomplete"
	// ModeSuggest is the nearby query shape; bias position defaults to [0,0].
	ModeSuggest Mode = "suggest"
	// ModeDisabled renders a plain text field: no network calls, no dropdown.
	ModeDisabled Mode = "disabled"
)

// ParseMode validates a typeahead mode string. The empty string means
// disabled; anything else unrecognized is a configuration error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeDisabled):
		return ModeDisabled, nil
	case string(ModeAutocomplete):
		return ModeAutocomplete, nil
	case string(ModeSuggest):
		return ModeSuggest, nil
	default:
		return "", fmt.Errorf("invalid typeahead mode %q: must be %q, %q, or empty", s, ModeAutocomplete, ModeSuggest)
	}
}

// PlacesAPI is the slice of the Geo Places client the resolver consumes.
type PlacesAPI interface {
	Autocomplete(ctx context.Context, input geoplaces.AutocompleteInput) (geoplaces.AutocompleteOutput, error)
	Suggest(ctx context.Context, input geoplaces.SuggestInput) (geoplaces.SuggestOutput, error)
	GetPlace(ctx context.Context, input geoplaces.GetPlaceInput) (geoplaces.GetPlaceOutput, error)
	ReverseGeocode(ctx context.Context, input geoplaces.ReverseGeocodeInput) (geoplaces.ReverseGeocodeOutput, error)
}

// QueryFilters is the contextual slice of form state that shapes a query.
type QueryFilters struct {
	Language          string
	PoliticalView     string
	BiasPosition      []float64 // map viewport center, [lng, lat]
	IncludeCountries  []string
	IncludePlaceTypes []string
}

// Resolution is a resolved place: the derived display lines plus the raw
// structured address and position from the backend.
type Resolution struct {
	PlaceID        string
	AddressLineOne string
	AddressLineTwo string
	Address        *domain.FullAddress
	Position       []float64
	PlaceType      string
}

// Resolver queries and resolves places through the shared result cache.
type Resolver struct {
	api     PlacesAPI
	cache   *cache.Cache
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New creates a Resolver.
func New(api PlacesAPI, c *cache.Cache, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		api:     api,
		cache:   c,
		metrics: metrics,
		logger:  logger,
	}
}

// Query returns the ordered candidate list for a debounced query string.
// Queries shorter than MinQueryLength return an empty list without touching
// the network. Candidates missing an ID or label are discarded.
func (r *Resolver) Query(ctx context.Context, mode Mode, text string, maxResults int, filters QueryFilters) ([]domain.Candidate, error) {
	if mode == ModeDisabled || utf8.RuneCountInString(text) < MinQueryLength {
		return nil, nil
	}

	var (
		candidates []domain.Candidate
		err        error
	)
	switch mode {
	case ModeAutocomplete:
		candidates, err = r.autocomplete(ctx, text, maxResults, filters)
	case ModeSuggest:
		candidates, err = r.suggest(ctx, text, maxResults, filters)
	default:
		return nil, fmt.Errorf("invalid typeahead mode %q", mode)
	}

	switch {
	case err != nil:
		r.metrics.TypeaheadQueries.WithLabelValues(string(mode), "error").Inc()
		return nil, err
	case len(candidates) == 0:
		r.metrics.TypeaheadQueries.WithLabelValues(string(mode), "empty").Inc()
	default:
		r.metrics.TypeaheadQueries.WithLabelValues(string(mode), "success").Inc()
	}
	return candidates, nil
}

func (r *Resolver) autocomplete(ctx context.Context, text string, maxResults int, f QueryFilters) ([]domain.Candidate, error) {
	input := geoplaces.AutocompleteInput{
		QueryText:     text,
		MaxResults:    maxResults,
		Language:      f.Language,
		PoliticalView: f.PoliticalView,
	}
	if len(f.IncludeCountries) > 0 || len(f.IncludePlaceTypes) > 0 {
		input.Filter = &geoplaces.Filter{
			IncludeCountries:  f.IncludeCountries,
			IncludePlaceTypes: f.IncludePlaceTypes,
		}
	}

	key := cache.Key(tagTypeahead, map[string]any{"api": ModeAutocomplete, "input": input})
	v, err := r.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		out, err := r.api.Autocomplete(ctx, input)
		if err != nil {
			return nil, err
		}
		candidates := make([]domain.Candidate, 0, len(out.ResultItems))
		for _, item := range out.ResultItems {
			if item.PlaceID == "" || item.Address == nil || item.Address.Label == "" {
				continue
			}
			candidates = append(candidates, domain.Candidate{PlaceID: item.PlaceID, Title: item.Address.Label})
		}
		return candidates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Candidate), nil
}

func (r *Resolver) suggest(ctx context.Context, text string, maxResults int, f QueryFilters) ([]domain.Candidate, error) {
	bias := f.BiasPosition
	if bias == nil {
		bias = []float64{0, 0}
	}
	input := geoplaces.SuggestInput{
		QueryText:     text,
		MaxResults:    maxResults,
		BiasPosition:  bias,
		Language:      f.Language,
		PoliticalView: f.PoliticalView,
	}

	key := cache.Key(tagTypeahead, map[string]any{"api": ModeSuggest, "input": input})
	v, err := r.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		out, err := r.api.Suggest(ctx, input)
		if err != nil {
			return nil, err
		}
		candidates := make([]domain.Candidate, 0, len(out.ResultItems))
		for _, item := range out.ResultItems {
			if item.Place == nil || item.Place.PlaceID == "" || item.Title == "" {
				continue
			}
			title := item.Title
			if item.Place.Address != nil && item.Place.Address.Label != "" {
				title = item.Place.Address.Label
			}
			candidates = append(candidates, domain.Candidate{PlaceID: item.Place.PlaceID, Title: title})
		}
		return candidates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Candidate), nil
}

// InvalidateQueries marks every cached typeahead result stale. Called when
// the map context that biased those results has changed; the entries are
// refetched on next access rather than dropped.
func (r *Resolver) InvalidateQueries() {
	r.cache.Invalidate(tagTypeahead)
}

// FirstPlaceID runs a single-result query and returns the top candidate's
// place ID, or "" when nothing matched. This is the autofill path.
func (r *Resolver) FirstPlaceID(ctx context.Context, mode Mode, text string, filters QueryFilters) (string, error) {
	candidates, err := r.Query(ctx, mode, text, 1, filters)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0].PlaceID, nil
}

// Resolve fetches full place details for a chosen candidate and derives the
// display address lines. The consumed query and place entries are dropped
// from the cache afterwards since they will not be reused.
func (r *Resolver) Resolve(ctx context.Context, candidate domain.Candidate, language, politicalView string) (Resolution, error) {
	out, err := r.getPlace(ctx, geoplaces.GetPlaceInput{
		PlaceID:       candidate.PlaceID,
		Language:      language,
		PoliticalView: politicalView,
	})
	if err != nil {
		r.metrics.Resolutions.WithLabelValues("select", "error").Inc()
		return Resolution{}, err
	}

	res := Resolution{
		PlaceID:        candidate.PlaceID,
		AddressLineOne: domain.ComposeAddressLineOne(out.Address, candidate.Title),
		Address:        out.Address,
		Position:       out.Position,
		PlaceType:      out.PlaceType,
	}
	if out.PlaceType == PlaceTypePointOfInterest {
		res.AddressLineTwo = out.Title
	}

	r.cache.Remove(tagTypeahead)
	r.cache.Remove(tagGetPlace)

	r.metrics.Resolutions.WithLabelValues("select", "success").Inc()
	return res, nil
}

// ResolveStored re-fetches a previously resolved place under storage intent.
// Used at submit time when the caller will persist the result.
func (r *Resolver) ResolveStored(ctx context.Context, placeID, language, politicalView string) (geoplaces.GetPlaceOutput, error) {
	out, err := r.api.GetPlace(ctx, geoplaces.GetPlaceInput{
		PlaceID:       placeID,
		Language:      language,
		PoliticalView: politicalView,
		IntendedUse:   geoplaces.IntendedUseStorage,
	})
	if err != nil {
		r.metrics.Resolutions.WithLabelValues("storage", "error").Inc()
		return geoplaces.GetPlaceOutput{}, err
	}
	r.metrics.Resolutions.WithLabelValues("storage", "success").Inc()
	return out, nil
}

// ResolveFromPosition reverse-geocodes a coordinate (the geolocation path)
// into the first matching address. The first line is "<number> <street>",
// or empty when the result has neither.
func (r *Resolver) ResolveFromPosition(ctx context.Context, position []float64, language string) (Resolution, error) {
	input := geoplaces.ReverseGeocodeInput{
		QueryPosition: position,
		Language:      language,
	}
	key := cache.Key(tagReverseGeocode, input)
	v, err := r.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		return r.api.ReverseGeocode(ctx, input)
	})
	if err != nil {
		r.metrics.Resolutions.WithLabelValues("geolocate", "error").Inc()
		return Resolution{}, err
	}

	out := v.(geoplaces.ReverseGeocodeOutput)
	if len(out.ResultItems) == 0 {
		r.metrics.Resolutions.WithLabelValues("geolocate", "empty").Inc()
		return Resolution{}, ErrNoResults
	}

	item := out.ResultItems[0]
	var lineOne string
	if item.Address != nil {
		lineOne = joinAddressParts(item.Address.AddressNumber, item.Address.Street)
	}

	r.metrics.Resolutions.WithLabelValues("geolocate", "success").Inc()
	return Resolution{
		PlaceID:        item.PlaceID,
		AddressLineOne: lineOne,
		Address:        item.Address,
		Position:       item.Position,
		PlaceType:      item.PlaceType,
	}, nil
}

func (r *Resolver) getPlace(ctx context.Context, input geoplaces.GetPlaceInput) (geoplaces.GetPlaceOutput, error) {
	key := cache.Key(tagGetPlace, input)
	v, err := r.cache.Get(ctx, key, func(ctx context.Context) (any, error) {
		return r.api.GetPlace(ctx, input)
	})
	if err != nil {
		return geoplaces.GetPlaceOutput{}, err
	}
	return v.(geoplaces.GetPlaceOutput), nil
}

func joinAddressParts(number, street string) string {
	if number == "" || street == "" {
		return ""
	}
	return number + " " + street
}
