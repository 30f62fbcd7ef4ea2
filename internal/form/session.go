package form

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/address-entry/internal/autofill"
	"github.com/couchcryptid/address-entry/internal/domain"
	"github.com/couchcryptid/address-entry/internal/observability"
	"github.com/couchcryptid/address-entry/internal/resolver"
)

// IntendedUse mirrors the backend's licensing distinction at submit time.
const (
	IntendedUseSingleUse = "single_use"
	IntendedUseStorage   = "storage"
)

// Patch is a shallow-merge update to the form record. Nil fields are left
// untouched; non-nil fields overwrite, including with the empty string.
// Changing the country never clears previously entered street or city data.
type Patch struct {
	AddressLineOne   *string `json:"addressLineOne,omitempty"`
	AddressLineTwo   *string `json:"addressLineTwo,omitempty"`
	City             *string `json:"city,omitempty"`
	Province         *string `json:"province,omitempty"`
	PostalCode       *string `json:"postalCode,omitempty"`
	Country          *string `json:"country,omitempty"`
	AdjustedPosition *string `json:"adjustedPosition,omitempty"`
}

// Config carries the per-form slice of service configuration.
type Config struct {
	Mode                     resolver.Mode
	Language                 string
	PoliticalView            string
	AllowedCountries         []string
	PlaceTypes               []string
	RestrictToCurrentCountry bool
	InitialCenter            []float64 // [lng, lat], optional
	QuietPeriod              time.Duration
	AutofillWindow           time.Duration
	Clock                    clockwork.Clock
}

// Session is one address form: the single source of truth merged from field
// edits, typeahead/autofill/geolocation resolutions, and marker drags.
// Sessions share a process-wide result cache through the resolver but never
// share record state.
type Session struct {
	id        string
	resolver  *resolver.Resolver
	typeahead *resolver.Typeahead
	detector  *autofill.Detector
	cfg       Config
	metrics   *observability.Metrics
	logger    *slog.Logger

	autofillInProgress atomic.Bool

	mu   sync.Mutex
	data domain.AddressFormData
	view domain.MapViewState
}

// NewSession creates a form session with a pristine record and the default
// viewport derived from configuration.
func NewSession(id string, r *resolver.Resolver, cfg Config, metrics *observability.Metrics, logger *slog.Logger) *Session {
	s := &Session{
		id:       id,
		resolver: r,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger.With("session", id),
		view:     domain.DefaultViewState(cfg.InitialCenter, cfg.AllowedCountries),
	}
	s.typeahead = resolver.NewTypeahead(r, resolver.TypeaheadConfig{
		Mode:        cfg.Mode,
		QuietPeriod: cfg.QuietPeriod,
		Clock:       cfg.Clock,
		Filters:     s.queryFilters,
		Suppress:    s.autofillInProgress.Load,
		OnResolve:   s.applyResolution,
	}, metrics, s.logger)
	s.detector = autofill.NewDetector(cfg.AutofillWindow, cfg.Clock, s.fieldValues, s.handleAutofill)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Typeahead returns the session's address-line-one typeahead.
func (s *Session) Typeahead() *resolver.Typeahead { return s.typeahead }

// queryFilters assembles the live contextual filters for the next query:
// language and political view from config, bias position from the current
// viewport, and the country restriction from the form's selected country.
func (s *Session) queryFilters() resolver.QueryFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolver.QueryFilters{
		Language:          s.cfg.Language,
		PoliticalView:     s.cfg.PoliticalView,
		BiasPosition:      []float64{s.view.Longitude, s.view.Latitude},
		IncludeCountries:  domain.IncludeCountriesFilter(s.cfg.RestrictToCurrentCountry, s.data.Country, s.cfg.AllowedCountries),
		IncludePlaceTypes: s.cfg.PlaceTypes,
	}
}

func (s *Session) fieldValues() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]string{
		FieldAddressLineOne: s.data.AddressLineOne,
		FieldAddressLineTwo: s.data.AddressLineTwo,
		FieldCity:           s.data.City,
		FieldProvince:       s.data.Province,
		FieldPostalCode:     s.data.PostalCode,
		FieldCountry:        s.data.Country,
	}
}

// Data returns a snapshot of the form record.
func (s *Session) Data() domain.AddressFormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// ViewState returns the current map viewport.
func (s *Session) ViewState() domain.MapViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetData shallow-merges a patch into the record. The address-line-one
// field additionally feeds the typeahead so edits query normally.
func (s *Session) SetData(p Patch) domain.AddressFormData {
	s.mu.Lock()
	if p.AddressLineOne != nil {
		s.data.AddressLineOne = *p.AddressLineOne
	}
	if p.AddressLineTwo != nil {
		s.data.AddressLineTwo = *p.AddressLineTwo
	}
	if p.City != nil {
		s.data.City = *p.City
	}
	if p.Province != nil {
		s.data.Province = *p.Province
	}
	if p.PostalCode != nil {
		s.data.PostalCode = *p.PostalCode
	}
	if p.Country != nil {
		s.data.Country = *p.Country
	}
	dragged := false
	if p.AdjustedPosition != nil {
		s.data.AdjustedPosition = *p.AdjustedPosition
		// Patching the adjusted position is a marker drag by another route:
		// the map recenters on it and bias-dependent results go stale.
		if *p.AdjustedPosition != "" {
			lng, lat := domain.ParsePosition(*p.AdjustedPosition)
			s.view = domain.ViewStateAt([]float64{lng, lat})
			dragged = true
		}
	}
	data := s.data
	s.mu.Unlock()

	if dragged {
		s.resolver.InvalidateQueries()
	}
	if p.AddressLineOne != nil {
		s.typeahead.SetText(*p.AddressLineOne)
	}
	return data
}

// SetMarkerPosition records a marker drag. Only the adjusted position
// changes; the resolved original is kept for reference. Moving the marker
// moves the map, so bias-dependent query results are marked stale.
func (s *Session) SetMarkerPosition(position []float64) {
	s.mu.Lock()
	s.data.AdjustedPosition = domain.PositionToString(position)
	s.mu.Unlock()
	s.resolver.InvalidateQueries()
}

// Reset clears the record, the marker, and the viewport in one operation
// and returns the typeahead to idle.
func (s *Session) Reset() {
	s.mu.Lock()
	s.data = domain.AddressFormData{}
	s.view = domain.DefaultViewState(s.cfg.InitialCenter, s.cfg.AllowedCountries)
	s.mu.Unlock()
	s.typeahead.Reset()
}

// applyResolution reconciles a typeahead or geolocation resolution into the
// record. The new selection supersedes the old structured guess wholesale,
// except addressLineTwo: the backend does not return apartment or suite
// data, so a POI-derived line two wins but an empty one preserves the
// user's entry.
func (s *Session) applyResolution(res resolver.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lineTwo := s.data.AddressLineTwo
	if res.AddressLineTwo != "" {
		lineTwo = res.AddressLineTwo
	}

	s.data = domain.AddressFormData{
		PlaceID:          res.PlaceID,
		AddressLineOne:   res.AddressLineOne,
		AddressLineTwo:   lineTwo,
		OriginalPosition: domain.PositionToString(res.Position),
		AddressDetails:   res.Address,
	}
	if addr := res.Address; addr != nil {
		s.data.City = addr.Locality
		s.data.PostalCode = addr.PostalCode
		if addr.Region != nil {
			s.data.Province = addr.Region.Code
		}
		if addr.Country != nil {
			s.data.Country = addr.Country.Code2
		}
	}
	if len(res.Position) >= 2 {
		s.view = domain.ViewStateAt(res.Position)
	}
}

// SignalAutofill reports the platform's bulk-population signal for this
// form. FieldInput confirms it; the detector batches and fires once.
func (s *Session) SignalAutofill() {
	s.detector.SignalPopulation()
}

// FieldInput reports an input event on one of the form's fields.
func (s *Session) FieldInput() {
	s.detector.FieldInput()
}

// handleAutofill is the detector's downstream consumer: it builds one
// composite query from the populated values, picks the single best match,
// and resolves it like a manual selection. No match means the fields stay
// as autofilled, with no error surfaced.
func (s *Session) handleAutofill(values autofill.Values) {
	s.metrics.AutofillEvents.Inc()
	s.autofillInProgress.Store(true)
	defer s.autofillInProgress.Store(false)

	query := compositeQuery(values)
	if query == "" {
		return
	}

	ctx := context.Background()
	placeID, err := s.resolver.FirstPlaceID(ctx, s.cfg.Mode, query, s.queryFilters())
	if err != nil || placeID == "" {
		s.metrics.Resolutions.WithLabelValues("autofill", "empty").Inc()
		if err != nil {
			s.logger.Warn("autofill lookup failed", "error", err)
		}
		return
	}

	res, err := s.resolver.Resolve(ctx, domain.Candidate{PlaceID: placeID, Title: query}, s.cfg.Language, s.cfg.PoliticalView)
	if err != nil {
		s.metrics.Resolutions.WithLabelValues("autofill", "error").Inc()
		s.logger.Warn("autofill resolution failed", "error", err)
		return
	}

	s.applyResolution(res)
	// Saved autofill data may carry a country name rather than a code; the
	// resolved alpha-2 code set by applyResolution stands.
	s.typeahead.SetTextResolved(res.AddressLineOne)
	s.metrics.Resolutions.WithLabelValues("autofill", "success").Inc()
}

// compositeQuery joins the present autofilled values in address order.
func compositeQuery(values autofill.Values) string {
	parts := make([]string, 0, 5)
	for _, field := range []string{FieldAddressLineOne, FieldCity, FieldProvince, FieldPostalCode, FieldCountry} {
		if v := strings.TrimSpace(values[field]); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Submit returns the final record. Storage intent triggers exactly one
// extra place lookup under storage terms when a placeId is present; any
// other intent returns the snapshot as-is.
func (s *Session) Submit(ctx context.Context, intendedUse string) (domain.AddressFormData, error) {
	if intendedUse == "" {
		intendedUse = IntendedUseSingleUse
	}
	s.metrics.FormSubmits.WithLabelValues(intendedUse).Inc()

	data := s.Data()
	if intendedUse != IntendedUseStorage || data.PlaceID == "" {
		return data, nil
	}

	out, err := s.resolver.ResolveStored(ctx, data.PlaceID, s.cfg.Language, s.cfg.PoliticalView)
	if err != nil {
		return domain.AddressFormData{}, err
	}

	s.mu.Lock()
	s.data.AddressDetails = out.Address
	if len(out.Position) >= 2 {
		s.data.OriginalPosition = domain.PositionToString(out.Position)
	}
	data = s.data
	s.mu.Unlock()
	return data, nil
}

// Close releases the session's timers. Safe to call multiple times.
func (s *Session) Close() {
	s.typeahead.Stop()
	s.detector.Close()
}
