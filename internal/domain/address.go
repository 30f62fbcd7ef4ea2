package domain

import "strings"

// Country is one row of the static country reference table.
type Country struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Position  []float64 `json:"position,omitempty"` // centroid [lng, lat]
	Supported bool      `json:"supported,omitempty"`
}

// FindCountry returns the country with the given alpha-2 code, or false.
func FindCountry(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// AllowedCountries filters the reference table down to the given allow-list.
// An empty allow-list means every country.
func AllowedCountries(allowed []string) []Country {
	if len(allowed) == 0 {
		return Countries
	}
	out := make([]Country, 0, len(allowed))
	for _, code := range allowed {
		if c, ok := FindCountry(code); ok {
			out = append(out, c)
		}
	}
	return out
}

// CountryRegion is a named administrative region (province, state).
type CountryRegion struct {
	Code string `json:"Code,omitempty"`
	Name string `json:"Name,omitempty"`
}

// CountryRef identifies a country in a resolved address.
type CountryRef struct {
	Code2 string `json:"Code2,omitempty"`
	Code3 string `json:"Code3,omitempty"`
	Name  string `json:"Name,omitempty"`
}

// FullAddress is the structured address payload returned by the geocoding
// backend. Field names follow the Geo Places wire shape exactly; the struct is
// never constructed locally except in tests.
type FullAddress struct {
	Label         string         `json:"Label,omitempty"`
	Country       *CountryRef    `json:"Country,omitempty"`
	Region        *CountryRegion `json:"Region,omitempty"`
	SubRegion     *CountryRegion `json:"SubRegion,omitempty"`
	Locality      string         `json:"Locality,omitempty"`
	District      string         `json:"District,omitempty"`
	PostalCode    string         `json:"PostalCode,omitempty"`
	Street        string         `json:"Street,omitempty"`
	AddressNumber string         `json:"AddressNumber,omitempty"`
	SubPremise    string         `json:"SubPremise,omitempty"`
}

// Candidate is a lightweight typeahead suggestion before full resolution.
// Both fields must be non-empty; results missing either are discarded.
type Candidate struct {
	PlaceID string `json:"placeId"`
	Title   string `json:"title"`
}

// Valid reports whether the candidate carries both an identifier and a
// display label. Invalid candidates are never shown and never counted
// toward "no results".
func (c Candidate) Valid() bool {
	return c.PlaceID != "" && c.Title != ""
}

// AddressFormData is the mutable record backing one form session.
type AddressFormData struct {
	PlaceID          string       `json:"placeId,omitempty"`
	AddressLineOne   string       `json:"addressLineOne,omitempty"`
	AddressLineTwo   string       `json:"addressLineTwo,omitempty"`
	City             string       `json:"city,omitempty"`
	Province         string       `json:"province,omitempty"`
	PostalCode       string       `json:"postalCode,omitempty"`
	Country          string       `json:"country,omitempty"` // alpha-2 code
	OriginalPosition string       `json:"originalPosition,omitempty"`
	AdjustedPosition string       `json:"adjustedPosition,omitempty"`
	AddressDetails   *FullAddress `json:"addressDetails,omitempty"`
}

// MarkerPosition returns the position the map marker should display:
// the user-adjusted position when present, else the resolved one.
func (d AddressFormData) MarkerPosition() string {
	if d.AdjustedPosition != "" {
		return d.AdjustedPosition
	}
	return d.OriginalPosition
}

// ComposeAddressLineOne derives the display string for the first address
// line of a resolved place. In supported countries it is "<number> <street>",
// falling back to the label (or the original candidate title) when both parts
// are empty; in unsupported countries it is always the label-or-title.
func ComposeAddressLineOne(addr *FullAddress, fallbackTitle string) string {
	fallback := fallbackTitle
	if addr != nil && addr.Label != "" {
		fallback = addr.Label
	}
	if addr == nil || addr.Country == nil {
		return fallback
	}
	country, ok := FindCountry(addr.Country.Code2)
	if !ok || !country.Supported {
		return fallback
	}
	composed := joinNonEmpty(" ", addr.AddressNumber, addr.Street)
	if composed == "" {
		return fallback
	}
	return composed
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
