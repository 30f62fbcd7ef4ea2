package geoplaces

import "github.com/couchcryptid/address-entry/internal/domain"

// Wire shapes of the Geo Places service. Field names and nesting must stay
// exactly as the backend defines them; the form logic depends on this contract
// and nothing else about the service.

// IntendedUse distinguishes single-display lookups from results that the
// caller will persist, which carry different licensing obligations.
type IntendedUse string

const (
	IntendedUseSingleUse IntendedUse = "SingleUse"
	IntendedUseStorage   IntendedUse = "Storage"
)

// Filter constrains autocomplete results by place type and country.
type Filter struct {
	IncludePlaceTypes []string `json:"IncludePlaceTypes,omitempty"`
	IncludeCountries  []string `json:"IncludeCountries,omitempty"`
}

// AutocompleteInput is the request body for the autocomplete operation.
type AutocompleteInput struct {
	QueryText     string  `json:"QueryText"`
	MaxResults    int     `json:"MaxResults,omitempty"`
	Language      string  `json:"Language,omitempty"`
	PoliticalView string  `json:"PoliticalView,omitempty"`
	Filter        *Filter `json:"Filter,omitempty"`
}

// AutocompleteResultItem is one autocomplete match.
type AutocompleteResultItem struct {
	PlaceID   string              `json:"PlaceId,omitempty"`
	PlaceType string              `json:"PlaceType,omitempty"`
	Title     string              `json:"Title,omitempty"`
	Address   *domain.FullAddress `json:"Address,omitempty"`
}

// AutocompleteOutput is the autocomplete response body.
type AutocompleteOutput struct {
	ResultItems []AutocompleteResultItem `json:"ResultItems,omitempty"`
}

// SuggestInput is the request body for the suggest operation. BiasPosition
// is mandatory on the wire; callers without one send [0,0].
type SuggestInput struct {
	QueryText     string    `json:"QueryText"`
	MaxResults    int       `json:"MaxResults,omitempty"`
	BiasPosition  []float64 `json:"BiasPosition,omitempty"`
	Language      string    `json:"Language,omitempty"`
	PoliticalView string    `json:"PoliticalView,omitempty"`
}

// SuggestPlace is the place payload nested in a suggest result.
type SuggestPlace struct {
	PlaceID   string              `json:"PlaceId,omitempty"`
	PlaceType string              `json:"PlaceType,omitempty"`
	Address   *domain.FullAddress `json:"Address,omitempty"`
	Position  []float64           `json:"Position,omitempty"`
}

// SuggestResultItem is one suggest match.
type SuggestResultItem struct {
	Title string        `json:"Title,omitempty"`
	Place *SuggestPlace `json:"Place,omitempty"`
}

// SuggestOutput is the suggest response body.
type SuggestOutput struct {
	ResultItems []SuggestResultItem `json:"ResultItems,omitempty"`
}

// GetPlaceInput identifies a place to fetch full details for.
type GetPlaceInput struct {
	PlaceID       string      `json:"PlaceId"`
	Language      string      `json:"Language,omitempty"`
	PoliticalView string      `json:"PoliticalView,omitempty"`
	IntendedUse   IntendedUse `json:"IntendedUse,omitempty"`
}

// GetPlaceOutput is the full place detail response.
type GetPlaceOutput struct {
	PlaceID   string              `json:"PlaceId,omitempty"`
	PlaceType string              `json:"PlaceType,omitempty"`
	Title     string              `json:"Title,omitempty"`
	Address   *domain.FullAddress `json:"Address,omitempty"`
	Position  []float64           `json:"Position,omitempty"` // [lng, lat]
}

// ReverseGeocodeInput is the request body for reverse geocoding.
type ReverseGeocodeInput struct {
	QueryPosition []float64 `json:"QueryPosition"` // [lng, lat]
	MaxResults    int       `json:"MaxResults,omitempty"`
	Language      string    `json:"Language,omitempty"`
}

// ReverseGeocodeResultItem is one reverse-geocode match.
type ReverseGeocodeResultItem struct {
	PlaceID   string              `json:"PlaceId,omitempty"`
	PlaceType string              `json:"PlaceType,omitempty"`
	Title     string              `json:"Title,omitempty"`
	Address   *domain.FullAddress `json:"Address,omitempty"`
	Position  []float64           `json:"Position,omitempty"`
}

// ReverseGeocodeOutput is the reverse-geocode response body.
type ReverseGeocodeOutput struct {
	ResultItems []ReverseGeocodeResultItem `json:"ResultItems,omitempty"`
}
