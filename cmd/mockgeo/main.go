// Command mockgeo serves a local stand-in for the Geo Places API so the
// address entry service can be developed and demoed without a real API key.
// It matches queries by substring against a small fixed set of places.
//
// Usage:
//
//	go run ./cmd/mockgeo -addr :9100
//	GEO_PLACES_BASE_URL=http://localhost:9100 GEO_PLACES_API_KEY=dev go run ./cmd/addressd
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/couchcryptid/address-entry/internal/adapter/geoplaces"
	"github.com/couchcryptid/address-entry/internal/domain"
)

type place struct {
	ID        string
	PlaceType string
	Title     string
	Address   domain.FullAddress
	Position  []float64
}

var places = []place{
	{
		ID:        "van-510-w-georgia",
		PlaceType: "Address",
		Title:     "510 W Georgia St",
		Address: domain.FullAddress{
			Label:         "510 W Georgia St, Vancouver, BC V6B 1Z6, Canada",
			Country:       &domain.CountryRef{Code2: "CA", Code3: "CAN", Name: "Canada"},
			Region:        &domain.CountryRegion{Code: "BC", Name: "British Columbia"},
			Locality:      "Vancouver",
			PostalCode:    "V6B 1Z6",
			Street:        "W Georgia St",
			AddressNumber: "510",
		},
		Position: []float64{-123.116226, 49.28133},
	},
	{
		ID:        "sf-1-market",
		PlaceType: "Address",
		Title:     "1 Market St",
		Address: domain.FullAddress{
			Label:         "1 Market St, San Francisco, CA 94105, United States",
			Country:       &domain.CountryRef{Code2: "US", Code3: "USA", Name: "United States"},
			Region:        &domain.CountryRegion{Code: "CA", Name: "California"},
			Locality:      "San Francisco",
			PostalCode:    "94105",
			Street:        "Market St",
			AddressNumber: "1",
		},
		Position: []float64{-122.394203, 37.793621},
	},
	{
		ID:        "van-hudsons-bay",
		PlaceType: "PointOfInterest",
		Title:     "Hudson's Bay",
		Address: domain.FullAddress{
			Label:         "674 Granville St, Vancouver, BC V6C 1Z6, Canada",
			Country:       &domain.CountryRef{Code2: "CA", Code3: "CAN", Name: "Canada"},
			Region:        &domain.CountryRegion{Code: "BC", Name: "British Columbia"},
			Locality:      "Vancouver",
			PostalCode:    "V6C 1Z6",
			Street:        "Granville St",
			AddressNumber: "674",
		},
		Position: []float64{-123.117577, 49.282732},
	},
	{
		ID:        "ldn-10-downing",
		PlaceType: "Address",
		Title:     "10 Downing St",
		Address: domain.FullAddress{
			Label:         "10 Downing St, London SW1A 2AA, United Kingdom",
			Country:       &domain.CountryRef{Code2: "GB", Code3: "GBR", Name: "United Kingdom"},
			Region:        &domain.CountryRegion{Code: "ENG", Name: "England"},
			Locality:      "London",
			PostalCode:    "SW1A 2AA",
			Street:        "Downing St",
			AddressNumber: "10",
		},
		Position: []float64{-0.127695, 51.503396},
	},
}

func main() {
	addr := flag.String("addr", ":9100", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /autocomplete", handleAutocomplete)
	mux.HandleFunc("POST /suggest", handleSuggest)
	mux.HandleFunc("GET /place/{id}", handleGetPlace)
	mux.HandleFunc("POST /reverse-geocode", handleReverseGeocode)

	log.Printf("mockgeo listening on %s (%d places)", *addr, len(places))
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func match(query string, countries []string) []place {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []place
	for _, p := range places {
		if query != "" && !strings.Contains(strings.ToLower(p.Address.Label), query) {
			continue
		}
		if len(countries) > 0 && !contains(countries, p.Address.Country.Code2) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func limit(n, maxResults int) int {
	if maxResults > 0 && n > maxResults {
		return maxResults
	}
	return n
}

func handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	var in geoplaces.AutocompleteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var countries []string
	if in.Filter != nil {
		countries = in.Filter.IncludeCountries
	}
	matched := match(in.QueryText, countries)

	out := geoplaces.AutocompleteOutput{}
	for _, p := range matched[:limit(len(matched), in.MaxResults)] {
		addr := p.Address
		out.ResultItems = append(out.ResultItems, geoplaces.AutocompleteResultItem{
			PlaceID:   p.ID,
			PlaceType: p.PlaceType,
			Address:   &addr,
		})
	}
	writeJSON(w, out)
}

func handleSuggest(w http.ResponseWriter, r *http.Request) {
	var in geoplaces.SuggestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matched := match(in.QueryText, nil)
	out := geoplaces.SuggestOutput{}
	for _, p := range matched[:limit(len(matched), in.MaxResults)] {
		addr := p.Address
		out.ResultItems = append(out.ResultItems, geoplaces.SuggestResultItem{
			Title: p.Title,
			Place: &geoplaces.SuggestPlace{
				PlaceID:   p.ID,
				PlaceType: p.PlaceType,
				Address:   &addr,
				Position:  p.Position,
			},
		})
	}
	writeJSON(w, out)
}

func handleGetPlace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, p := range places {
		if p.ID == id {
			addr := p.Address
			writeJSON(w, geoplaces.GetPlaceOutput{
				PlaceID:   p.ID,
				PlaceType: p.PlaceType,
				Title:     p.Title,
				Address:   &addr,
				Position:  p.Position,
			})
			return
		}
	}
	http.Error(w, `{"message":"place not found"}`, http.StatusNotFound)
}

func handleReverseGeocode(w http.ResponseWriter, r *http.Request) {
	var in geoplaces.ReverseGeocodeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || len(in.QueryPosition) < 2 {
		http.Error(w, "QueryPosition required", http.StatusBadRequest)
		return
	}

	// Nearest place by squared degree distance; good enough for a mock.
	best := places[0]
	bestDist := math.MaxFloat64
	for _, p := range places {
		dx := p.Position[0] - in.QueryPosition[0]
		dy := p.Position[1] - in.QueryPosition[1]
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = p
		}
	}

	addr := best.Address
	writeJSON(w, geoplaces.ReverseGeocodeOutput{
		ResultItems: []geoplaces.ReverseGeocodeResultItem{{
			PlaceID:   best.ID,
			PlaceType: best.PlaceType,
			Title:     best.Title,
			Address:   &addr,
			Position:  best.Position,
		}},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort mock response
}
