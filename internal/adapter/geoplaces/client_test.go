package geoplaces

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/address-entry/internal/domain"
	"github.com/couchcryptid/address-entry/internal/observability"
)

const (
	testAPIKey        = "v1.test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_Autocomplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/autocomplete", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))
		assert.Equal(t, contentTypeJSON, r.Header.Get(headerContentType))

		var in AutocompleteInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "510 W Georgia", in.QueryText)
		assert.Equal(t, 5, in.MaxResults)
		require.NotNil(t, in.Filter)
		assert.Equal(t, []string{"CA"}, in.Filter.IncludeCountries)

		out := AutocompleteOutput{
			ResultItems: []AutocompleteResultItem{{
				PlaceID: "van-510",
				Address: &domain.FullAddress{Label: "510 W Georgia St, Vancouver, BC"},
			}},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	out, err := c.Autocomplete(context.Background(), AutocompleteInput{
		QueryText:  "510 W Georgia",
		MaxResults: 5,
		Filter:     &Filter{IncludeCountries: []string{"CA"}},
	})
	require.NoError(t, err)

	require.Len(t, out.ResultItems, 1)
	assert.Equal(t, "van-510", out.ResultItems[0].PlaceID)
	assert.Equal(t, "510 W Georgia St, Vancouver, BC", out.ResultItems[0].Address.Label)
}

func TestClient_Suggest_DefaultsBiasPosition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest", r.URL.Path)

		var in SuggestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []float64{0, 0}, in.BiasPosition)

		out := SuggestOutput{
			ResultItems: []SuggestResultItem{{
				Title: "510 W Georgia St",
				Place: &SuggestPlace{PlaceID: "van-510"},
			}},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	out, err := c.Suggest(context.Background(), SuggestInput{QueryText: "510 W Georgia"})
	require.NoError(t, err)

	require.Len(t, out.ResultItems, 1)
	assert.Equal(t, "van-510", out.ResultItems[0].Place.PlaceID)
}

func TestClient_GetPlace_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/place/van-510", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("key"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "Storage", r.URL.Query().Get("intended-use"))

		out := GetPlaceOutput{
			PlaceID:   "van-510",
			PlaceType: "Address",
			Address: &domain.FullAddress{
				Label:    "510 W Georgia St, Vancouver, BC V6B 1Z6, Canada",
				Locality: "Vancouver",
			},
			Position: []float64{-123.116226, 49.28133},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	out, err := c.GetPlace(context.Background(), GetPlaceInput{
		PlaceID:     "van-510",
		Language:    "en",
		IntendedUse: IntendedUseStorage,
	})
	require.NoError(t, err)

	assert.Equal(t, "van-510", out.PlaceID)
	assert.Equal(t, "Vancouver", out.Address.Locality)
	assert.Equal(t, []float64{-123.116226, 49.28133}, out.Position)
}

func TestClient_ReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse-geocode", r.URL.Path)

		var in ReverseGeocodeInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []float64{-123.1162, 49.2813}, in.QueryPosition)

		out := ReverseGeocodeOutput{
			ResultItems: []ReverseGeocodeResultItem{{
				PlaceID: "rev-1",
				Address: &domain.FullAddress{AddressNumber: "510", Street: "W Georgia St"},
			}},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(out))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	out, err := c.ReverseGeocode(context.Background(), ReverseGeocodeInput{
		QueryPosition: []float64{-123.1162, 49.2813},
	})
	require.NoError(t, err)

	require.Len(t, out.ResultItems, 1)
	assert.Equal(t, "510", out.ResultItems[0].Address.AddressNumber)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	_, err := c.Autocomplete(context.Background(), AutocompleteInput{QueryText: "510"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")

	_, err = c.GetPlace(context.Background(), GetPlaceInput{PlaceID: "van-510"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.ReverseGeocode(context.Background(), ReverseGeocodeInput{QueryPosition: []float64{0, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestNewClient_RegionalBaseURL(t *testing.T) {
	c := NewClient(testAPIKey, "eu-west-1", 5*time.Second,
		observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "https://places.geo.eu-west-1.amazonaws.com/v2", c.baseURL)
}
