package geoplaces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/address-entry/internal/observability"
)

// Client calls the Geo Places HTTP API. It is the only component that talks
// to the network; everything above it sees typed inputs and outputs.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Geo Places client for the given region.
func NewClient(apiKey, region string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return NewClientWithBaseURL(apiKey, fmt.Sprintf("https://places.geo.%s.amazonaws.com/v2", region), timeout, metrics, logger)
}

// NewClientWithBaseURL creates a client against a custom endpoint, for
// local development against cmd/mockgeo.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Autocomplete returns completions of a partial free-text address query.
func (c *Client) Autocomplete(ctx context.Context, input AutocompleteInput) (AutocompleteOutput, error) {
	var out AutocompleteOutput
	err := c.doRequest(ctx, "autocomplete", input, &out)
	return out, err
}

// Suggest returns nearby-biased suggestions for a free-text query.
// The backend requires a bias position; absent one, [0,0] is sent.
func (c *Client) Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error) {
	if input.BiasPosition == nil {
		input.BiasPosition = []float64{0, 0}
	}
	var out SuggestOutput
	err := c.doRequest(ctx, "suggest", input, &out)
	return out, err
}

// GetPlace fetches the full structured address and position for a place ID.
func (c *Client) GetPlace(ctx context.Context, input GetPlaceInput) (GetPlaceOutput, error) {
	params := url.Values{"key": {c.apiKey}}
	if input.Language != "" {
		params.Set("language", input.Language)
	}
	if input.PoliticalView != "" {
		params.Set("political-view", input.PoliticalView)
	}
	if input.IntendedUse != "" {
		params.Set("intended-use", string(input.IntendedUse))
	}
	u := fmt.Sprintf("%s/place/%s?%s", c.baseURL, url.PathEscape(input.PlaceID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return GetPlaceOutput{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	var out GetPlaceOutput
	if err := c.send(req, "getPlace", &out); err != nil {
		return GetPlaceOutput{}, err
	}
	c.metrics.GeocodeAPIDuration.WithLabelValues("getPlace").Observe(time.Since(start).Seconds())
	return out, nil
}

// ReverseGeocode converts a coordinate to the addresses at or near it.
func (c *Client) ReverseGeocode(ctx context.Context, input ReverseGeocodeInput) (ReverseGeocodeOutput, error) {
	var out ReverseGeocodeOutput
	err := c.doRequest(ctx, "reverse-geocode", input, &out)
	return out, err
}

// doRequest POSTs a JSON body to an operation endpoint and decodes the response.
func (c *Client) doRequest(ctx context.Context, operation string, input, output any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", operation, err)
	}

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, operation, url.Values{"key": {c.apiKey}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	if err := c.send(req, operation, output); err != nil {
		return err
	}
	c.metrics.GeocodeAPIDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	return nil
}

func (c *Client) send(req *http.Request, operation string, output any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("%s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.GeocodeRequests.WithLabelValues(operation, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("geo places API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(output); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("decode %s response: %w", operation, err)
	}

	c.metrics.GeocodeRequests.WithLabelValues(operation, "success").Inc()
	return nil
}
