package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/address-entry/internal/resolver"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Geo Places backend.
	APIKey          string `validate:"required"`
	Region          string `validate:"required"`
	GeocoderBaseURL string // overrides the regional endpoint, for mockgeo
	GeocoderTimeout time.Duration

	// Resolution behavior.
	Language                 string
	PoliticalView            string
	TypeaheadMode            resolver.Mode
	AllowedCountries         []string `validate:"dive,len=2,alpha"`
	PlaceTypes               []string
	RestrictToCurrentCountry bool
	InitialMapCenter         []float64 // [lng, lat]; empty means derived

	DebounceInterval time.Duration `validate:"gt=0"`
	AutofillWindow   time.Duration `validate:"gt=0"`
	CacheTTL         time.Duration `validate:"gt=0"`

	HTTPAddr        string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFormat       string        `validate:"oneof=json text"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads configuration from environment variables, applying defaults
// where unset. Any failure here is a programmer or deployment error and is
// fatal at startup.
func Load() (*Config, error) {
	mode, err := resolver.ParseMode(envOrDefault("TYPEAHEAD_MODE", "autocomplete"))
	if err != nil {
		return nil, err
	}

	debounce, err := parseDuration("DEBOUNCE_INTERVAL", "300ms")
	if err != nil {
		return nil, err
	}
	autofillWindow, err := parseDuration("AUTOFILL_WINDOW", "100ms")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("CACHE_TTL", "30m")
	if err != nil {
		return nil, err
	}
	geocoderTimeout, err := parseDuration("GEOCODER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	center, err := parseCenter(os.Getenv("INITIAL_MAP_CENTER"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:          os.Getenv("GEO_PLACES_API_KEY"),
		Region:          envOrDefault("GEO_PLACES_REGION", "us-east-1"),
		GeocoderBaseURL: os.Getenv("GEO_PLACES_BASE_URL"),
		GeocoderTimeout: geocoderTimeout,

		Language:                 os.Getenv("LANGUAGE"),
		PoliticalView:            os.Getenv("POLITICAL_VIEW"),
		TypeaheadMode:            mode,
		AllowedCountries:         parseList(os.Getenv("ALLOWED_COUNTRIES")),
		PlaceTypes:               parseList(os.Getenv("PLACE_TYPES")),
		RestrictToCurrentCountry: os.Getenv("RESTRICT_TO_CURRENT_COUNTRY") == "true",
		InitialMapCenter:         center,

		DebounceInterval: debounce,
		AutofillWindow:   autofillWindow,
		CacheTTL:         cacheTTL,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoggerLevel implements observability.LoggerConfig.
func (c *Config) LoggerLevel() string { return c.LogLevel }

// LoggerFormat implements observability.LoggerConfig.
func (c *Config) LoggerFormat() string { return c.LogFormat }

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// parseList splits a comma-separated env value, dropping empty entries.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseCenter parses "lng,lat".
func parseCenter(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.New("invalid INITIAL_MAP_CENTER: want \"lng,lat\"")
	}
	center := make([]float64, 2)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid INITIAL_MAP_CENTER: %w", err)
		}
		center[i] = v
	}
	return center, nil
}
