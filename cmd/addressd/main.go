package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/address-entry/internal/adapter/geoplaces"
	httpadapter "github.com/couchcryptid/address-entry/internal/adapter/http"
	"github.com/couchcryptid/address-entry/internal/cache"
	"github.com/couchcryptid/address-entry/internal/config"
	"github.com/couchcryptid/address-entry/internal/form"
	"github.com/couchcryptid/address-entry/internal/observability"
	"github.com/couchcryptid/address-entry/internal/resolver"
)

// readiness is satisfied once configuration loaded; the geocoder is only
// reachable with a valid key, which config validation already requires.
type readiness struct{}

func (readiness) CheckReadiness(_ context.Context) error { return nil }

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	var client *geoplaces.Client
	if cfg.GeocoderBaseURL != "" {
		client = geoplaces.NewClientWithBaseURL(cfg.APIKey, cfg.GeocoderBaseURL, cfg.GeocoderTimeout, metrics, logger)
	} else {
		client = geoplaces.NewClient(cfg.APIKey, cfg.Region, cfg.GeocoderTimeout, metrics, logger)
	}
	results := cache.New(cfg.CacheTTL, clock, metrics)
	res := resolver.New(client, results, metrics, logger)

	sessions := form.NewSessions(res, form.Config{
		Mode:                     cfg.TypeaheadMode,
		Language:                 cfg.Language,
		PoliticalView:            cfg.PoliticalView,
		AllowedCountries:         cfg.AllowedCountries,
		PlaceTypes:               cfg.PlaceTypes,
		RestrictToCurrentCountry: cfg.RestrictToCurrentCountry,
		InitialCenter:            cfg.InitialMapCenter,
		QuietPeriod:              cfg.DebounceInterval,
		AutofillWindow:           cfg.AutofillWindow,
		Clock:                    clock,
	}, metrics, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, sessions, cfg.AllowedCountries, readiness{}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("address entry service started",
		"mode", string(cfg.TypeaheadMode),
		"region", cfg.Region,
		"cache_ttl", cfg.CacheTTL,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	sessions.CloseAll()

	logger.Info("shutdown complete")
}
