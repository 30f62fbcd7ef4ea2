// Package http exposes the form-session API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/address-entry/internal/domain"
	"github.com/couchcryptid/address-entry/internal/form"
	"github.com/couchcryptid/address-entry/internal/resolver"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the session API over JSON.
type Server struct {
	httpServer *http.Server
	sessions   *form.Sessions
	countries  []domain.Country
	logger     *slog.Logger
}

// NewServer creates the HTTP server and its routes.
func NewServer(addr string, sessions *form.Sessions, allowedCountries []string, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		sessions:  sessions,
		countries: domain.AllowedCountries(allowedCountries),
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /countries", s.handleCountries)
	mux.HandleFunc("GET /fields", s.handleFields)

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.session(s.handleGetSession))
	mux.HandleFunc("DELETE /sessions/{id}", s.handleCloseSession)
	mux.HandleFunc("PATCH /sessions/{id}", s.session(s.handlePatchSession))
	mux.HandleFunc("POST /sessions/{id}/reset", s.session(s.handleReset))
	mux.HandleFunc("GET /sessions/{id}/typeahead", s.session(s.handleTypeahead))
	mux.HandleFunc("POST /sessions/{id}/select", s.session(s.handleSelect))
	mux.HandleFunc("POST /sessions/{id}/locate", s.session(s.handleLocate))
	mux.HandleFunc("POST /sessions/{id}/position", s.session(s.handlePosition))
	mux.HandleFunc("POST /sessions/{id}/dropdown-close", s.session(s.handleDropdownClose))
	mux.HandleFunc("POST /sessions/{id}/autofill", s.session(s.handleAutofillSignal))
	mux.HandleFunc("POST /sessions/{id}/submit", s.session(s.handleSubmit))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// session looks up the {id} path segment and rejects unknown sessions.
func (s *Server) session(h func(http.ResponseWriter, *http.Request, *form.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"countries": s.countries})
}

func (s *Server) handleFields(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"fields": form.DefaultFields()})
}

// sessionView is the session representation returned to clients.
type sessionView struct {
	ID        string                 `json:"id"`
	Data      domain.AddressFormData `json:"data"`
	View      domain.MapViewState    `json:"view"`
	Typeahead resolver.Snapshot      `json:"typeahead"`
}

func viewOf(sess *form.Session) sessionView {
	return sessionView{
		ID:        sess.ID(),
		Data:      sess.Data(),
		View:      sess.ViewState(),
		Typeahead: sess.Typeahead().Snapshot(),
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.logger.Info("session created", "session", sess.ID())
	writeJSON(w, http.StatusCreated, viewOf(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request, sess *form.Session) {
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.Close(id); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.logger.Info("session closed", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePatchSession(w http.ResponseWriter, r *http.Request, sess *form.Session) {
	var patch form.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sess.SetData(patch)
	// Every patch doubles as an input event for autofill confirmation.
	sess.FieldInput()
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request, sess *form.Session) {
	sess.Reset()
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleTypeahead(w http.ResponseWriter, _ *http.Request, sess *form.Session) {
	writeJSON(w, http.StatusOK, sess.Typeahead().Snapshot())
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request, sess *form.Session) {
	var candidate domain.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := sess.Typeahead().Select(r.Context(), candidate); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, resolver.ErrNoResults) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

type positionRequest struct {
	Position []float64 `json:"position"` // [lng, lat]
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request, sess *form.Session) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Position) < 2 {
		writeError(w, http.StatusBadRequest, errors.New("position [lng, lat] required"))
		return
	}
	if _, err := sess.Typeahead().Locate(r.Context(), req.Position); err != nil {
		if errors.Is(err, resolver.ErrNoResults) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request, sess *form.Session) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Position) < 2 {
		writeError(w, http.StatusBadRequest, errors.New("position [lng, lat] required"))
		return
	}
	sess.SetMarkerPosition(req.Position)
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (s *Server) handleDropdownClose(w http.ResponseWriter, _ *http.Request, sess *form.Session) {
	sess.Typeahead().CloseDropdown()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAutofillSignal(w http.ResponseWriter, _ *http.Request, sess *form.Session) {
	sess.SignalAutofill()
	w.WriteHeader(http.StatusNoContent)
}

type submitRequest struct {
	IntendedUse string `json:"intendedUse,omitempty"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, sess *form.Session) {
	var req submitRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	data, err := sess.Submit(r.Context(), req.IntendedUse)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort JSON response
}
