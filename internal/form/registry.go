package form

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/couchcryptid/address-entry/internal/observability"
	"github.com/couchcryptid/address-entry/internal/resolver"
)

// ErrSessionNotFound is returned when a session id is unknown or already closed.
var ErrSessionNotFound = errors.New("form session not found")

// Sessions is the registry of live form sessions. All sessions share one
// resolver (and through it one result cache); record state never crosses
// sessions.
type Sessions struct {
	resolver *resolver.Resolver
	cfg      Config
	metrics  *observability.Metrics
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessions creates an empty registry.
func NewSessions(r *resolver.Resolver, cfg Config, metrics *observability.Metrics, logger *slog.Logger) *Sessions {
	return &Sessions{
		resolver: r,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create opens a new session with a fresh identifier.
func (r *Sessions) Create() *Session {
	s := NewSession(uuid.NewString(), r.resolver, r.cfg, r.metrics, r.logger)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.metrics.ActiveSessions.Inc()
	return s
}

// Get returns a session by id.
func (r *Sessions) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close removes a session and releases its timers.
func (r *Sessions) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	r.metrics.ActiveSessions.Dec()
	return nil
}

// Len reports the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// CloseAll closes every live session, for shutdown.
func (r *Sessions) CloseAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
		r.metrics.ActiveSessions.Dec()
	}
}
