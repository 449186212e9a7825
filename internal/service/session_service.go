package service

import (
	"sync"

	"github.com/hauliq/eldview-backend-go/internal/geocode"
	"github.com/hauliq/eldview-backend-go/internal/metrics"
)

// Session is one authenticated viewing session. Its geocode resolver
// caches coordinate names for the session's lifetime; logout drops the
// whole cache.
type Session struct {
	UserID   int64
	Resolver *geocode.Resolver
}

// SessionRegistry tracks live sessions keyed by token.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	geocoder geocode.ReverseGeocoder
	metrics  *metrics.Collector
}

// NewSessionRegistry creates a new session registry. metrics may be nil.
func NewSessionRegistry(geocoder geocode.ReverseGeocoder, m *metrics.Collector) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		geocoder: geocoder,
		metrics:  m,
	}
}

// Get returns the session for a token, creating it on first use.
func (r *SessionRegistry) Get(token string, userID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[token]; ok {
		return s
	}

	s := &Session{
		UserID:   userID,
		Resolver: geocode.NewResolver(r.geocoder, geocode.NewCache(), r.metrics),
	}
	r.sessions[token] = s
	if r.metrics != nil {
		r.metrics.ActiveSessions.Inc()
	}
	return s
}

// Drop discards a session and its geocode cache.
func (r *SessionRegistry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[token]; ok {
		delete(r.sessions, token)
		if r.metrics != nil {
			r.metrics.ActiveSessions.Dec()
		}
	}
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
