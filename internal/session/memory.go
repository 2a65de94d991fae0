package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"worklife-balance/internal/metrics"
)

// MemoryStore is a size- and TTL-bounded session store. Sessions are lost on restart.
type MemoryStore struct {
	sessions *expirable.LRU[string, Session]
	now      func() time.Time
}

// New creates a MemoryStore. Zero config values fall back to the defaults.
func New(cfg Config) *MemoryStore {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	onEvict := func(string, Session) {
		metrics.ActiveSessions.Dec()
	}

	return &MemoryStore{
		sessions: expirable.NewLRU[string, Session](cfg.MaxEntries, onEvict, cfg.TTL),
		now:      time.Now,
	}
}

// Create stores a new session under a random id.
func (s *MemoryStore) Create(email string, tok *oauth2.Token) Session {
	sess := Session{
		ID:        uuid.NewString(),
		Email:     email,
		Token:     tok,
		CreatedAt: s.now(),
	}
	s.sessions.Add(sess.ID, sess)
	metrics.ActiveSessions.Inc()
	return sess
}

// Get returns the session for id, if it exists and has not expired.
func (s *MemoryStore) Get(id string) (Session, bool) {
	if id == "" {
		return Session{}, false
	}
	return s.sessions.Get(id)
}

// UpdateToken replaces the token of an existing session, e.g. after a refresh.
// The session's expiry is renewed.
func (s *MemoryStore) UpdateToken(id string, tok *oauth2.Token) bool {
	sess, ok := s.sessions.Peek(id)
	if !ok {
		return false
	}
	sess.Token = tok
	// Add on an existing key does not fire the eviction callback.
	s.sessions.Add(id, sess)
	return true
}

// Delete removes a session. Unknown ids are ignored.
func (s *MemoryStore) Delete(id string) {
	s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	return s.sessions.Len()
}
