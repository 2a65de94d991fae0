package usecase

import (
	"sync"

	"golang.org/x/oauth2"

	"worklife-balance/internal/session"
)

// persistingTokenSource writes refreshed tokens back to the session so the next request reuses them.
type persistingTokenSource struct {
	base      oauth2.TokenSource
	sessions  session.Store
	sessionID string

	mu   sync.Mutex
	last string
}

func newPersistingTokenSource(base oauth2.TokenSource, sessions session.Store, sess session.Session) *persistingTokenSource {
	ts := &persistingTokenSource{base: base, sessions: sessions, sessionID: sess.ID}
	if sess.Token != nil {
		ts.last = sess.Token.AccessToken
	}
	return ts
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if s.sessions != nil && s.sessionID != "" {
			s.sessions.UpdateToken(s.sessionID, tok)
		}
	}
	return tok, nil
}
