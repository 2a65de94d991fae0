package middleware

import (
	"worklife-balance/internal/session"
	"worklife-balance/pkg/log"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

type Middleware struct {
	l            log.Logger
	sessions     session.Store
	cookieConfig CookieConfig
	frontendURL  string
	limiter      *rateLimiter
}

// New creates the shared middleware set. analyzePerMin bounds calls per session on rate-limited routes.
func New(l log.Logger, sessions session.Store, cookieConfig CookieConfig, frontendURL string, analyzePerMin int) Middleware {
	return Middleware{
		l:            l,
		sessions:     sessions,
		cookieConfig: cookieConfig,
		frontendURL:  frontendURL,
		limiter:      newRateLimiter(analyzePerMin),
	}
}

// CookieConfig returns the session cookie settings.
func (m Middleware) CookieConfig() CookieConfig {
	return m.cookieConfig
}
