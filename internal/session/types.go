package session

import (
	"time"

	"golang.org/x/oauth2"
)

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string
	Email     string
	Token     *oauth2.Token
	CreatedAt time.Time
}

// Config bounds the in-memory store.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

const (
	DefaultMaxEntries = 10000
	DefaultTTL        = 24 * time.Hour
)
