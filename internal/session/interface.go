package session

import "golang.org/x/oauth2"

// Store keeps sessions keyed by an opaque id. Implementations are safe for concurrent use.
type Store interface {
	Create(email string, tok *oauth2.Token) Session
	Get(id string) (Session, bool)
	UpdateToken(id string, tok *oauth2.Token) bool
	Delete(id string)
	Len() int
}
