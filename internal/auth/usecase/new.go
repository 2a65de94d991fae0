package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"worklife-balance/internal/session"
	pkgLog "worklife-balance/pkg/log"
)

// OAuthClient is the part of the Google OAuth flow the use case needs; *googleauth.Client satisfies it.
type OAuthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Email(ctx context.Context, tok *oauth2.Token) (string, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	oauth    OAuthClient
	sessions session.Store
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, oauth OAuthClient, sessions session.Store) *implUseCase {
	return &implUseCase{
		l:        l,
		oauth:    oauth,
		sessions: sessions,
	}
}
