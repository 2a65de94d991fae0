package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login starts the Google consent flow.
	Login(ctx context.Context) (LoginOutput, error)
	// Callback exchanges the authorization code and opens a session.
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
	// Logout closes a session. Unknown sessions are not an error.
	Logout(ctx context.Context, sessionID string) error
}
