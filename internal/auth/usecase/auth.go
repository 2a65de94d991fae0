package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"

	"worklife-balance/internal/auth"
)

// Login returns the consent URL bound to a fresh random state.
func (uc *implUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	state := uuid.NewString()
	return auth.LoginOutput{
		URL:   uc.oauth.AuthCodeURL(state),
		State: state,
	}, nil
}

// Callback validates the state, exchanges the code, resolves the email and opens a session.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if input.State == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	tok, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback.Exchange: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %w", auth.ErrExchangeFailed, err)
	}

	email, err := uc.oauth.Email(ctx, tok)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback.Email: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %w", auth.ErrExchangeFailed, err)
	}

	sess := uc.sessions.Create(email, tok)
	uc.l.Infof(ctx, "auth.usecase.Callback: session opened for %s", email)

	return auth.CallbackOutput{SessionID: sess.ID, Email: email}, nil
}

// Logout deletes the session.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID != "" {
		uc.sessions.Delete(sessionID)
	}
	return nil
}
