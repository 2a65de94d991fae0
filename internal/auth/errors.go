package auth

import "errors"

var (
	ErrInvalidState   = errors.New("oauth state mismatch")
	ErrMissingCode    = errors.New("authorization code is missing")
	ErrExchangeFailed = errors.New("authorization code exchange failed")
)
