package http

import (
	"worklife-balance/internal/auth"
	"worklife-balance/internal/middleware"
	"worklife-balance/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          auth.UseCase
	mw          middleware.Middleware
	frontendURL string
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, mw middleware.Middleware, frontendURL string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		mw:          mw,
		frontendURL: frontendURL,
	}
}
