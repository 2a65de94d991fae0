package calendar

import (
	"context"

	"worklife-balance/internal/session"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Fetch reads the caller's events over the lookback window.
	Fetch(ctx context.Context, input FetchInput) (FetchOutput, error)
	// ListCalendars returns the caller's Google calendar list.
	ListCalendars(ctx context.Context, sess session.Session) ([]CalendarInfo, error)
	// Import decodes an uploaded .ics file, expanding recurrences inside the lookback window.
	Import(ctx context.Context, input ImportInput) (FetchOutput, error)
}
