package calendar

import "errors"

var (
	ErrUnauthenticated     = errors.New("calendar credentials missing or expired")
	ErrFetchFailed         = errors.New("failed to fetch calendar data")
	ErrInvalidICS          = errors.New("invalid iCalendar file")
	ErrSourceNotConfigured = errors.New("calendar source not configured")
	ErrUnsupportedSource   = errors.New("unsupported calendar source")
)
