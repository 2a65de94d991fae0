package http

import (
	"errors"
	"net/http"

	"worklife-balance/internal/calendar"
	pkgErrors "worklife-balance/pkg/errors"
)

var (
	errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "An .ics file is required in the \"file\" form field")
	errFetchFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch calendar data")
	errInvalidICS  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid iCalendar file")
	errNoSource    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Calendar source not configured")
	errBadSource   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid calendar source")
)

// mapError translates calendar errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, calendar.ErrInvalidICS):
		return errInvalidICS
	case errors.Is(err, calendar.ErrSourceNotConfigured):
		return errNoSource
	case errors.Is(err, calendar.ErrUnsupportedSource):
		return errBadSource
	default:
		return errFetchFailed
	}
}
