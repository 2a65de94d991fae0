package http

import (
	"errors"
	"net/http"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/calendar"
	pkgErrors "worklife-balance/pkg/errors"
)

var (
	errNoCalendarData   = pkgErrors.NewHTTPError(http.StatusBadRequest, "No calendar data provided")
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidEventTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "Event start and end must be RFC3339 timestamps or YYYY-MM-DD dates")
	errInvalidSource    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid calendar source")
	errModelUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to analyze calendar data")
	errAnalyzeFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to analyze calendar data")
	errFetchFailed      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch calendar data")
)

// mapError translates analysis and calendar errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		return errNoCalendarData
	case errors.Is(err, analysis.ErrUpstreamUnavailable):
		return errModelUnavailable
	case errors.Is(err, calendar.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, calendar.ErrSourceNotConfigured), errors.Is(err, calendar.ErrUnsupportedSource):
		return errInvalidSource
	case errors.Is(err, calendar.ErrFetchFailed):
		return errFetchFailed
	default:
		return errAnalyzeFailed
	}
}
