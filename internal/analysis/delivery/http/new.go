package http

import (
	"time"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/calendar"
	"worklife-balance/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       analysis.UseCase
	calendar calendar.UseCase
	loc      *time.Location
}

// New creates a new HTTP handler for the analysis domain.
// calendarUC serves server-side fetches (source=google|caldav); loc resolves all-day dates.
func New(l log.Logger, uc analysis.UseCase, calendarUC calendar.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{
		l:        l,
		uc:       uc,
		calendar: calendarUC,
		loc:      loc,
	}
}
