package calendar

import (
	"io"
	"time"

	"worklife-balance/internal/session"
)

// Source names where events are read from.
type Source string

const (
	SourceGoogle Source = "google"
	SourceCalDAV Source = "caldav"
	SourceICS    Source = "ics"
)

// Event is a calendar entry from any source, in the shape the analysis consumes.
type Event struct {
	ID            string
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AllDay        bool
	AttendeeCount int
	IsSelfCreated bool
}

// FetchInput selects the events of one user over the configured lookback window.
type FetchInput struct {
	Session session.Session
	Source  Source // empty means google
}

// FetchOutput is the events found, ordered by start.
type FetchOutput struct {
	Events []Event
	Source Source
	From   time.Time
	To     time.Time
}

// ImportInput is an uploaded iCalendar file.
type ImportInput struct {
	Body     io.Reader
	Filename string
	// OwnerEmail marks events organized by this address as self-created.
	OwnerEmail string
}

// CalendarInfo is one calendar on the user's Google calendar list.
type CalendarInfo struct {
	ID       string
	Summary  string
	TimeZone string
	Primary  bool
	Role     string
}
