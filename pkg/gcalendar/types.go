package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID            string
	Summary       string
	Description   string
	Location      string
	HtmlLink      string
	StartTime     time.Time
	EndTime       time.Time
	AllDay        bool
	AttendeeCount int
	CreatorEmail  string
	CreatorSelf   bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CalendarEntry is one calendar on the user's calendar list.
type CalendarEntry struct {
	ID         string
	Summary    string
	TimeZone   string
	Primary    bool
	AccessRole string
}
