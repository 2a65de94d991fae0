package icsfeed

import "time"

// Event is one occurrence of a VEVENT.
type Event struct {
	UID           string
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AllDay        bool
	AttendeeCount int
	Organizer     string
}

// Options bounds what Decode returns.
type Options struct {
	// From and To select occurrences starting in [From, To). Zero means unbounded.
	From time.Time
	To   time.Time
	// Location resolves floating times and all-day dates. Defaults to UTC.
	Location *time.Location
	// MaxEvents caps the result after sorting by start. Zero means no cap.
	MaxEvents int
}
