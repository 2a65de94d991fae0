package gcalendar

const (
	// PrimaryCalendarID addresses the authenticated user's main calendar
	PrimaryCalendarID = "primary"

	// DefaultMaxResults caps a single ListEvents page
	DefaultMaxResults int64 = 100

	// UntitledSummary replaces an empty event summary
	UntitledSummary = "Untitled"

	// dateLayout is the all-day event date format
	dateLayout = "2006-01-02"
)
