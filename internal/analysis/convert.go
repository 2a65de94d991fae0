package analysis

import "worklife-balance/internal/calendar"

// FromCalendar converts fetched or imported calendar events into pipeline input.
// The result is never nil.
func FromCalendar(events []calendar.Event) []RawEvent {
	raw := make([]RawEvent, 0, len(events))
	for _, e := range events {
		raw = append(raw, RawEvent{
			ID:            e.ID,
			Title:         e.Summary,
			Start:         e.Start,
			End:           e.End,
			Description:   e.Description,
			Location:      e.Location,
			AttendeeCount: e.AttendeeCount,
			IsSelfCreated: e.IsSelfCreated,
			AllDay:        e.AllDay,
		})
	}
	return raw
}
