package usecase

import (
	"strings"

	"worklife-balance/internal/calendar"
	"worklife-balance/pkg/gcalendar"
	"worklife-balance/pkg/icsfeed"
)

// FromGoogle converts Google events. owner marks events whose creator email matches it
// as self-created; Google's own creator.self flag always counts.
func FromGoogle(items []gcalendar.Event, owner string) []calendar.Event {
	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		events = append(events, calendar.Event{
			ID:            item.ID,
			Summary:       item.Summary,
			Description:   item.Description,
			Location:      item.Location,
			Start:         item.StartTime,
			End:           item.EndTime,
			AllDay:        item.AllDay,
			AttendeeCount: item.AttendeeCount,
			IsSelfCreated: item.CreatorSelf || sameEmail(item.CreatorEmail, owner),
		})
	}
	return events
}

// FromFeed converts decoded iCalendar events. An empty summary becomes "Untitled".
func FromFeed(items []icsfeed.Event, owner string) []calendar.Event {
	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		summary := item.Summary
		if summary == "" {
			summary = gcalendar.UntitledSummary
		}
		events = append(events, calendar.Event{
			ID:            item.UID,
			Summary:       summary,
			Description:   item.Description,
			Location:      item.Location,
			Start:         item.Start,
			End:           item.End,
			AllDay:        item.AllDay,
			AttendeeCount: item.AttendeeCount,
			IsSelfCreated: sameEmail(item.Organizer, owner),
		})
	}
	return events
}

func sameEmail(a, b string) bool {
	a = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(a)), "mailto:")
	b = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(b)), "mailto:")
	return a != "" && a == b
}
