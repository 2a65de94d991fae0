package usecase

import (
	"testing"
	"time"

	"worklife-balance/internal/calendar"
	"worklife-balance/pkg/gcalendar"
	"worklife-balance/pkg/icsfeed"
)

func TestFromGoogle(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		item  gcalendar.Event
		owner string
		want  calendar.Event
	}{
		{
			name:  "creator self",
			item:  gcalendar.Event{ID: "g1", Summary: "Standup", StartTime: start, EndTime: start.Add(15 * time.Minute), AttendeeCount: 3, CreatorSelf: true},
			owner: "",
			want:  calendar.Event{ID: "g1", Summary: "Standup", Start: start, End: start.Add(15 * time.Minute), AttendeeCount: 3, IsSelfCreated: true},
		},
		{
			name:  "creator email matches owner",
			item:  gcalendar.Event{ID: "g2", Summary: "Gym", StartTime: start, EndTime: start.Add(time.Hour), CreatorEmail: "Jane@Example.com"},
			owner: "jane@example.com",
			want:  calendar.Event{ID: "g2", Summary: "Gym", Start: start, End: start.Add(time.Hour), IsSelfCreated: true},
		},
		{
			name:  "someone else's invite",
			item:  gcalendar.Event{ID: "g3", Summary: "Review", StartTime: start, EndTime: start.Add(time.Hour), CreatorEmail: "boss@example.com", Description: "Q1", Location: "Room 4"},
			owner: "jane@example.com",
			want:  calendar.Event{ID: "g3", Summary: "Review", Start: start, End: start.Add(time.Hour), Description: "Q1", Location: "Room 4"},
		},
		{
			name: "all day",
			item: gcalendar.Event{ID: "g4", Summary: "Holiday", StartTime: start, EndTime: start.AddDate(0, 0, 1), AllDay: true},
			want: calendar.Event{ID: "g4", Summary: "Holiday", Start: start, End: start.AddDate(0, 0, 1), AllDay: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGoogle([]gcalendar.Event{tt.item}, tt.owner)
			if len(got) != 1 {
				t.Fatalf("expected 1 event, got %d", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got[0])
			}
		})
	}

	if got := FromGoogle(nil, ""); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromFeed(t *testing.T) {
	start := time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		item  icsfeed.Event
		owner string
		want  calendar.Event
	}{
		{
			name:  "organizer is owner",
			item:  icsfeed.Event{UID: "u1", Summary: "Run", Start: start, End: start.Add(time.Hour), Organizer: "mailto:JANE@example.com", AttendeeCount: 1},
			owner: "jane@example.com",
			want:  calendar.Event{ID: "u1", Summary: "Run", Start: start, End: start.Add(time.Hour), AttendeeCount: 1, IsSelfCreated: true},
		},
		{
			name: "empty summary",
			item: icsfeed.Event{UID: "u2", Start: start, End: start.Add(time.Hour)},
			want: calendar.Event{ID: "u2", Summary: gcalendar.UntitledSummary, Start: start, End: start.Add(time.Hour)},
		},
		{
			name:  "no owner never matches",
			item:  icsfeed.Event{UID: "u3", Summary: "Dinner", Start: start, End: start.Add(time.Hour), Organizer: ""},
			owner: "",
			want:  calendar.Event{ID: "u3", Summary: "Dinner", Start: start, End: start.Add(time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFeed([]icsfeed.Event{tt.item}, tt.owner)
			if len(got) != 1 {
				t.Fatalf("expected 1 event, got %d", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got[0])
			}
		})
	}
}
