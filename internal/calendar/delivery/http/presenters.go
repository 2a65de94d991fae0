package http

import (
	"time"

	"worklife-balance/internal/calendar"
	"worklife-balance/internal/session"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type fetchReq struct {
	Source string `form:"source" binding:"omitempty,oneof=google caldav"`
}

func (r fetchReq) toInput(sess session.Session) calendar.FetchInput {
	return calendar.FetchInput{
		Session: sess,
		Source:  calendar.Source(r.Source),
	}
}

// --- Response DTOs ---

// EventResp is one calendar event. Start and End are RFC3339, or YYYY-MM-DD for all-day events.
type EventResp struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Attendees   int    `json:"attendees"`
	Creator     bool   `json:"creator"`
}

type eventsResp struct {
	Events []EventResp `json:"events"`
	Source string      `json:"source"`
	From   string      `json:"from"`
	To     string      `json:"to"`
}

type calendarResp struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	TimeZone string `json:"timeZone,omitempty"`
	Primary  bool   `json:"primary"`
	Role     string `json:"accessRole"`
}

type calendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
}

// NewEventResp renders a calendar event in the client wire shape.
func NewEventResp(e calendar.Event) EventResp {
	return EventResp{
		ID:          e.ID,
		Summary:     e.Summary,
		Start:       formatTime(e.Start, e.AllDay),
		End:         formatTime(e.End, e.AllDay),
		Description: e.Description,
		Location:    e.Location,
		Attendees:   e.AttendeeCount,
		Creator:     e.IsSelfCreated,
	}
}

func (h *handler) newEventsResp(o calendar.FetchOutput) eventsResp {
	events := make([]EventResp, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, NewEventResp(e))
	}
	return eventsResp{
		Events: events,
		Source: string(o.Source),
		From:   o.From.Format(time.RFC3339),
		To:     o.To.Format(time.RFC3339),
	}
}

func (h *handler) newCalendarsResp(infos []calendar.CalendarInfo) calendarsResp {
	out := make([]calendarResp, 0, len(infos))
	for _, c := range infos {
		out = append(out, calendarResp{
			ID:       c.ID,
			Summary:  c.Summary,
			TimeZone: c.TimeZone,
			Primary:  c.Primary,
			Role:     c.Role,
		})
	}
	return calendarsResp{Calendars: out}
}

func formatTime(t time.Time, allDay bool) string {
	if t.IsZero() {
		return ""
	}
	if allDay {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}
