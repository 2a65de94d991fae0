package http

import (
	"fmt"
	"strings"
	"time"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/calendar"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type analyzeReq struct {
	CalendarData *calendarDataReq `json:"calendarData"`
}

type calendarDataReq struct {
	Events []eventReq `json:"events"`
}

// eventReq is one event as served by GET /api/calendar/fetch.
type eventReq struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Attendees   int    `json:"attendees"`
	Creator     bool   `json:"creator"`
}

type analyzeQuery struct {
	Source string `form:"source" binding:"omitempty,oneof=google caldav"`
}

func (r analyzeReq) hasEvents() bool {
	return r.CalendarData != nil && r.CalendarData.Events != nil
}

// toInput converts the posted events. Event times are RFC3339 or YYYY-MM-DD in loc.
func (r analyzeReq) toInput(loc *time.Location) (analysis.AnalyzeInput, error) {
	events := make([]analysis.RawEvent, 0, len(r.CalendarData.Events))
	for i, e := range r.CalendarData.Events {
		start, allDay, err := parseEventTime(e.Start, loc)
		if err != nil {
			return analysis.AnalyzeInput{}, fmt.Errorf("event %d start: %w", i, err)
		}
		end, _, err := parseEventTime(e.End, loc)
		if err != nil {
			return analysis.AnalyzeInput{}, fmt.Errorf("event %d end: %w", i, err)
		}
		events = append(events, analysis.RawEvent{
			ID:            e.ID,
			Title:         e.Summary,
			Start:         start,
			End:           end,
			Description:   e.Description,
			Location:      e.Location,
			AttendeeCount: e.Attendees,
			IsSelfCreated: e.Creator,
			AllDay:        allDay,
		})
	}
	return analysis.AnalyzeInput{Events: events}, nil
}

// parseEventTime reports allDay when s is a bare date.
func parseEventTime(s string, loc *time.Location) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// fromCalendar converts server-side fetched events.
func fromCalendar(events []calendar.Event) analysis.AnalyzeInput {
	return analysis.AnalyzeInput{Events: analysis.FromCalendar(events)}
}

// --- Response DTOs ---

// analyzeResp is the analysis report plus whether the fallback report was served.
type analyzeResp struct {
	analysis.AnalysisResult
	Degraded   bool `json:"degraded"`
	EventCount int  `json:"eventCount"`
}

func (h *handler) newAnalyzeResp(o analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		AnalysisResult: o.Result,
		Degraded:       o.Degraded,
		EventCount:     o.EventCount,
	}
}
