package usecase

import (
	"strings"
	"time"

	"worklife-balance/internal/analysis"
)

// Normalize derives duration, category and time-of-day flags from a raw event.
// It never fails. An event that ends before it starts gets a negative duration.
func Normalize(raw analysis.RawEvent, loc *time.Location) analysis.NormalizedEvent {
	return analysis.NormalizedEvent{
		Title:          raw.Title,
		Start:          raw.Start,
		End:            raw.End,
		DurationHours:  durationHours(raw.Start, raw.End),
		Category:       Categorize(raw.Title, raw.Description),
		IsWorkingHours: IsWorkingHours(raw.Start, loc),
		HasAttendees:   raw.AttendeeCount > 0,
		AllDay:         raw.AllDay,
	}
}

// NormalizeAll maps every raw event to exactly one normalized event, preserving order.
func NormalizeAll(raws []analysis.RawEvent, loc *time.Location) []analysis.NormalizedEvent {
	out := make([]analysis.NormalizedEvent, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw, loc)
	}
	return out
}

// Categorize matches the title against the keyword rules and falls back to the
// description only when the title says nothing.
func Categorize(title, description string) analysis.Category {
	if c := matchCategory(strings.ToLower(title)); c != analysis.CategoryOther {
		return c
	}
	return matchCategory(strings.ToLower(description))
}

func matchCategory(text string) analysis.Category {
	if text == "" {
		return analysis.CategoryOther
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return analysis.CategoryOther
}

// IsWorkingHours reports whether t falls on Monday-Friday between 09:00 and 18:59 in loc.
func IsWorkingHours(t time.Time, loc *time.Location) bool {
	if loc != nil {
		t = t.In(loc)
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	hour := t.Hour()
	return hour >= workdayStartHour && hour <= workdayEndHour
}

func durationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
