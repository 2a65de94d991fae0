package icsfeed

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// ErrNoCalendar is returned when the input holds no VCALENDAR.
var ErrNoCalendar = errors.New("icsfeed: no calendar found")

// maxOccurrences bounds expansion of an unbounded recurrence without a window.
const maxOccurrences = 500

// Decode reads every VCALENDAR from r and returns the events ordered by start.
// Recurring events are expanded into one Event per occurrence.
func Decode(r io.Reader, opts Options) ([]Event, error) {
	dec := ical.NewDecoder(r)

	var calendars []*ical.Calendar
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("icsfeed: failed to decode calendar: %w", err)
		}
		calendars = append(calendars, cal)
	}
	if len(calendars) == 0 {
		return nil, ErrNoCalendar
	}

	var events []Event
	for _, cal := range calendars {
		evs, err := FromCalendar(cal, opts)
		if err != nil {
			return nil, err
		}
		events = append(events, evs...)
	}

	sortAndCap(&events, opts.MaxEvents)
	return events, nil
}

// FromCalendar converts the VEVENTs of an already decoded calendar.
func FromCalendar(cal *ical.Calendar, opts Options) ([]Event, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	var events []Event
	for _, ve := range cal.Events() {
		base, err := convertEvent(ve, loc)
		if err != nil {
			return nil, err
		}

		occurrences, err := expand(ve, base, loc, opts)
		if err != nil {
			return nil, err
		}
		for _, ev := range occurrences {
			if inWindow(ev.Start, opts) {
				events = append(events, ev)
			}
		}
	}

	sortAndCap(&events, opts.MaxEvents)
	return events, nil
}

func convertEvent(ve ical.Event, loc *time.Location) (Event, error) {
	start, err := ve.DateTimeStart(loc)
	if err != nil {
		return Event{}, fmt.Errorf("icsfeed: invalid DTSTART: %w", err)
	}
	end, err := ve.DateTimeEnd(loc)
	if err != nil {
		return Event{}, fmt.Errorf("icsfeed: invalid DTEND: %w", err)
	}

	ev := Event{
		UID:           propText(ve.Component, ical.PropUID),
		Summary:       propText(ve.Component, ical.PropSummary),
		Description:   propText(ve.Component, ical.PropDescription),
		Location:      propText(ve.Component, ical.PropLocation),
		Start:         start,
		End:           end,
		AttendeeCount: len(ve.Props.Values(ical.PropAttendee)),
	}
	if p := ve.Props.Get(ical.PropDateTimeStart); p != nil && p.ValueType() == ical.ValueDate {
		ev.AllDay = true
	}
	if p := ve.Props.Get(ical.PropOrganizer); p != nil {
		ev.Organizer = strings.TrimPrefix(strings.ToLower(p.Value), "mailto:")
	}
	return ev, nil
}

// expand returns one Event per occurrence, or just base when the event does not recur.
func expand(ve ical.Event, base Event, loc *time.Location, opts Options) ([]Event, error) {
	set, err := ve.RecurrenceSet(loc)
	if err != nil {
		return nil, fmt.Errorf("icsfeed: invalid recurrence for %q: %w", base.Summary, err)
	}
	if set == nil {
		return []Event{base}, nil
	}

	var starts []time.Time
	if !opts.From.IsZero() && !opts.To.IsZero() {
		starts = set.Between(opts.From, opts.To, true)
	} else {
		iter := set.Iterator()
		for len(starts) < maxOccurrences {
			t, ok := iter()
			if !ok {
				break
			}
			if !opts.To.IsZero() && !t.Before(opts.To) {
				break
			}
			starts = append(starts, t)
		}
	}

	duration := base.End.Sub(base.Start)
	out := make([]Event, len(starts))
	for i, s := range starts {
		occ := base
		occ.Start = s
		occ.End = s.Add(duration)
		out[i] = occ
	}
	return out, nil
}

func propText(comp *ical.Component, name string) string {
	text, err := comp.Props.Text(name)
	if err != nil {
		return ""
	}
	return text
}

func inWindow(t time.Time, opts Options) bool {
	if !opts.From.IsZero() && t.Before(opts.From) {
		return false
	}
	if !opts.To.IsZero() && !t.Before(opts.To) {
		return false
	}
	return true
}

// SortByStart orders events by start time, keeping input order for ties.
func SortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

func sortAndCap(events *[]Event, max int) {
	SortByStart(*events)
	if max > 0 && len(*events) > max {
		*events = (*events)[:max]
	}
}
