package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidWindow = errors.New("window end must be after start")

	agoPattern = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
	weekdays   = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts relative and absolute date strings to time.Time values in one location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty string or "Local" uses the host timezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || timezone == "Local" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to loc.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to an absolute time.Time, relative to baseTime.
// Accepted forms: "now", "today", "yesterday", "tomorrow", "N days|weeks|months ago",
// "last <weekday>", YYYY-MM-DD and RFC3339.
func (p *Parser) Parse(s string, baseTime time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "now":
		return baseTime.In(p.location), nil
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasSuffix(s, " ago") {
		return p.parseAgo(s, baseTime)
	}
	if strings.HasPrefix(s, "last ") {
		return p.parseLastWeekday(s, baseTime)
	}

	if t, err := time.ParseInLocation("2006-01-02", s, p.location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, strings.ToUpper(s)); err == nil {
		return t.In(p.location), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseAgo handles patterns like "3 days ago", "2 weeks ago", "1 month ago".
func (p *Parser) parseAgo(s string, baseTime time.Time) (time.Time, error) {
	matches := agoPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", s)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, -amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, -amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, -amount, 0)), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseLastWeekday handles patterns like "last monday": the most recent such day strictly before today.
func (p *Parser) parseLastWeekday(s string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(s, "last ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	current := baseTime.In(p.location).Weekday()
	daysBack := int(current - target)
	if daysBack <= 0 {
		daysBack += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, -daysBack)), nil
}

// Lookback returns the window of the last days days ending at now.
func (p *Parser) Lookback(now time.Time, days int) Window {
	now = now.In(p.location)
	return Window{From: now.AddDate(0, 0, -days), To: now}
}

// Between parses from and to into a window. An empty to means now.
func (p *Parser) Between(from, to string, now time.Time) (Window, error) {
	start, err := p.Parse(from, now)
	if err != nil {
		return Window{}, fmt.Errorf("from: %w", err)
	}
	end := now.In(p.location)
	if strings.TrimSpace(to) != "" {
		if end, err = p.Parse(to, now); err != nil {
			return Window{}, fmt.Errorf("to: %w", err)
		}
	}
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{From: start, To: end}, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
