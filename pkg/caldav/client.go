package caldav

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"

	"worklife-balance/pkg/icsfeed"
)

// ErrCalendarNotFound is returned when discovery finds no matching calendar.
var ErrCalendarNotFound = errors.New("caldav: calendar not found")

// userAgentTransport adds the user agent to each request.
type userAgentTransport struct {
	Transport http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	return t.Transport.RoundTrip(req)
}

// Client reads events from a CalDAV calendar.
type Client struct {
	caldavClient *caldav.Client
	cfg          Config
}

// New creates a CalDAV client. No request is made until events are listed.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := cfg.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := &http.Client{
		Transport: &userAgentTransport{Transport: base},
		Timeout:   cfg.HTTPClient.Timeout,
	}

	var hc webdav.HTTPClient = httpClient
	if cfg.Username != "" {
		hc = webdav.HTTPClientWithBasicAuth(httpClient, cfg.Username, cfg.Password)
	}

	caldavClient, err := caldav.NewClient(hc, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}

	return &Client{caldavClient: caldavClient, cfg: cfg}, nil
}

// ListEvents returns the events starting in [from, to), recurrences expanded, ordered by start.
func (c *Client) ListEvents(ctx context.Context, from, to time.Time, loc *time.Location) ([]icsfeed.Event, error) {
	calendarPath, err := c.calendarPath(ctx)
	if err != nil {
		return nil, err
	}

	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name:     ical.CompCalendar,
			AllProps: true,
			AllComps: true,
		},
		CompFilter: caldav.CompFilter{
			Name: ical.CompCalendar,
			Comps: []caldav.CompFilter{{
				Name:  ical.CompEvent,
				Start: from,
				End:   to,
			}},
		},
	}

	objects, err := c.caldavClient.QueryCalendar(ctx, calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}

	opts := icsfeed.Options{From: from, To: to, Location: loc}
	var events []icsfeed.Event
	for _, obj := range objects {
		if obj.Data == nil {
			continue
		}
		evs, err := icsfeed.FromCalendar(obj.Data, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", obj.Path, err)
		}
		events = append(events, evs...)
	}

	icsfeed.SortByStart(events)
	return events, nil
}

// calendarPath returns the configured path or discovers one by name.
func (c *Client) calendarPath(ctx context.Context) (string, error) {
	if c.cfg.CalendarPath != "" {
		return c.cfg.CalendarPath, nil
	}

	principalPath, err := c.caldavClient.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find principal path: %w", err)
	}

	homeSetPath, err := c.caldavClient.FindCalendarHomeSet(ctx, principalPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendar home set: %w", err)
	}

	calendars, err := c.caldavClient.FindCalendars(ctx, homeSetPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendars: %w", err)
	}

	for _, cal := range calendars {
		if c.cfg.CalendarName == "" || cal.Name == c.cfg.CalendarName {
			return cal.Path, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrCalendarNotFound, c.cfg.CalendarName)
}
