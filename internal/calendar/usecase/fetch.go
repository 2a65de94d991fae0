package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"worklife-balance/internal/calendar"
	"worklife-balance/internal/metrics"
	"worklife-balance/internal/session"
	"worklife-balance/pkg/gcalendar"
)

// Fetch reads the caller's events over the lookback window.
func (uc *implUseCase) Fetch(ctx context.Context, input calendar.FetchInput) (calendar.FetchOutput, error) {
	source := input.Source
	if source == "" {
		source = calendar.SourceGoogle
	}
	window := uc.dates.Lookback(uc.now(), uc.cfg.LookbackDays)
	output := calendar.FetchOutput{Source: source, From: window.From, To: window.To}

	var (
		events []calendar.Event
		err    error
	)
	switch source {
	case calendar.SourceGoogle:
		events, err = uc.fetchGoogle(ctx, input.Session, output)
	case calendar.SourceCalDAV:
		events, err = uc.fetchCalDAV(ctx, input.Session.Email, output)
	default:
		return output, calendar.ErrUnsupportedSource
	}
	if err != nil {
		metrics.CalendarFetches.WithLabelValues(string(source), metrics.StatusError).Inc()
		return output, err
	}

	metrics.CalendarFetches.WithLabelValues(string(source), metrics.StatusSuccess).Inc()
	uc.l.Infof(ctx, "calendar.usecase.Fetch: %d events from %s", len(events), source)
	output.Events = events
	return output, nil
}

func (uc *implUseCase) fetchGoogle(ctx context.Context, sess session.Session, window calendar.FetchOutput) ([]calendar.Event, error) {
	client, err := uc.googleClient(ctx, sess)
	if err != nil {
		return nil, err
	}

	items, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    window.From,
		TimeMax:    window.To,
		MaxResults: uc.cfg.MaxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Fetch.ListEvents: %v", err)
		return nil, classify(err)
	}

	return FromGoogle(items, sess.Email), nil
}

func (uc *implUseCase) fetchCalDAV(ctx context.Context, owner string, window calendar.FetchOutput) ([]calendar.Event, error) {
	if uc.caldav == nil {
		return nil, calendar.ErrSourceNotConfigured
	}

	items, err := uc.caldav.ListEvents(ctx, window.From, window.To, uc.dates.Location())
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Fetch.CalDAV: %v", err)
		return nil, fmt.Errorf("%w: %w", calendar.ErrFetchFailed, err)
	}

	if uc.cfg.MaxResults > 0 && int64(len(items)) > uc.cfg.MaxResults {
		items = items[:uc.cfg.MaxResults]
	}
	return FromFeed(items, owner), nil
}

// ListCalendars returns the caller's Google calendar list.
func (uc *implUseCase) ListCalendars(ctx context.Context, sess session.Session) ([]calendar.CalendarInfo, error) {
	client, err := uc.googleClient(ctx, sess)
	if err != nil {
		return nil, err
	}

	entries, err := client.ListCalendars(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ListCalendars: %v", err)
		return nil, classify(err)
	}

	infos := make([]calendar.CalendarInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, calendar.CalendarInfo{
			ID:       e.ID,
			Summary:  e.Summary,
			TimeZone: e.TimeZone,
			Primary:  e.Primary,
			Role:     e.AccessRole,
		})
	}
	return infos, nil
}

func (uc *implUseCase) googleClient(ctx context.Context, sess session.Session) (GoogleCalendar, error) {
	if sess.Token == nil || uc.tokens == nil {
		return nil, calendar.ErrUnauthenticated
	}

	ts := newPersistingTokenSource(uc.tokens.TokenSource(ctx, sess.Token), uc.sessions, sess)
	client, err := uc.newGoogle(ctx, ts)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.googleClient: %v", err)
		return nil, fmt.Errorf("%w: %w", calendar.ErrFetchFailed, err)
	}
	return client, nil
}

// classify maps token and API auth failures to ErrUnauthenticated.
func classify(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", calendar.ErrUnauthenticated, err)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", calendar.ErrUnauthenticated, err)
	}
	return fmt.Errorf("%w: %w", calendar.ErrFetchFailed, err)
}
