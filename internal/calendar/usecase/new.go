package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"worklife-balance/internal/session"
	"worklife-balance/pkg/datemath"
	"worklife-balance/pkg/gcalendar"
	"worklife-balance/pkg/icsfeed"
	pkgLog "worklife-balance/pkg/log"
)

// TokenSourcer turns a stored token into a refreshing token source; *googleauth.Client satisfies it.
type TokenSourcer interface {
	TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource
}

// GoogleCalendar is the part of *gcalendar.Client the use case reads from.
type GoogleCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	ListCalendars(ctx context.Context) ([]gcalendar.CalendarEntry, error)
}

// GoogleCalendarFactory builds a calendar client acting as the owner of ts.
type GoogleCalendarFactory func(ctx context.Context, ts oauth2.TokenSource) (GoogleCalendar, error)

// CalDAVSource is the part of *caldav.Client the use case reads from.
type CalDAVSource interface {
	ListEvents(ctx context.Context, from, to time.Time, loc *time.Location) ([]icsfeed.Event, error)
}

// Config controls the fetch window and limits.
type Config struct {
	CalendarID   string
	LookbackDays int
	MaxResults   int64
	Location     *time.Location
}

type implUseCase struct {
	l         pkgLog.Logger
	tokens    TokenSourcer
	newGoogle GoogleCalendarFactory
	caldav    CalDAVSource
	sessions  session.Store
	dates     *datemath.Parser
	cfg       Config
	now       func() time.Time
}

// New creates a new calendar UseCase instance. caldav may be nil when no CalDAV server is configured.
func New(l pkgLog.Logger, tokens TokenSourcer, sessions session.Store, caldav CalDAVSource, cfg Config) *implUseCase {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = defaultLookbackDays
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = gcalendar.DefaultMaxResults
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.PrimaryCalendarID
	}
	return &implUseCase{
		l:         l,
		tokens:    tokens,
		newGoogle: defaultGoogleFactory,
		caldav:    caldav,
		sessions:  sessions,
		dates:     datemath.NewParserIn(cfg.Location),
		cfg:       cfg,
		now:       time.Now,
	}
}

func defaultGoogleFactory(ctx context.Context, ts oauth2.TokenSource) (GoogleCalendar, error) {
	return gcalendar.NewClientFromToken(ctx, ts)
}
