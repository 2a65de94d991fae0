package usecase

import (
	"context"
	"fmt"
	"io"

	"worklife-balance/internal/calendar"
	"worklife-balance/internal/metrics"
	"worklife-balance/pkg/icsfeed"
)

// Import decodes an uploaded .ics file, expanding recurrences inside the lookback window.
func (uc *implUseCase) Import(ctx context.Context, input calendar.ImportInput) (calendar.FetchOutput, error) {
	window := uc.dates.Lookback(uc.now(), uc.cfg.LookbackDays)
	output := calendar.FetchOutput{Source: calendar.SourceICS, From: window.From, To: window.To}

	if input.Body == nil {
		return output, calendar.ErrInvalidICS
	}

	items, err := icsfeed.Decode(io.LimitReader(input.Body, maxImportBytes), icsfeed.Options{
		From:      window.From,
		To:        window.To,
		Location:  uc.dates.Location(),
		MaxEvents: int(uc.cfg.MaxResults),
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.Import: %s: %v", input.Filename, err)
		metrics.CalendarFetches.WithLabelValues(string(calendar.SourceICS), metrics.StatusError).Inc()
		return output, fmt.Errorf("%w: %w", calendar.ErrInvalidICS, err)
	}

	metrics.CalendarFetches.WithLabelValues(string(calendar.SourceICS), metrics.StatusSuccess).Inc()
	uc.l.Infof(ctx, "calendar.usecase.Import: %d events from %s", len(items), input.Filename)
	output.Events = FromFeed(items, input.OwnerEmail)
	return output, nil
}
