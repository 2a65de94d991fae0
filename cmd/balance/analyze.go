package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"worklife-balance/config"
	"worklife-balance/internal/analysis"
	analysisUC "worklife-balance/internal/analysis/usecase"
	calendarUC "worklife-balance/internal/calendar/usecase"
	"worklife-balance/internal/model"
	"worklife-balance/pkg/caldav"
	"worklife-balance/pkg/datemath"
	"worklife-balance/pkg/gcalendar"
	"worklife-balance/pkg/icsfeed"
	"worklife-balance/pkg/llmprovider"
	"worklife-balance/pkg/log"
)

var errNoSource = errors.New("one of --ics, --google or --caldav is required")

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Read events from a calendar source, run the analysis and print the report as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ics", Usage: "read events from an .ics file"},
			&cli.BoolFlag{Name: "google", Usage: "read events from Google Calendar"},
			&cli.StringFlag{Name: "credentials", Value: "google-credentials.json", Usage: "Google credentials file (service account or OAuth desktop)"},
			&cli.StringFlag{Name: "token", Value: "token.json", Usage: "token saved by the auth command"},
			&cli.StringFlag{Name: "calendar", Value: gcalendar.PrimaryCalendarID, Usage: "Google calendar id"},
			&cli.BoolFlag{Name: "caldav", Usage: "read events from the CalDAV server in config"},
			&cli.StringFlag{Name: "from", Usage: "window start: YYYY-MM-DD, RFC3339 or e.g. \"30 days ago\" (default: lookback from config)"},
			&cli.StringFlag{Name: "to", Usage: "window end (default: now)"},
			&cli.StringFlag{Name: "timezone", Usage: "IANA timezone for working hours and all-day dates (default: config)"},
			&cli.BoolFlag{Name: "prompt-only", Usage: "print the model prompt instead of calling the model"},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	ctx := c.Context

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	tz := c.String("timezone")
	if tz == "" {
		tz = cfg.Calendar.Timezone
	}
	dates, err := datemath.NewParser(tz)
	if err != nil {
		return err
	}

	window := dates.Lookback(time.Now(), cfg.Calendar.LookbackDays)
	if c.String("from") != "" {
		if window, err = dates.Between(c.String("from"), c.String("to"), time.Now()); err != nil {
			return err
		}
	}
	logger.Infof(ctx, "balance.analyze: window %s - %s", window.From.Format(time.RFC3339), window.To.Format(time.RFC3339))

	events, err := readEvents(ctx, c, cfg, dates.Location(), window)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "balance.analyze: %d events", len(events))

	if c.Bool("prompt-only") {
		fmt.Println(analysisUC.BuildPrompt(analysisUC.NormalizeAll(events, dates.Location())))
		return nil
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return err
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)

	uc := analysisUC.New(logger, manager, dates.Location())
	out, err := uc.Analyze(ctx, model.Identity{}, analysis.AnalyzeInput{Events: events})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		analysis.AnalysisResult
		Degraded   bool `json:"degraded"`
		EventCount int  `json:"eventCount"`
	}{out.Result, out.Degraded, out.EventCount})
}

func readEvents(ctx context.Context, c *cli.Context, cfg *config.Config, loc *time.Location, window datemath.Window) ([]analysis.RawEvent, error) {
	maxResults := cfg.Calendar.MaxResults
	if maxResults <= 0 {
		maxResults = gcalendar.DefaultMaxResults
	}

	switch {
	case c.String("ics") != "":
		f, err := os.Open(c.String("ics"))
		if err != nil {
			return nil, err
		}
		defer f.Close()

		items, err := icsfeed.Decode(f, icsfeed.Options{
			From:      window.From,
			To:        window.To,
			Location:  loc,
			MaxEvents: int(maxResults),
		})
		if err != nil {
			return nil, err
		}
		return analysis.FromCalendar(calendarUC.FromFeed(items, "")), nil

	case c.Bool("google"):
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, c.String("credentials"), c.String("token"))
		if err != nil {
			return nil, err
		}
		items, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: c.String("calendar"),
			TimeMin:    window.From,
			TimeMax:    window.To,
			MaxResults: maxResults,
		})
		if err != nil {
			return nil, err
		}
		return analysis.FromCalendar(calendarUC.FromGoogle(items, "")), nil

	case c.Bool("caldav"):
		client, err := caldav.New(caldav.Config{
			Endpoint:     cfg.CalDAV.Endpoint,
			Username:     cfg.CalDAV.Username,
			Password:     cfg.CalDAV.Password,
			CalendarPath: cfg.CalDAV.CalendarPath,
			CalendarName: cfg.CalDAV.CalendarName,
		})
		if err != nil {
			return nil, err
		}
		items, err := client.ListEvents(ctx, window.From, window.To, loc)
		if err != nil {
			return nil, err
		}
		if int64(len(items)) > maxResults {
			items = items[:maxResults]
		}
		return analysis.FromCalendar(calendarUC.FromFeed(items, "")), nil
	}

	return nil, errNoSource
}
