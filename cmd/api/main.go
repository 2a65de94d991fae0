package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"worklife-balance/config"
	_ "worklife-balance/docs" // Swagger docs
	analysisUC "worklife-balance/internal/analysis/usecase"
	authUC "worklife-balance/internal/auth/usecase"
	calendarUC "worklife-balance/internal/calendar/usecase"
	"worklife-balance/internal/httpserver"
	"worklife-balance/internal/middleware"
	"worklife-balance/internal/session"
	"worklife-balance/pkg/caldav"
	"worklife-balance/pkg/googleauth"
	"worklife-balance/pkg/llmprovider"
	"worklife-balance/pkg/log"
)

// @title       Work-Life Balance API
// @description Connects a Google Calendar, categorizes recent events and asks a language model for a work-life balance report.
// @version     1
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Work-Life Balance API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Frontend URL: %s", cfg.Frontend.URL)

	loc, err := cfg.Calendar.Location()
	if err != nil {
		logger.Errorf(ctx, "Invalid calendar timezone %q: %v", cfg.Calendar.Timezone, err)
		return
	}

	// 3. Google OAuth
	oauthClient, err := googleauth.New(googleauth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Google OAuth not configured: %v", err)
		return
	}

	// 4. Sessions
	sessions := session.New(session.Config{
		MaxEntries: cfg.Session.MaxSessions,
		TTL:        cfg.Session.TTL,
	})

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)
	logger.Infof(ctx, "LLM providers: %v (fallback=%v)", llmManager.Providers(), cfg.LLM.FallbackEnabled)

	// 6. CalDAV source (optional)
	var davSource calendarUC.CalDAVSource
	if cfg.CalDAV.Endpoint != "" {
		davClient, davErr := caldav.New(caldav.Config{
			Endpoint:     cfg.CalDAV.Endpoint,
			Username:     cfg.CalDAV.Username,
			Password:     cfg.CalDAV.Password,
			CalendarPath: cfg.CalDAV.CalendarPath,
			CalendarName: cfg.CalDAV.CalendarName,
		})
		if davErr != nil {
			logger.Warnf(ctx, "CalDAV source not available (optional): %v", davErr)
		} else {
			davSource = davClient
			logger.Infof(ctx, "CalDAV source initialized: %s", cfg.CalDAV.Endpoint)
		}
	}

	// 7. Use cases
	authUseCase := authUC.New(logger, oauthClient, sessions)
	calendarUseCase := calendarUC.New(logger, oauthClient, sessions, davSource, calendarUC.Config{
		CalendarID:   cfg.Calendar.CalendarID,
		LookbackDays: cfg.Calendar.LookbackDays,
		MaxResults:   cfg.Calendar.MaxResults,
		Location:     loc,
	})
	analysisUseCase := analysisUC.New(logger, llmManager, loc)

	// 8. HTTP Server
	mw := middleware.New(logger, sessions, middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.Secure,
	}, cfg.Frontend.URL, cfg.RateLimit.AnalyzePerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		FrontendURL:  cfg.Frontend.URL,
		Location:     loc,
		LLMProviders: llmManager.Providers(),
		AuthUC:       authUseCase,
		CalendarUC:   calendarUseCase,
		AnalysisUC:   analysisUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
