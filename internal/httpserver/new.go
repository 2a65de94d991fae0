package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/auth"
	"worklife-balance/internal/calendar"
	"worklife-balance/internal/middleware"
	"worklife-balance/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	frontendURL string
	location    *time.Location
	providers   []string

	// Domains
	authUC     auth.UseCase
	calendarUC calendar.UseCase
	analysisUC analysis.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	FrontendURL string
	// Location resolves all-day dates in posted events.
	Location *time.Location
	// LLMProviders are the configured model providers in priority order, reported by /ready.
	LLMProviders []string

	AuthUC     auth.UseCase
	CalendarUC calendar.UseCase
	AnalysisUC analysis.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		frontendURL: cfg.FrontendURL,
		location:    cfg.Location,
		providers:   cfg.LLMProviders,
		authUC:      cfg.AuthUC,
		calendarUC:  cfg.CalendarUC,
		analysisUC:  cfg.AnalysisUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar use case is required")
	}
	if srv.analysisUC == nil {
		return errors.New("analysis use case is required")
	}
	return nil
}
