package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analysisHTTP "worklife-balance/internal/analysis/delivery/http"
	authHTTP "worklife-balance/internal/auth/delivery/http"
	calendarHTTP "worklife-balance/internal/calendar/delivery/http"
)

// setupAuthDomain registers /api/auth/*.
func (srv *HTTPServer) setupAuthDomain(api *gin.RouterGroup) {
	h := authHTTP.New(srv.l, srv.authUC, srv.mw, srv.frontendURL)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, srv.mw)
	srv.l.Infof(context.Background(), "Auth domain registered")
}

// setupCalendarDomain registers /api/calendar/*.
func (srv *HTTPServer) setupCalendarDomain(api *gin.RouterGroup) {
	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, srv.mw)
	srv.l.Infof(context.Background(), "Calendar domain registered")
}

// setupAnalysisDomain registers POST /api/analyze.
func (srv *HTTPServer) setupAnalysisDomain(api *gin.RouterGroup) {
	h := analysisHTTP.New(srv.l, srv.analysisUC, srv.calendarUC, srv.location)
	analysisHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(context.Background(), "Analysis domain registered")
}
