package http

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
)

// RegisterRoutes maps calendar routes under rg (/api/calendar).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/fetch", mw.Auth(), h.Fetch)
	rg.GET("/list", mw.Auth(), h.List)
	rg.POST("/import", mw.OptionalAuth(), h.Import)
}
