package http

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
)

// RegisterRoutes maps the analysis route under rg (/api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.Auth(), mw.RateLimit("analyze"), h.Analyze)
}
