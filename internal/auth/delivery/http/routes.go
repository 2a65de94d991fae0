package http

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
)

// RegisterRoutes maps the OAuth flow and session routes under rg (/api/auth).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/google", h.Login)
	rg.GET("/google/callback", h.Callback)
	rg.GET("/status", mw.OptionalAuth(), h.Status)
	rg.POST("/logout", mw.OptionalAuth(), h.Logout)
}
