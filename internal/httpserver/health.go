package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"worklife-balance/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "worklife-balance"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once at least one model provider is configured.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "No model provider configured"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if len(srv.providers) == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "No model provider configured",
		})
		return
	}
	response.OK(c, gin.H{
		"status":    "ready",
		"version":   HealthVersion,
		"service":   ServiceName,
		"providers": srv.providers,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// apiHealth is the frontend's status probe.
// @Summary API Health
// @Description Reports OK with the server time.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "status and ISO timestamp"
// @Router /api/health [get]
func (srv *HTTPServer) apiHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
