package http

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
	"worklife-balance/pkg/response"
)

// Analyze godoc
// @Summary     Analyze work-life balance
// @Description Categorizes the posted events, asks the model for a balance report and returns it.
// @Description Without calendarData, ?source=google or ?source=caldav fetches the events server-side.
// @Description degraded is true when the model answer could not be parsed and the default report was served.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       source query string     false "Server-side event source" Enums(google, caldav)
// @Param       body   body  analyzeReq false "Events from /api/calendar/fetch"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "No calendar data provided"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Failed to analyze calendar data"
// @Router      /api/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Analyze(ctx, middleware.GetIdentity(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.JSON(c, h.newAnalyzeResp(output))
}
