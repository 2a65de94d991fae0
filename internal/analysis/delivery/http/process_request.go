package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/calendar"
	"worklife-balance/internal/middleware"
)

// processAnalyzeReq resolves the events to analyze: the posted calendarData, or a
// server-side fetch when the body has none and ?source= is set.
func (h *handler) processAnalyzeReq(c *gin.Context) (analysis.AnalyzeInput, error) {
	ctx := c.Request.Context()

	var query analyzeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return analysis.AnalyzeInput{}, errInvalidSource
	}

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "analysis.delivery.http.processAnalyzeReq: %v", err)
		return analysis.AnalyzeInput{}, errInvalidBody
	}

	if req.hasEvents() {
		input, err := req.toInput(h.loc)
		if err != nil {
			h.l.Warnf(ctx, "analysis.delivery.http.processAnalyzeReq.toInput: %v", err)
			return analysis.AnalyzeInput{}, errInvalidEventTime
		}
		return input, nil
	}

	if query.Source == "" || h.calendar == nil {
		return analysis.AnalyzeInput{}, analysis.ErrInvalidInput
	}

	sess, _ := middleware.GetSession(c)
	out, err := h.calendar.Fetch(ctx, calendar.FetchInput{
		Session: sess,
		Source:  calendar.Source(query.Source),
	})
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.processAnalyzeReq.Fetch: %v", err)
		return analysis.AnalyzeInput{}, err
	}
	return fromCalendar(out.Events), nil
}
