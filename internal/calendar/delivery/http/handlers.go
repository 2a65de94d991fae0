package http

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
	"worklife-balance/pkg/response"
)

// Fetch godoc
// @Summary     Fetch recent events
// @Description Reads the caller's events over the configured lookback window (30 days by default, up to 100 events).
// @Tags        Calendar
// @Produce     json
// @Param       source query string false "Event source" Enums(google, caldav)
// @Success     200 {object} eventsResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     500 {object} response.Resp "Failed to fetch calendar data"
// @Router      /api/calendar/fetch [GET]
func (h *handler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, _ := middleware.GetSession(c)
	output, err := h.uc.Fetch(ctx, req.toInput(sess))
	if err != nil {
		h.l.Errorf(ctx, "uc.Fetch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.JSON(c, h.newEventsResp(output))
}

// List godoc
// @Summary     List calendars
// @Description Returns the calendars on the caller's Google calendar list.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} calendarsResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Router      /api/calendar/list [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sess, _ := middleware.GetSession(c)
	infos, err := h.uc.ListCalendars(ctx, sess)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.JSON(c, h.newCalendarsResp(infos))
}

// Import godoc
// @Summary     Import an .ics file
// @Description Decodes an uploaded iCalendar file into events, expanding recurrences inside the lookback window.
// @Tags        Calendar
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "iCalendar file"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Invalid iCalendar file"
// @Router      /api/calendar/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	input, f, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer f.Close()

	output, err := h.uc.Import(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.JSON(c, h.newEventsResp(output))
}
