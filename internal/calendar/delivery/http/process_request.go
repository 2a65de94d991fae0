package http

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"worklife-balance/internal/calendar"
	"worklife-balance/internal/middleware"
)

const importFormField = "file"

func (h *handler) processFetchReq(c *gin.Context) (fetchReq, error) {
	var req fetchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.delivery.http.processFetchReq: %v", err)
		return req, errBadSource
	}
	return req, nil
}

// processImportReq opens the uploaded file. The caller closes it.
func (h *handler) processImportReq(c *gin.Context) (calendar.ImportInput, multipart.File, error) {
	header, err := c.FormFile(importFormField)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "calendar.delivery.http.processImportReq: %v", err)
		return calendar.ImportInput{}, nil, errMissingFile
	}
	f, err := header.Open()
	if err != nil {
		return calendar.ImportInput{}, nil, errMissingFile
	}

	input := calendar.ImportInput{
		Body:     f,
		Filename: header.Filename,
	}
	if sess, ok := middleware.GetSession(c); ok {
		input.OwnerEmail = sess.Email
	}
	return input, f, nil
}
