package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"worklife-balance/internal/middleware"
	"worklife-balance/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent page (read-only calendar and email scopes, offline access).
// @Tags        Auth
// @Success     302
// @Router      /api/auth/google [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Login(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	cookie := h.mw.CookieConfig()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, output.State, stateCookieMaxAge, "/", "", cookie.Secure, true)
	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Google OAuth callback
// @Description Exchanges the authorization code, opens a session and redirects to the frontend.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "OAuth state"
// @Success     302
// @Router      /api/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	frontend := strings.TrimSuffix(h.frontendURL, "/")

	req, expected, err := h.processCallbackReq(c)
	// the state cookie is single use
	c.SetCookie(stateCookieName, "", -1, "/", "", h.mw.CookieConfig().Secure, true)
	if err != nil || req.Error != "" {
		h.l.Warnf(ctx, "auth.Callback: consent failed: %v %s", err, req.Error)
		c.Redirect(http.StatusFound, frontend+authErrorPath)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput(expected))
	if err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		c.Redirect(http.StatusFound, frontend+authErrorPath)
		return
	}

	h.mw.SetSessionCookie(c, output.SessionID)
	c.Redirect(http.StatusFound, frontend+authSuccessQuery)
}

// Status godoc
// @Summary     Session status
// @Description Reports whether the caller has a session and its account email.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok || sess.Email == "" {
		response.JSON(c, statusResp{Authenticated: false})
		return
	}
	response.JSON(c, statusResp{Authenticated: true, Email: sess.Email})
}

// Logout godoc
// @Summary     Log out
// @Description Destroys the session and clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Failure     500 {object} response.Resp "Could not log out"
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	var sessionID string
	if sess, ok := middleware.GetSession(c); ok {
		sessionID = sess.ID
	}

	if err := h.uc.Logout(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, errCouldNotLogout, nil)
		return
	}

	h.mw.ClearSessionCookie(c)
	response.JSON(c, logoutResp{Message: "Logged out successfully"})
}
