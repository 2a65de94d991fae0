package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worklife-balance/pkg/response"
)

// Auth rejects requests without a live session with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.loadSession(c) {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the session when there is one and never rejects.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.loadSession(c)
		c.Next()
	}
}

func (m Middleware) loadSession(c *gin.Context) bool {
	id, err := c.Cookie(m.cookieConfig.Name)
	if err != nil || id == "" {
		return false
	}
	sess, ok := m.sessions.Get(id)
	if !ok {
		return false
	}
	c.Set(sessionKey, sess)
	return true
}

// SetSessionCookie writes the session cookie.
func (m Middleware) SetSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieConfig.Name, id, m.cookieConfig.MaxAge, "/", "", m.cookieConfig.Secure, true)
}

// ClearSessionCookie expires the session cookie.
func (m Middleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieConfig.Name, "", -1, "/", "", m.cookieConfig.Secure, true)
}
