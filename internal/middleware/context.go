package middleware

import (
	"github.com/gin-gonic/gin"

	"worklife-balance/internal/model"
	"worklife-balance/internal/session"
)

const (
	sessionKey   = "session"
	requestIDKey = "request_id"
)

// GetSession returns the session attached by Auth or OptionalAuth.
func GetSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// GetIdentity returns the caller's identity, zero when unauthenticated.
func GetIdentity(c *gin.Context) model.Identity {
	sess, ok := GetSession(c)
	if !ok {
		return model.Identity{}
	}
	id := model.Identity{Email: sess.Email}
	if sess.Token != nil {
		id.AccessToken = sess.Token.AccessToken
	}
	return id
}

// GetRequestID returns the request id set by RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
