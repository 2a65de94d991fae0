package http

import "github.com/gin-gonic/gin"

// processCallbackReq binds the OAuth redirect query and reads the state cookie.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, string, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, "", err
	}
	expected, _ := c.Cookie(stateCookieName)
	return req, expected, nil
}
