package http

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600 // seconds

	authSuccessQuery = "?auth=success"
	authErrorPath    = "/connect?auth=error"
)
