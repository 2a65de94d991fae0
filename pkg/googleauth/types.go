package googleauth

import (
	"errors"
	"net/http"
)

// Config configures the OAuth web flow.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// HTTPClient is used for token exchange and userinfo calls when set.
	HTTPClient *http.Client
	// UserinfoEndpoint overrides the Google userinfo base path, for tests.
	UserinfoEndpoint string
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return errors.New("googleauth: client id is required")
	}
	if c.ClientSecret == "" {
		return errors.New("googleauth: client secret is required")
	}
	if c.RedirectURL == "" {
		return errors.New("googleauth: redirect url is required")
	}
	return nil
}
