package caldav

import (
	"errors"
	"net/http"
)

// Config configures a CalDAV source.
type Config struct {
	Endpoint string
	Username string
	Password string
	// CalendarPath skips discovery when set.
	CalendarPath string
	// CalendarName picks a calendar during discovery. Empty takes the first one.
	CalendarName string
	HTTPClient   *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("caldav: endpoint is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}
