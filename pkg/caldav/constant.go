package caldav

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	userAgent = "worklife-balance/1.0"
)
