package anthropic

import "time"

const (
	// DefaultModel is the model the analysis prompt was tuned against
	DefaultModel = "claude-3-7-sonnet-20250219"

	// DefaultAPIURL is the Messages API endpoint
	DefaultAPIURL = "https://api.anthropic.com/v1/messages"

	// APIVersion is sent in the anthropic-version header
	APIVersion = "2023-06-01"

	// DefaultMaxTokens is used when a request does not set one
	DefaultMaxTokens = 2000

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
