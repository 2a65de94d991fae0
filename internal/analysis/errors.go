package analysis

import "errors"

var (
	ErrInvalidInput        = errors.New("no calendar data provided")
	ErrUpstreamUnavailable = errors.New("analysis model unavailable")
	ErrMalformedResponse   = errors.New("model response has no parseable analysis")
)
