package datemath

import "time"

// Window is a half-open time range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls in the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Days is the window length in days, rounded down.
func (w Window) Days() int {
	return int(w.To.Sub(w.From).Hours() / 24)
}
