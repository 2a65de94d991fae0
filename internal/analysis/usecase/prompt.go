package usecase

import (
	"fmt"
	"strings"
	"time"

	"worklife-balance/internal/analysis"
)

// BuildPrompt renders the events into the fixed analysis instruction.
// Output is deterministic: one line per event, in input order.
func BuildPrompt(events []analysis.NormalizedEvent) string {
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = formatEventLine(e)
	}
	return fmt.Sprintf(analysisPromptTemplate, strings.Join(lines, "\n"))
}

// formatEventLine prints all-day starts as a bare date, the way the calendar serves them.
func formatEventLine(e analysis.NormalizedEvent) string {
	layout := time.RFC3339
	if e.AllDay {
		layout = time.DateOnly
	}
	return fmt.Sprintf("%s (%s) - %.1fh on %s", e.Title, e.Category, e.DurationHours, e.Start.Format(layout))
}
