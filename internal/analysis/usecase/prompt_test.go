package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"worklife-balance/internal/analysis"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("one line per event in order", func(t *testing.T) {
		events := NormalizeAll([]analysis.RawEvent{
			{Title: "Sleep", Start: wednesdayAt(0, 0), End: wednesdayAt(7, 0)},
			{Title: "Gym", Start: wednesdayAt(7, 30), End: wednesdayAt(8, 15)},
			{Title: "Standup meeting", Start: wednesdayAt(9, 0), End: wednesdayAt(9, 10)},
		}, time.UTC)

		prompt := BuildPrompt(events)

		want := []string{
			"Sleep (sleep) - 7.0h on 2024-01-10T00:00:00Z",
			"Gym (fitness) - 0.8h on 2024-01-10T07:30:00Z",
			"Standup meeting (work) - 0.2h on 2024-01-10T09:00:00Z",
		}
		listing := strings.Join(want, "\n")
		if !strings.Contains(prompt, listing) {
			t.Fatalf("expected listing %q in prompt:\n%s", listing, prompt)
		}
	})

	t.Run("duration has exactly one decimal", func(t *testing.T) {
		events := NormalizeAll([]analysis.RawEvent{
			{Title: "Long", Start: wednesdayAt(0, 0), End: wednesdayAt(0, 0).Add(123*time.Hour + 30*time.Minute)},
			{Title: "Backwards", Start: wednesdayAt(10, 0), End: wednesdayAt(9, 0)},
		}, time.UTC)

		prompt := BuildPrompt(events)
		if !strings.Contains(prompt, "Long (other) - 123.5h on") {
			t.Errorf("expected 123.5h in prompt")
		}
		if !strings.Contains(prompt, "Backwards (other) - -1.0h on") {
			t.Errorf("expected -1.0h in prompt")
		}
	})

	t.Run("all-day start is a bare date", func(t *testing.T) {
		plus7 := time.FixedZone("UTC+7", 7*60*60)
		day := time.Date(2024, 1, 12, 0, 0, 0, 0, plus7)
		events := NormalizeAll([]analysis.RawEvent{
			{Title: "Family trip", Start: day, End: day.AddDate(0, 0, 1), AllDay: true},
			{Title: "Dinner", Start: day.Add(19 * time.Hour), End: day.Add(20 * time.Hour)},
		}, plus7)

		prompt := BuildPrompt(events)
		if !strings.Contains(prompt, "Family trip (personal) - 24.0h on 2024-01-12\n") {
			t.Errorf("expected date-only start for all-day event:\n%s", prompt)
		}
		if !strings.Contains(prompt, "Dinner (meal) - 1.0h on 2024-01-12T19:00:00+07:00") {
			t.Errorf("expected RFC3339 start for timed event:\n%s", prompt)
		}
	})

	t.Run("empty events keep template intact", func(t *testing.T) {
		prompt := BuildPrompt(nil)

		if prompt != fmt.Sprintf(analysisPromptTemplate, "") {
			t.Errorf("unexpected prompt for empty input")
		}
		if !strings.Contains(prompt, "Calendar Events (last 30 days):\n\n") {
			t.Errorf("expected empty listing section")
		}
		if !strings.Contains(prompt, `"workLifeRatio": "<work%/life%>"`) {
			t.Errorf("expected literal percent signs in template")
		}
		if !strings.Contains(prompt, "Provide actionable, personalized recommendations") {
			t.Errorf("expected closing instruction")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		events := NormalizeAll([]analysis.RawEvent{{Title: "Lunch", Start: wednesdayAt(12, 0), End: wednesdayAt(13, 0)}}, time.UTC)
		if BuildPrompt(events) != BuildPrompt(events) {
			t.Errorf("expected identical prompts")
		}
	})
}
