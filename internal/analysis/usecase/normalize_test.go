package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"worklife-balance/internal/analysis"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        analysis.Category
	}{
		{name: "sleep", title: "Sleep", want: analysis.CategorySleep},
		{name: "bed", title: "Go to bed", want: analysis.CategorySleep},
		{name: "gym", title: "GYM session", want: analysis.CategoryFitness},
		{name: "workout wins over work", title: "Morning workout", want: analysis.CategoryFitness},
		{name: "meeting", title: "Team Meeting", want: analysis.CategoryWork},
		{name: "work lunch is work", title: "Work lunch", want: analysis.CategoryWork},
		{name: "lunch", title: "Lunch with Sam", want: analysis.CategoryMeal},
		{name: "class", title: "Spanish class", want: analysis.CategoryEducation},
		{name: "family", title: "Family dinner", want: analysis.CategoryMeal},
		{name: "friend", title: "Drinks with a friend", want: analysis.CategoryPersonal},
		{name: "nothing", title: "Dentist", want: analysis.CategoryOther},
		{name: "empty", title: "", want: analysis.CategoryOther},
		{name: "description fallback", title: "Block", description: "study for exam", want: analysis.CategoryEducation},
		{name: "title beats description", title: "Gym", description: "team meeting afterwards", want: analysis.CategoryFitness},
		{name: "substring match", title: "Bedtime routine", want: analysis.CategorySleep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.title, tt.description); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %s, want %s", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestIsWorkingHours(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "9:00 wednesday", at: wednesdayAt(9, 0), want: true},
		{name: "18:00 wednesday", at: wednesdayAt(18, 0), want: true},
		{name: "18:59 wednesday", at: wednesdayAt(18, 59), want: true},
		{name: "8:59 wednesday", at: wednesdayAt(8, 59), want: false},
		{name: "19:00 wednesday", at: wednesdayAt(19, 0), want: false},
		{name: "midnight wednesday", at: wednesdayAt(0, 0), want: false},
		{name: "saturday noon", at: time.Date(2024, time.January, 13, 12, 0, 0, 0, time.UTC), want: false},
		{name: "sunday 10am", at: time.Date(2024, time.January, 14, 10, 0, 0, 0, time.UTC), want: false},
		{name: "monday 10am", at: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC), want: true},
		{name: "friday 18:30", at: time.Date(2024, time.January, 12, 18, 30, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWorkingHours(tt.at, time.UTC); got != tt.want {
				t.Errorf("IsWorkingHours(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestIsWorkingHours_UsesLocation(t *testing.T) {
	// 08:00 UTC on a Wednesday is 15:00 in Ho Chi Minh City.
	loc := time.FixedZone("ICT", 7*60*60)
	at := wednesdayAt(8, 0)

	if IsWorkingHours(at, time.UTC) {
		t.Errorf("expected 08:00 UTC to be outside working hours")
	}
	if !IsWorkingHours(at, loc) {
		t.Errorf("expected 15:00 ICT to be within working hours")
	}
}

func TestNormalize(t *testing.T) {
	t.Run("derives fields", func(t *testing.T) {
		raw := analysis.RawEvent{
			ID:            "evt-1",
			Title:         "Team Meeting",
			Start:         wednesdayAt(10, 0),
			End:           wednesdayAt(11, 30),
			AttendeeCount: 4,
		}

		got := Normalize(raw, time.UTC)
		if got.Title != "Team Meeting" {
			t.Errorf("unexpected title %q", got.Title)
		}
		if got.DurationHours != 1.5 {
			t.Errorf("expected 1.5h, got %v", got.DurationHours)
		}
		if got.Category != analysis.CategoryWork {
			t.Errorf("expected work, got %s", got.Category)
		}
		if !got.IsWorkingHours {
			t.Errorf("expected working hours")
		}
		if !got.HasAttendees {
			t.Errorf("expected attendees")
		}
	})

	t.Run("negative duration is preserved", func(t *testing.T) {
		raw := analysis.RawEvent{Title: "Broken", Start: wednesdayAt(12, 0), End: wednesdayAt(10, 0)}

		got := Normalize(raw, time.UTC)
		if got.DurationHours != -2 {
			t.Errorf("expected -2h, got %v", got.DurationHours)
		}
	})

	t.Run("zero value event", func(t *testing.T) {
		got := Normalize(analysis.RawEvent{}, nil)
		if got.Category != analysis.CategoryOther {
			t.Errorf("expected other, got %s", got.Category)
		}
		if got.DurationHours != 0 {
			t.Errorf("expected 0h, got %v", got.DurationHours)
		}
		if got.HasAttendees {
			t.Errorf("expected no attendees")
		}
	})

	t.Run("NormalizeAll keeps order and length", func(t *testing.T) {
		raws := []analysis.RawEvent{{Title: "Sleep"}, {Title: "Gym"}, {Title: "Dentist"}}
		got := NormalizeAll(raws, time.UTC)
		if len(got) != 3 {
			t.Fatalf("expected 3 events, got %d", len(got))
		}
		want := []analysis.Category{analysis.CategorySleep, analysis.CategoryFitness, analysis.CategoryOther}
		for i := range want {
			if got[i].Category != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], got[i].Category)
			}
		}
	})
}

// TestProperty_GymIsFitness: any title containing "gym" in any casing is fitness,
// as long as no higher-priority sleep keyword is present.
func TestProperty_GymIsFitness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	noSleepWords := func(s string) bool {
		lower := strings.ToLower(s)
		return !strings.Contains(lower, "sleep") && !strings.Contains(lower, "bed")
	}

	properties.Property("title containing gym is categorized as fitness", prop.ForAll(
		func(prefix, gym, suffix string) bool {
			title := prefix + gym + suffix
			return Normalize(analysis.RawEvent{Title: title}, time.UTC).Category == analysis.CategoryFitness
		},
		gen.AlphaString().SuchThat(noSleepWords),
		gen.OneConstOf("gym", "GYM", "Gym", "gYm", "gyM"),
		gen.AlphaString().SuchThat(noSleepWords),
	))

	properties.TestingRun(t)
}

// TestProperty_WeekendNeverWorkingHours: weekend starts are never working hours.
func TestProperty_WeekendNeverWorkingHours(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)

	properties.Property("saturday and sunday are outside working hours", prop.ForAll(
		func(week, day int, secondOfDay int64) bool {
			start := saturday.AddDate(0, 0, week*7+day).Add(time.Duration(secondOfDay) * time.Second)
			return !Normalize(analysis.RawEvent{Title: "Meeting", Start: start, End: start.Add(time.Hour)}, time.UTC).IsWorkingHours
		},
		gen.IntRange(-520, 520),
		gen.IntRange(0, 1),
		gen.Int64Range(0, 24*60*60-1),
	))

	properties.TestingRun(t)
}

// TestProperty_NormalizeIsTotal: any start/end pair normalizes, duration is end - start.
func TestProperty_NormalizeIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("duration equals end minus start, sign included", prop.ForAll(
		func(startUnix, deltaMinutes int64) bool {
			start := time.Unix(startUnix, 0).UTC()
			end := start.Add(time.Duration(deltaMinutes) * time.Minute)
			got := Normalize(analysis.RawEvent{Start: start, End: end}, time.UTC)
			return got.DurationHours == end.Sub(start).Hours()
		},
		gen.Int64Range(0, 4102444800),
		gen.Int64Range(-10000, 10000),
	))

	properties.TestingRun(t)
}
