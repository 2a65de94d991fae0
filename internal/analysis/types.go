package analysis

import (
	"context"
	"time"
)

// Category is the coarse activity bucket an event falls into.
type Category string

const (
	CategorySleep     Category = "sleep"
	CategoryFitness   Category = "fitness"
	CategoryWork      Category = "work"
	CategoryMeal      Category = "meal"
	CategoryEducation Category = "education"
	CategoryPersonal  Category = "personal"
	CategoryOther     Category = "other"
)

// RawEvent is a calendar entry as returned by a calendar source.
type RawEvent struct {
	ID            string
	Title         string
	Start         time.Time
	End           time.Time
	Description   string
	Location      string
	AttendeeCount int
	IsSelfCreated bool
	// AllDay events carry a date, not a time. Start and End are midnights.
	AllDay bool
}

// NormalizedEvent is a RawEvent enriched with derived duration and classification.
type NormalizedEvent struct {
	Title          string
	Start          time.Time
	End            time.Time
	DurationHours  float64
	Category       Category
	IsWorkingHours bool
	HasAttendees   bool
	AllDay         bool
}

// AnalysisResult is the report rendered by the client. Field names are part of the wire contract.
type AnalysisResult struct {
	BalanceScore    int                `json:"balanceScore"`
	SleepQuality    string             `json:"sleepQuality"`
	WorkLifeRatio   string             `json:"workLifeRatio"`
	TopInsight      string             `json:"topInsight"`
	Recommendations []string           `json:"recommendations"`
	TimeBreakdown   map[string]float64 `json:"timeBreakdown"`
	Patterns        Patterns           `json:"patterns"`
}

// Patterns are the boolean habit flags of an AnalysisResult.
type Patterns struct {
	ConsistentSleep bool `json:"consistentSleep"`
	RegularExercise bool `json:"regularExercise"`
	WorkOvertime    bool `json:"workOvertime"`
	SkipsMeals      bool `json:"skipsMeals"`
}

// Sleep quality grades the model is asked to choose from.
const (
	SleepQualityExcellent = "Excellent"
	SleepQualityGood      = "Good"
	SleepQualityFair      = "Fair"
	SleepQualityPoor      = "Poor"
)

// InvokeFunc performs one model inference: prompt in, free-form text out.
type InvokeFunc func(ctx context.Context, prompt string) (string, error)

// AnalyzeInput is the input for a single analysis run.
type AnalyzeInput struct {
	Events []RawEvent
}

// AnalyzeOutput is the result of a single analysis run.
type AnalyzeOutput struct {
	Result     AnalysisResult
	Degraded   bool // the model output could not be parsed and the default result was used
	EventCount int
}
