package usecase

import "worklife-balance/internal/analysis"

// categoryRule maps a category to the keywords that select it.
type categoryRule struct {
	category analysis.Category
	keywords []string
}

// categoryRules is evaluated in order and the first match wins.
// The keyword sets overlap ("work lunch"), so the order is part of the behavior.
var categoryRules = []categoryRule{
	{analysis.CategorySleep, []string{"sleep", "bed"}},
	{analysis.CategoryFitness, []string{"gym", "workout", "fitness"}},
	{analysis.CategoryWork, []string{"work", "meeting", "call"}},
	{analysis.CategoryMeal, []string{"lunch", "dinner", "breakfast", "meal"}},
	{analysis.CategoryEducation, []string{"class", "study", "school"}},
	{analysis.CategoryPersonal, []string{"personal", "family", "friend"}},
}

// Working hours window, both bounds inclusive.
const (
	workdayStartHour = 9
	workdayEndHour   = 18
)

// Model call settings.
const (
	analysisMaxTokens = 2000
	// zero is omitted on the wire so each provider applies its own default
	analysisTemperature = 0
)

// analysisPromptTemplate is the instruction sent to the model. %s is the event listing.
const analysisPromptTemplate = `
You are a work-life balance expert. Analyze the following calendar data and provide insights about the person's work-life balance. 

Calendar Events (last 30 days):
%s

Please analyze this data and provide a JSON response with the following structure:
{
  "balanceScore": <number 0-100>,
  "sleepQuality": "<Excellent/Good/Fair/Poor>",
  "workLifeRatio": "<work%%/life%%>",
  "topInsight": "<key insight about their schedule>",
  "recommendations": [
    "<recommendation 1>",
    "<recommendation 2>",
    "<recommendation 3>"
  ],
  "timeBreakdown": {
    "work": <hours>,
    "sleep": <hours>,
    "fitness": <hours>,
    "personal": <hours>,
    "meals": <hours>
  },
  "patterns": {
    "consistentSleep": <boolean>,
    "regularExercise": <boolean>,
    "workOvertime": <boolean>,
    "skipsMeals": <boolean>
  }
}

Focus on:
1. Sleep consistency and quality
2. Work-life boundaries
3. Time allocation across categories
4. Health and wellness habits
5. Areas for improvement

Provide actionable, personalized recommendations based on the specific patterns you observe.
`

// DefaultResult is returned whenever the model output cannot be parsed.
func DefaultResult() analysis.AnalysisResult {
	return analysis.AnalysisResult{
		BalanceScore:  75,
		SleepQuality:  analysis.SleepQualityGood,
		WorkLifeRatio: "60/40",
		TopInsight:    "Your calendar shows a generally balanced lifestyle with room for optimization.",
		Recommendations: []string{
			"Consider blocking time for focused work sessions",
			"Maintain consistent sleep schedule",
			"Schedule regular breaks between meetings",
		},
		TimeBreakdown: map[string]float64{
			"work":     40,
			"sleep":    56,
			"fitness":  10,
			"personal": 20,
			"meals":    7,
		},
		Patterns: analysis.Patterns{
			ConsistentSleep: true,
			RegularExercise: true,
			WorkOvertime:    false,
			SkipsMeals:      false,
		},
	}
}
