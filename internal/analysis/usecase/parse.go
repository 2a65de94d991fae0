package usecase

import (
	"encoding/json"
	"regexp"

	"worklife-balance/internal/analysis"
)

// jsonObjectPattern spans from the first '{' to the last '}' in the text.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseResponse extracts the analysis object embedded in free-form model output.
// The decoded object is returned as-is. When there is no object or it does not decode,
// DefaultResult is returned together with ErrMalformedResponse so the caller can log it;
// the result is usable in both cases.
func ParseResponse(text string) (analysis.AnalysisResult, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return DefaultResult(), analysis.ErrMalformedResponse
	}

	var result analysis.AnalysisResult
	if err := json.Unmarshal([]byte(match), &result); err != nil {
		return DefaultResult(), analysis.ErrMalformedResponse
	}

	return result, nil
}
