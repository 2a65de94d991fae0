package analysis

import (
	"context"

	"worklife-balance/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze normalizes the events, asks the model for an analysis and parses the answer.
	Analyze(ctx context.Context, id model.Identity, input AnalyzeInput) (AnalyzeOutput, error)
}
