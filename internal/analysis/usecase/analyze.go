package usecase

import (
	"context"
	"errors"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/metrics"
	"worklife-balance/internal/model"
	"worklife-balance/pkg/llmprovider"
)

// Analyze runs the analysis pipeline against the configured model.
func (uc *implUseCase) Analyze(ctx context.Context, id model.Identity, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if input.Events == nil {
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return analysis.AnalyzeOutput{}, analysis.ErrInvalidInput
	}

	uc.l.Infof(ctx, "Analyze: user=%s events=%d", id.Email, len(input.Events))
	metrics.EventsAnalyzed.Add(float64(len(input.Events)))

	var invoke analysis.InvokeFunc
	if uc.llm != nil {
		invoke = uc.invokeModel
	}

	result, degraded, err := uc.pipeline.RunWithStatus(ctx, input.Events, invoke)
	if err != nil {
		outcome := metrics.OutcomeFailed
		if errors.Is(err, analysis.ErrInvalidInput) {
			outcome = metrics.OutcomeRejected
		}
		metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
		uc.l.Errorf(ctx, "analysis.usecase.Analyze.RunWithStatus: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	outcome := metrics.OutcomeParsed
	if degraded {
		outcome = metrics.OutcomeDefault
	}
	metrics.AnalysesTotal.WithLabelValues(outcome).Inc()

	return analysis.AnalyzeOutput{
		Result:     result,
		Degraded:   degraded,
		EventCount: len(input.Events),
	}, nil
}

// invokeModel sends the prompt as a single user turn and returns the answer text.
func (uc *implUseCase) invokeModel(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(prompt, analysisTemperature, analysisMaxTokens))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", llmprovider.ErrEmptyResponse
	}
	return resp.Content.Text(), nil
}
