package usecase

import (
	"context"
	"fmt"
	"time"

	"worklife-balance/internal/analysis"
	pkgLog "worklife-balance/pkg/log"
)

// Pipeline runs normalize -> prompt -> one model call -> parse.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	l   pkgLog.Logger
	loc *time.Location
}

// NewPipeline creates a pipeline that evaluates working hours in loc.
func NewPipeline(l pkgLog.Logger, loc *time.Location) Pipeline {
	if loc == nil {
		loc = time.Local
	}
	return Pipeline{l: l, loc: loc}
}

// Run returns a complete AnalysisResult, possibly the default one.
// It fails only on a nil event batch or when the model call itself fails.
func (p Pipeline) Run(ctx context.Context, events []analysis.RawEvent, invoke analysis.InvokeFunc) (analysis.AnalysisResult, error) {
	result, _, err := p.RunWithStatus(ctx, events, invoke)
	return result, err
}

// RunWithStatus is Run that also reports whether the default result was substituted.
func (p Pipeline) RunWithStatus(ctx context.Context, events []analysis.RawEvent, invoke analysis.InvokeFunc) (analysis.AnalysisResult, bool, error) {
	if events == nil {
		return analysis.AnalysisResult{}, false, analysis.ErrInvalidInput
	}
	if invoke == nil {
		return analysis.AnalysisResult{}, false, fmt.Errorf("%w: no model configured", analysis.ErrUpstreamUnavailable)
	}

	prompt := BuildPrompt(NormalizeAll(events, p.loc))

	text, err := invoke(ctx, prompt)
	if err != nil {
		return analysis.AnalysisResult{}, false, fmt.Errorf("%w: %w", analysis.ErrUpstreamUnavailable, err)
	}

	result, err := ParseResponse(text)
	if err != nil {
		p.l.Warnf(ctx, "usecase.Pipeline.Run: %v, using default result. Raw=%q", err, text)
		return result, true, nil
	}

	return result, false, nil
}
