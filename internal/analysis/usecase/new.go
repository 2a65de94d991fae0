package usecase

import (
	"context"
	"time"

	"worklife-balance/pkg/llmprovider"
	pkgLog "worklife-balance/pkg/log"
)

// Generator is the model backend; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator
	pipeline Pipeline
}

// New creates a new analysis UseCase instance.
// Working hours are evaluated in loc; nil means the server's local zone.
func New(
	l pkgLog.Logger,
	llm Generator,
	loc *time.Location,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		pipeline: NewPipeline(l, loc),
	}
}
