package usecase

import (
	"context"
	"sync"
	"time"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/model"
	"worklife-balance/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator returns a canned answer and records the last request.
type mockGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
	calls   int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.text}}},
		ProviderName: "mock",
	}, nil
}

// stubInvoke returns a fixed model answer.
func stubInvoke(text string, err error) analysis.InvokeFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		return text, err
	}
}

// wednesdayAt returns 2024-01-10 (a Wednesday) at the given hour in UTC.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2024, time.January, 10, hour, minute, 0, 0, time.UTC)
}

const validAnalysisJSON = `{
  "balanceScore": 62,
  "sleepQuality": "Fair",
  "workLifeRatio": "70/30",
  "topInsight": "Meetings spill into evenings on most weekdays.",
  "recommendations": ["Stop meetings at 17:00", "Protect two gym slots", "Eat lunch away from the desk"],
  "timeBreakdown": {"work": 52.5, "sleep": 44, "fitness": 3, "personal": 10, "meals": 5},
  "patterns": {"consistentSleep": false, "regularExercise": false, "workOvertime": true, "skipsMeals": true}
}`

var testIdentity = model.Identity{Email: "jane@example.com", AccessToken: "ya29.test"}
