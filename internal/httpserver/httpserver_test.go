package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/auth"
	"worklife-balance/internal/calendar"
	"worklife-balance/internal/middleware"
	"worklife-balance/internal/model"
	"worklife-balance/internal/session"
	"worklife-balance/pkg/log"
)

type stubAuth struct{}

func (stubAuth) Login(ctx context.Context) (auth.LoginOutput, error) {
	return auth.LoginOutput{URL: "https://accounts.google.com/o/oauth2/auth", State: "s"}, nil
}

func (stubAuth) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	return auth.CallbackOutput{}, auth.ErrInvalidState
}

func (stubAuth) Logout(ctx context.Context, sessionID string) error { return nil }

type stubCalendar struct{}

func (stubCalendar) Fetch(ctx context.Context, input calendar.FetchInput) (calendar.FetchOutput, error) {
	return calendar.FetchOutput{}, nil
}

func (stubCalendar) ListCalendars(ctx context.Context, sess session.Session) ([]calendar.CalendarInfo, error) {
	return nil, nil
}

func (stubCalendar) Import(ctx context.Context, input calendar.ImportInput) (calendar.FetchOutput, error) {
	return calendar.FetchOutput{}, nil
}

type stubAnalysis struct{}

func (stubAnalysis) Analyze(ctx context.Context, id model.Identity, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	return analysis.AnalyzeOutput{}, nil
}

func newTestServer(t *testing.T, providers []string) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	mw := middleware.New(l, session.New(session.Config{}), middleware.CookieConfig{Name: "sid"}, "http://localhost:3000", 0)
	srv, err := New(l, Config{
		Logger:       l,
		Port:         3001,
		Mode:         "test",
		Environment:  string(model.EnvironmentDevelopment),
		Middleware:   mw,
		FrontendURL:  "http://localhost:3000",
		Location:     time.UTC,
		LLMProviders: providers,
		AuthUC:       stubAuth{},
		CalendarUC:   stubCalendar{},
		AnalysisUC:   stubAnalysis{},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 1, AuthUC: stubAuth{}, CalendarUC: stubCalendar{}, AnalysisUC: stubAnalysis{}}},
		{name: "missing port", cfg: Config{Mode: "test", AuthUC: stubAuth{}, CalendarUC: stubCalendar{}, AnalysisUC: stubAnalysis{}}},
		{name: "missing analysis", cfg: Config{Mode: "test", Port: 1, AuthUC: stubAuth{}, CalendarUC: stubCalendar{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, []string{"anthropic"})

	tests := []struct {
		path string
		want int
	}{
		{path: "/health", want: http.StatusOK},
		{path: "/ready", want: http.StatusOK},
		{path: "/live", want: http.StatusOK},
		{path: "/metrics", want: http.StatusOK},
		{path: "/api/auth/status", want: http.StatusOK},
		{path: "/api/calendar/fetch", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAPIHealth(t *testing.T) {
	srv := newTestServer(t, []string{"anthropic"})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "OK" {
		t.Errorf("expected status OK, got %q", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil || !strings.HasSuffix(body.Timestamp, "Z") {
		t.Errorf("timestamp not ISO-8601 UTC: %q", body.Timestamp)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestReadyWithoutProviders(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, []string{"anthropic"})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected allow origin %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials allowed, got %q", got)
	}
}
