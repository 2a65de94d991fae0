package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"worklife-balance/internal/analysis"
	"worklife-balance/internal/calendar"
	calendarHTTP "worklife-balance/internal/calendar/delivery/http"
	"worklife-balance/internal/middleware"
	"worklife-balance/internal/model"
	"worklife-balance/internal/session"
	"worklife-balance/pkg/log"
)

type fakeAnalysis struct {
	out      analysis.AnalyzeOutput
	err      error
	gotID    model.Identity
	gotInput analysis.AnalyzeInput
	calls    int
}

func (f *fakeAnalysis) Analyze(ctx context.Context, id model.Identity, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	f.calls++
	f.gotID = id
	f.gotInput = input
	if input.Events == nil {
		return analysis.AnalyzeOutput{}, analysis.ErrInvalidInput
	}
	return f.out, f.err
}

type fakeCalendar struct {
	out calendar.FetchOutput
	err error
	got calendar.FetchInput
}

func (f *fakeCalendar) Fetch(ctx context.Context, input calendar.FetchInput) (calendar.FetchOutput, error) {
	f.got = input
	return f.out, f.err
}

func (f *fakeCalendar) ListCalendars(ctx context.Context, sess session.Session) ([]calendar.CalendarInfo, error) {
	return nil, nil
}

func (f *fakeCalendar) Import(ctx context.Context, input calendar.ImportInput) (calendar.FetchOutput, error) {
	return calendar.FetchOutput{}, nil
}

func sampleResult() analysis.AnalysisResult {
	return analysis.AnalysisResult{
		BalanceScore:    62,
		SleepQuality:    analysis.SleepQualityFair,
		WorkLifeRatio:   "70/30",
		TopInsight:      "Meetings spill into evenings.",
		Recommendations: []string{"Block focus time"},
		TimeBreakdown:   map[string]float64{"work": 52.5},
		Patterns:        analysis.Patterns{WorkOvertime: true},
	}
}

func setup(uc *fakeAnalysis, cal *fakeCalendar, perMin int) (*gin.Engine, session.Session) {
	gin.SetMode(gin.TestMode)
	store := session.New(session.Config{})
	sess := store.Create("jane@example.com", &oauth2.Token{AccessToken: "ya29.x"})
	mw := middleware.New(log.NewNop(), store, middleware.CookieConfig{Name: "sid"}, "http://localhost:3000", perMin)

	var calUC calendar.UseCase
	if cal != nil {
		calUC = cal
	}
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc, calUC, time.UTC), mw)
	return r, sess
}

func post(r *gin.Engine, sess session.Session, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sess.ID != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sess.ID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const postedEvents = `{"calendarData":{"events":[
	{"id":"e1","summary":"Standup","start":"2024-01-10T09:00:00Z","end":"2024-01-10T09:15:00Z","description":"","location":"","attendees":4,"creator":true},
	{"id":"e2","summary":"Holiday","start":"2024-01-12","end":"2024-01-13","attendees":0,"creator":false}
]}}`

func TestAnalyze(t *testing.T) {
	t.Run("posted events", func(t *testing.T) {
		uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult(), EventCount: 2}}
		r, sess := setup(uc, nil, 0)

		w := post(r, sess, "/api/analyze", postedEvents)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["balanceScore"] != float64(62) || body["workLifeRatio"] != "70/30" {
			t.Errorf("result fields not at top level: %v", body)
		}
		if body["degraded"] != false {
			t.Errorf("expected degraded=false, got %v", body["degraded"])
		}

		if uc.gotID.Email != "jane@example.com" || uc.gotID.AccessToken != "ya29.x" {
			t.Errorf("identity not passed: %+v", uc.gotID)
		}
		if len(uc.gotInput.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(uc.gotInput.Events))
		}
		first, second := uc.gotInput.Events[0], uc.gotInput.Events[1]
		if first.Title != "Standup" || first.AttendeeCount != 4 || !first.IsSelfCreated {
			t.Errorf("unexpected first event %+v", first)
		}
		if !second.Start.Equal(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)) || !second.AllDay {
			t.Errorf("all-day date not parsed: %v allDay=%v", second.Start, second.AllDay)
		}
		if first.AllDay {
			t.Error("timed event marked all-day")
		}
	})

	t.Run("degraded", func(t *testing.T) {
		uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult(), Degraded: true}}
		r, sess := setup(uc, nil, 0)

		w := post(r, sess, "/api/analyze", postedEvents)
		if !strings.Contains(w.Body.String(), `"degraded":true`) {
			t.Errorf("expected degraded flag, got %s", w.Body.String())
		}
	})

	t.Run("empty events list is analyzed", func(t *testing.T) {
		uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult()}}
		r, sess := setup(uc, nil, 0)

		w := post(r, sess, "/api/analyze", `{"calendarData":{"events":[]}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.gotInput.Events == nil {
			t.Error("empty list must stay non-nil")
		}
	})
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		useCase  error
		noCookie bool
		want     int
		message  string
	}{
		{name: "not authenticated", body: postedEvents, noCookie: true, want: http.StatusUnauthorized, message: "Not authenticated"},
		{name: "no calendar data", body: `{}`, want: http.StatusBadRequest, message: "No calendar data provided"},
		{name: "no events", body: `{"calendarData":{}}`, want: http.StatusBadRequest, message: "No calendar data provided"},
		{name: "empty body", body: ``, want: http.StatusBadRequest, message: "No calendar data provided"},
		{name: "malformed json", body: `{"calendarData":`, want: http.StatusBadRequest, message: "Invalid request body"},
		{
			name: "bad time",
			body: `{"calendarData":{"events":[{"summary":"x","start":"tomorrow","end":"2024-01-10"}]}}`,
			want: http.StatusBadRequest,
		},
		{
			name:    "model unavailable",
			body:    postedEvents,
			useCase: fmt.Errorf("%w: %w", analysis.ErrUpstreamUnavailable, context.DeadlineExceeded),
			want:    http.StatusBadGateway,
			message: "Failed to analyze calendar data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sess := setup(&fakeAnalysis{err: tt.useCase}, nil, 0)
			if tt.noCookie {
				sess = session.Session{}
			}
			w := post(r, sess, "/api/analyze", tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
			if tt.message != "" && !strings.Contains(w.Body.String(), tt.message) {
				t.Errorf("expected message %q in %s", tt.message, w.Body.String())
			}
		})
	}
}

func TestAnalyzeFetchedCalendar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.New(session.Config{})
	sess := store.Create("jane@example.com", &oauth2.Token{AccessToken: "ya29.x"})
	mw := middleware.New(log.NewNop(), store, middleware.CookieConfig{Name: "sid"}, "http://localhost:3000", 0)

	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	cal := &fakeCalendar{out: calendar.FetchOutput{
		Source: calendar.SourceGoogle,
		From:   start.AddDate(0, 0, -30),
		To:     start,
		Events: []calendar.Event{
			{ID: "e1", Summary: "Team meeting", Start: start, End: start.Add(time.Hour), AttendeeCount: 2, IsSelfCreated: true},
			{ID: "e2", Summary: "Holiday", Start: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), AllDay: true},
		},
	}}
	uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult(), EventCount: 2}}

	r := gin.New()
	calendarHTTP.RegisterRoutes(r.Group("/api/calendar"), calendarHTTP.New(log.NewNop(), cal), mw)
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc, cal, time.UTC), mw)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/fetch", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sess.ID})
	fetched := httptest.NewRecorder()
	r.ServeHTTP(fetched, req)
	if fetched.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200, got %d: %s", fetched.Code, fetched.Body.String())
	}

	// the browser posts the fetch body back unchanged
	w := post(r, sess, "/api/analyze", `{"calendarData":`+fetched.Body.String()+`}`)
	if w.Code != http.StatusOK {
		t.Fatalf("analyze: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if len(uc.gotInput.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(uc.gotInput.Events))
	}
	first, second := uc.gotInput.Events[0], uc.gotInput.Events[1]
	if first.Title != "Team meeting" || !first.Start.Equal(start) || first.AttendeeCount != 2 || !first.IsSelfCreated {
		t.Errorf("unexpected first event %+v", first)
	}
	if !second.Start.Equal(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)) || !second.AllDay {
		t.Errorf("all-day start not round-tripped: %v allDay=%v", second.Start, second.AllDay)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["balanceScore"] != float64(62) {
		t.Errorf("balanceScore not at top level: %v", body)
	}
}

func TestAnalyzeServerSideFetch(t *testing.T) {
	start := time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC)

	t.Run("google", func(t *testing.T) {
		cal := &fakeCalendar{out: calendar.FetchOutput{Events: []calendar.Event{
			{ID: "s1", Summary: "Sleep", Start: start, End: start.Add(8 * time.Hour)},
		}}}
		uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult(), EventCount: 1}}
		r, sess := setup(uc, cal, 0)

		w := post(r, sess, "/api/analyze?source=google", ``)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if cal.got.Source != calendar.SourceGoogle || cal.got.Session.ID != sess.ID {
			t.Errorf("unexpected fetch input %+v", cal.got)
		}
		if len(uc.gotInput.Events) != 1 || uc.gotInput.Events[0].Title != "Sleep" {
			t.Errorf("fetched events not analyzed: %+v", uc.gotInput.Events)
		}
	})

	t.Run("expired google token", func(t *testing.T) {
		cal := &fakeCalendar{err: calendar.ErrUnauthenticated}
		r, sess := setup(&fakeAnalysis{}, cal, 0)

		w := post(r, sess, "/api/analyze?source=google", ``)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		r, sess := setup(&fakeAnalysis{}, &fakeCalendar{}, 0)
		w := post(r, sess, "/api/analyze?source=outlook", ``)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyzeRateLimit(t *testing.T) {
	uc := &fakeAnalysis{out: analysis.AnalyzeOutput{Result: sampleResult()}}
	r, sess := setup(uc, nil, 1)

	if w := post(r, sess, "/api/analyze", postedEvents); w.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", w.Code)
	}
	if w := post(r, sess, "/api/analyze", postedEvents); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: expected 429, got %d", w.Code)
	}
	if uc.calls != 1 {
		t.Errorf("rate-limited call reached the use case (%d calls)", uc.calls)
	}
}
