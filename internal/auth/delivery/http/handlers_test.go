package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"worklife-balance/internal/auth"
	"worklife-balance/internal/middleware"
	"worklife-balance/internal/session"
	"worklife-balance/pkg/log"
)

const testFrontend = "http://localhost:3000"

type fakeUseCase struct {
	sessions    *session.MemoryStore
	callbackErr error
	logoutErr   error
	gotCallback auth.CallbackInput
	gotLogout   string
}

func (f *fakeUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	return auth.LoginOutput{URL: "https://accounts.google.com/o/oauth2/auth?state=st-1", State: "st-1"}, nil
}

func (f *fakeUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	f.gotCallback = input
	if f.callbackErr != nil {
		return auth.CallbackOutput{}, f.callbackErr
	}
	sess := f.sessions.Create("jane@example.com", &oauth2.Token{AccessToken: "ya29.x"})
	return auth.CallbackOutput{SessionID: sess.ID, Email: sess.Email}, nil
}

func (f *fakeUseCase) Logout(ctx context.Context, sessionID string) error {
	f.gotLogout = sessionID
	return f.logoutErr
}

func setupRouter(uc *fakeUseCase, store *session.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), store, middleware.CookieConfig{Name: "sid", MaxAge: 3600}, testFrontend, 0)
	h := New(log.NewNop(), uc, mw, testFrontend)

	r := gin.New()
	RegisterRoutes(r.Group("/api/auth"), h, mw)
	return r
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	store := session.New(session.Config{})
	r := setupRouter(&fakeUseCase{sessions: store}, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/google", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://accounts.google.com/") {
		t.Errorf("unexpected redirect %q", loc)
	}
	c := findCookie(w, stateCookieName)
	if c == nil || c.Value != "st-1" || !c.HttpOnly {
		t.Errorf("state cookie not set correctly: %+v", c)
	}
}

func TestCallback(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		store := session.New(session.Config{})
		uc := &fakeUseCase{sessions: store}
		r := setupRouter(uc, store)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc&state=st-1", nil)
		req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "st-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != testFrontend+"?auth=success" {
			t.Errorf("unexpected redirect %q", loc)
		}
		if uc.gotCallback.Code != "abc" || uc.gotCallback.ExpectedState != "st-1" {
			t.Errorf("unexpected callback input %+v", uc.gotCallback)
		}
		c := findCookie(w, "sid")
		if c == nil || c.Value == "" {
			t.Fatal("expected session cookie")
		}
		if _, ok := store.Get(c.Value); !ok {
			t.Error("session cookie does not reference a live session")
		}
	})

	t.Run("use case failure redirects to connect", func(t *testing.T) {
		store := session.New(session.Config{})
		r := setupRouter(&fakeUseCase{sessions: store, callbackErr: auth.ErrInvalidState}, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=abc&state=bad", nil))

		if loc := w.Header().Get("Location"); loc != testFrontend+"/connect?auth=error" {
			t.Errorf("unexpected redirect %q", loc)
		}
		if findCookie(w, "sid") != nil {
			t.Error("no session cookie expected on failure")
		}
	})

	t.Run("consent denied", func(t *testing.T) {
		store := session.New(session.Config{})
		uc := &fakeUseCase{sessions: store}
		r := setupRouter(uc, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?error=access_denied", nil))

		if loc := w.Header().Get("Location"); loc != testFrontend+"/connect?auth=error" {
			t.Errorf("unexpected redirect %q", loc)
		}
		if uc.gotCallback.Code != "" {
			t.Error("use case should not be called when consent is denied")
		}
	})
}

func TestStatus(t *testing.T) {
	store := session.New(session.Config{})
	r := setupRouter(&fakeUseCase{sessions: store}, store)
	sess := store.Create("jane@example.com", &oauth2.Token{AccessToken: "ya29.x"})

	decode := func(t *testing.T, w *httptest.ResponseRecorder) statusResp {
		t.Helper()
		var body statusResp
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return body
	}

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode(t, w); got.Authenticated || got.Email != "" {
			t.Errorf("unexpected status %+v", got)
		}
	})

	t.Run("signed in", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: sess.ID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := decode(t, w); !got.Authenticated || got.Email != "jane@example.com" {
			t.Errorf("unexpected status %+v", got)
		}
		if strings.Contains(w.Body.String(), `"data"`) {
			t.Errorf("status must be served without the envelope, got %s", w.Body.String())
		}
	})
}

func TestLogout(t *testing.T) {
	t.Run("clears cookie", func(t *testing.T) {
		store := session.New(session.Config{})
		uc := &fakeUseCase{sessions: store}
		r := setupRouter(uc, store)
		sess := store.Create("jane@example.com", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: sess.ID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Logged out successfully") {
			t.Errorf("unexpected body %s", w.Body.String())
		}
		if uc.gotLogout != sess.ID {
			t.Errorf("expected logout of %q, got %q", sess.ID, uc.gotLogout)
		}
		if c := findCookie(w, "sid"); c == nil || c.MaxAge >= 0 {
			t.Errorf("expected expired session cookie, got %+v", c)
		}
	})

	t.Run("failure", func(t *testing.T) {
		store := session.New(session.Config{})
		r := setupRouter(&fakeUseCase{sessions: store, logoutErr: errors.New("boom")}, store)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Could not log out") {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}
