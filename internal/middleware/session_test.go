package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"interviewdeck/internal/playground"
	"interviewdeck/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	starters, err := playground.LoadStarters()
	if err != nil {
		t.Fatalf("load starters: %v", err)
	}
	orch := playground.NewOrchestrator(nil, starters, zap.NewNop())
	return session.NewStore(time.Hour, orch.NewWorkspace, zap.NewNop())
}

func TestSessionMiddlewareCreatesAndReuses(t *testing.T) {
	store := newStore(t)
	var seen *session.Session
	handler := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	id := rec.Header().Get(SessionHeader)
	if id == "" || seen == nil || seen.ID != id {
		t.Fatalf("expected new session echoed in header, got %q", id)
	}
	first := seen

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, id)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != first {
		t.Fatalf("expected the same session to be reused")
	}
	if store.Len() != 1 {
		t.Fatalf("expected one session, got %d", store.Len())
	}
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	if GetSession(httptest.NewRequest(http.MethodGet, "/", nil)) != nil {
		t.Fatalf("expected nil session")
	}
}
