package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"interviewdeck/internal/config"
	"interviewdeck/internal/models"
)

func testConfig(searchURL, execURL string) *config.Config {
	return &config.Config{
		Port:                 "0",
		SearchServiceURL:     searchURL,
		ExecutionServiceURL:  execURL,
		SessionTTL:           time.Hour,
		SessionSweepSchedule: "@every 1h",
		InsightsCacheSize:    4,
		DashboardPath:        "/dashboard",
		CORSAllowedOrigins:   []string{"http://localhost:5173"},
	}
}

func TestBuildAppServesHealthAndMetrics(t *testing.T) {
	a, err := buildApp(testConfig("http://localhost:1", "http://localhost:1"), zap.NewNop())
	if err != nil {
		t.Fatalf("buildApp: %v", err)
	}

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestBuildAppSearchesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/problems" || r.URL.Query().Get("company") != "Acme" {
			t.Fatalf("unexpected upstream request: %s", r.URL.String())
		}
		_ = json.NewEncoder(w).Encode([]models.Question{{Title: "Two Sum"}})
	}))
	defer upstream.Close()

	a, err := buildApp(testConfig(upstream.URL, upstream.URL), zap.NewNop())
	if err != nil {
		t.Fatalf("buildApp: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", jsonBody(`{"company":"Acme"}`))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var resp models.SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Dispatched || resp.Total != 1 {
		t.Fatalf("unexpected search response: %#v", resp)
	}
	if rec.Header().Get("X-Session-ID") == "" {
		t.Fatalf("expected session header")
	}
}

func TestBuildAppRejectsBadCacheSize(t *testing.T) {
	cfg := testConfig("http://localhost:1", "http://localhost:1")
	cfg.InsightsCacheSize = 0
	if _, err := buildApp(cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for zero cache size")
	}
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}
