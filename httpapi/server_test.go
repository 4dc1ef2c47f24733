package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/content"
	"pkt.systems/termfolio/schema"
)

type brokenProjectsRepo struct {
	*content.MemStore
}

func (brokenProjectsRepo) Projects(context.Context) ([]schema.Project, error) {
	return nil, errors.New("database unavailable")
}

func newTestHandler(t *testing.T, repo content.Repository, basePath string) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	svc, err := core.NewService(ctx, schema.ServiceConfig{DisableAuditLogging: true}, core.ServiceDeps{Repository: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	waitCtx, waitCancel := context.WithTimeout(ctx, 5*time.Second)
	defer waitCancel()
	if err := svc.WaitReady(waitCtx); err != nil {
		t.Fatalf("wait ready: %v", err)
	}
	return NewServer(Config{BasePath: basePath}, svc).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestContentRoutes(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "")

	var projects []schema.Project
	rec := doRequest(t, handler, http.MethodGet, "/api/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("projects status %d", rec.Code)
	}
	decodeBody(t, rec, &projects)
	if len(projects) != len(content.Default().Projects) {
		t.Fatalf("expected %d projects, got %d", len(content.Default().Projects), len(projects))
	}

	var stats schema.Stats
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/api/stats", ""), &stats)
	if stats.ProblemsSolved != 300 || stats.Skills.ProblemSolving != 90 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	var quote schema.MotivationQuote
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/api/motivation", ""), &quote)
	if quote.Quote == "" {
		t.Fatalf("expected a quote")
	}

	var quotes []schema.MotivationQuote
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/api/motivation/quotes", ""), &quotes)
	if len(quotes) != len(content.Default().MotivationQuotes) {
		t.Fatalf("expected every quote, got %d", len(quotes))
	}

	for _, path := range []string{"/api/profile", "/api/skills", "/api/achievements", "/api/social-links"} {
		if rec := doRequest(t, handler, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s status %d", path, rec.Code)
		}
	}
}

func TestContentRouteFailure(t *testing.T) {
	handler := newTestHandler(t, brokenProjectsRepo{MemStore: content.NewDefaultStore()}, "")
	rec := doRequest(t, handler, http.MethodGet, "/api/projects", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Failed to fetch projects" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestEmptyQuotesIsNotFound(t *testing.T) {
	p := content.Default()
	p.MotivationQuotes = []schema.MotivationQuote{}
	handler := newTestHandler(t, content.NewMemStore(p), "")
	rec := doRequest(t, handler, http.MethodGet, "/api/motivation", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestExecRoute(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "")

	rec := doRequest(t, handler, http.MethodPost, "/api/terminal/exec", `{"line":"theme","theme":"neon-green"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("exec status %d: %s", rec.Code, rec.Body.String())
	}
	var resp schema.ExecResponse
	decodeBody(t, rec, &resp)
	if resp.Theme != schema.ThemeMatrixBlue {
		t.Fatalf("expected matrix-blue, got %q", resp.Theme)
	}
	if resp.Response.Type != schema.ResponseText || !strings.Contains(resp.Response.Text, "MATRIX BLUE") {
		t.Fatalf("unexpected response: %+v", resp.Response)
	}

	rec = doRequest(t, handler, http.MethodPost, "/api/terminal/exec", `{"line":"cd nowhere"}`)
	decodeBody(t, rec, &resp)
	if resp.Response.Type != schema.ResponseError {
		t.Fatalf("expected an error response, got %+v", resp.Response)
	}
}

func TestExecRouteRejectsBadRequests(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "")
	cases := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{name: "empty line", method: http.MethodPost, body: `{"line":"   "}`, status: http.StatusBadRequest},
		{name: "unknown theme", method: http.MethodPost, body: `{"line":"help","theme":"sepia"}`, status: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, body: `{"line":`, status: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, body: `{"line":"help","extra":1}`, status: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodGet, status: http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, handler, tc.method, "/api/terminal/exec", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
			var body map[string]string
			decodeBody(t, rec, &body)
			if body["error"] == "" {
				t.Fatalf("expected error message")
			}
		})
	}
}

func TestCompleteThemesAndHealth(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "/portfolio")

	var complete schema.CompleteResponse
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/portfolio/api/terminal/complete?prefix=s", ""), &complete)
	if strings.Join(complete.Suggestions, ",") != "stats,sudo" {
		t.Fatalf("unexpected suggestions: %v", complete.Suggestions)
	}

	var themes schema.ThemesResponse
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/portfolio/api/themes", ""), &themes)
	if len(themes.Themes) != 3 || themes.Default != schema.DefaultTheme {
		t.Fatalf("unexpected themes: %+v", themes)
	}

	var health schema.HealthResponse
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/portfolio/healthz", ""), &health)
	if health.Status != "ok" || !health.Ready[schema.CollectionProjects] {
		t.Fatalf("unexpected health: %+v", health)
	}
}

func TestHealthDegradedWhenCollectionFails(t *testing.T) {
	handler := newTestHandler(t, brokenProjectsRepo{MemStore: content.NewDefaultStore()}, "")
	var health schema.HealthResponse
	decodeBody(t, doRequest(t, handler, http.MethodGet, "/healthz", ""), &health)
	if health.Status != "degraded" || health.Ready[schema.CollectionProjects] {
		t.Fatalf("unexpected health: %+v", health)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "")
	rec := doRequest(t, handler, http.MethodGet, "/api/themes", "")
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	handler := newTestHandler(t, content.NewDefaultStore(), "")
	rec := doRequest(t, handler, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}
