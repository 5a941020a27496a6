package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seeracv/api/internal/catalog"
	"github.com/seeracv/api/internal/services"
)

func testDirectoryService(t *testing.T) services.DirectoryService {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	svc, err := services.NewDirectoryService(services.DirectoryServiceDeps{Catalog: c, ResultCap: 1000})
	if err != nil {
		t.Fatalf("new directory service: %v", err)
	}
	return svc
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(
		WithDirectoryRoutes(NewDirectoryHandlers(testDirectoryService(t)).Routes),
	)
}

func TestRouterHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()

	testRouter(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode healthz payload: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("status = %v, want ok", payload["status"])
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp := httptest.NewRecorder()

	testRouter(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "route_not_found" {
		t.Fatalf("error = %v, want route_not_found", payload["error"])
	}
}

func TestRouterAllowsAnyOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("Origin", "https://example.com")
	resp := httptest.NewRecorder()

	testRouter(t).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
