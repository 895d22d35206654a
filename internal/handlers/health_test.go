package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codecard/internal/startup"
)

func TestHealthCheck(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if response.Status != statusHealthy {
		t.Errorf("Status = %q, want %q", response.Status, statusHealthy)
	}
	if !response.HistoryEnabled {
		t.Error("HistoryEnabled should be true with a live database")
	}
	if response.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
}

func TestHealthCheckDegradedWithoutDatabase(t *testing.T) {
	h := newTestHandlers(t)
	h.db = nil

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if response.Status != statusDegraded {
		t.Errorf("Status = %q, want %q", response.Status, statusDegraded)
	}
	if response.HistoryEnabled {
		t.Error("HistoryEnabled should be false without a database")
	}
}

func TestLivenessCheck(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/livez", nil)
	rec := httptest.NewRecorder()
	h.LivenessCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	// HEAD requests get headers only.
	req = httptest.NewRequest("HEAD", "/livez", nil)
	rec = httptest.NewRecorder()
	h.LivenessCheck(rec, req)

	if rec.Body.Len() != 0 {
		t.Error("HEAD response should have no body")
	}
}

func TestReadinessCheck(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/readyz", nil)
	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetVersion(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()
	h.GetVersion(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var info startup.BuildInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode version response: %v", err)
	}
	if info.Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestMetricsHandler(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	h.MetricsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
