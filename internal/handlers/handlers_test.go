package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codecard/internal/database"
	"codecard/internal/startup"
)

// newTestHandlers builds a handler set backed by a throwaway SQLite
// database.
func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	dir := t.TempDir()
	db, err := database.New(context.Background(), filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("db.Close() error = %v", err)
		}
	})

	config := &startup.Config{
		DatabaseDir:    dir,
		Port:           "8080",
		MetricsPort:    "9090",
		LandingBaseURL: "http://cards.example.com/",
		StatsInterval:  time.Minute,
		MaxUploadBytes: 10 << 20,
		HistoryEnabled: true,
	}

	return New(db, config)
}

// postForm issues an urlencoded POST against a handler func.
func postForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNGDownload(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	body := rec.Body.Bytes()
	if len(body) < 4 || string(body[:4]) != string(pngMagic) {
		t.Error("response body is not a PNG")
	}
}
