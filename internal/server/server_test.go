package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/db"
	"github.com/elisdimitrova/psysite/internal/logging"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(cfg, database, logging.Discard())
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, config.ServerConfig{})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestHealthCheckDegradedWhenDatabaseClosed(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	srv := New(config.ServerConfig{}, database, logging.Discard())
	database.Close()

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, config.ServerConfig{AllowAllOrigins: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "images", "avatar.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := newTestServer(t, config.ServerConfig{StaticDir: dir})
	srv.MountStatic()

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/images/avatar.jpg", nil))
	if w.Code != http.StatusOK || w.Body.String() != "jpeg" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/images/missing.jpg", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMountStaticMissingDir(t *testing.T) {
	var buf bytes.Buffer
	database, _ := db.OpenMemory()
	defer database.Close()
	srv := New(config.ServerConfig{StaticDir: filepath.Join(t.TempDir(), "nope")}, database, logging.NewWithWriter(&buf, false))
	srv.MountStatic()

	if !strings.Contains(buf.String(), "static directory not found") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	srv := New(config.ServerConfig{}, nil, logging.NewWithWriter(&buf, false))

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

	out := buf.String()
	if !strings.Contains(out, "status=404") || !strings.Contains(out, "path=/missing") {
		t.Errorf("expected structured request line, got %q", out)
	}
}
