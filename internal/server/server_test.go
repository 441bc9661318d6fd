package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type pingFeature struct{}

func (pingFeature) RegisterRoutes(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0})

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

func TestFeaturesAreMounted(t *testing.T) {
	srv := New(Config{}, pingFeature{})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Errorf("expected pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestCORSRestrictedByDefault(t *testing.T) {
	srv := New(Config{Port: 0})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no Allow-Origin for foreign origin, got %q", got)
	}
}

func TestConfigAddresses(t *testing.T) {
	tests := []struct {
		cfg  Config
		addr string
		url  string
	}{
		{Config{Port: 8503}, ":8503", "http://localhost:8503"},
		{Config{Host: "127.0.0.1", Port: 8504}, "127.0.0.1:8504", "http://127.0.0.1:8504"},
		{Config{Host: "0.0.0.0", Port: 8503}, "0.0.0.0:8503", "http://localhost:8503"},
	}
	for _, tt := range tests {
		if got := tt.cfg.Addr(); got != tt.addr {
			t.Errorf("Addr() = %q, want %q", got, tt.addr)
		}
		if got := tt.cfg.URL(); got != tt.url {
			t.Errorf("URL() = %q, want %q", got, tt.url)
		}
	}
}
