package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestDefaultSecurityConfig(t *testing.T) {
	cfg := DefaultSecurityConfig()

	if !cfg.EnableCORS {
		t.Error("CORS should be enabled by default")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.MaxTerms != 1000 {
		t.Errorf("MaxTerms = %d, want 1000", cfg.MaxTerms)
	}
}

func TestSecurityMiddleware_Headers(t *testing.T) {
	handler := SecurityMiddleware(DefaultSecurityConfig(), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sequence", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	wantHeaders := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"X-XSS-Protection":        "1; mode=block",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	}
	for name, want := range wantHeaders {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("header %s = %q, want %q", name, got, want)
		}
	}
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	t.Run("wildcard origin", func(t *testing.T) {
		handler := SecurityMiddleware(DefaultSecurityConfig(), okHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sequence", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("specific origin allowed", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.AllowedOrigins = []string{"https://example.com"}
		handler := SecurityMiddleware(cfg, okHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sequence", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
		}
		if got := rec.Header().Get("Vary"); got != "Origin" {
			t.Errorf("Vary = %q, want Origin", got)
		}
	})

	t.Run("origin not allowed", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.AllowedOrigins = []string{"https://example.com"}
		handler := SecurityMiddleware(cfg, okHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sequence", nil)
		req.Header.Set("Origin", "https://evil.test")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("CORS disabled", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.EnableCORS = false
		handler := SecurityMiddleware(cfg, okHandler)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sequence", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty when disabled", got)
		}
	})
}

func TestSecurityMiddleware_PreflightShortCircuits(t *testing.T) {
	called := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sequence", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if called {
		t.Error("preflight should not reach the wrapped handler")
	}
}
