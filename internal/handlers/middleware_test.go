package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heater_sizing/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestRequestID(t *testing.T) {
	r := newTestRouter(&service.Service{})

	cases := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when missing", "", false},
		{"client value kept", "abc-123", true},
		{"oversized replaced", strings.Repeat("a", maxRequestIDLen+1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tc.header != "" {
				req.Header.Set(requestIDHeader, tc.header)
			}
			r.ServeHTTP(w, req)
			got := w.Header().Get(requestIDHeader)
			if tc.keep && got != tc.header {
				t.Fatalf("expected %q, got %q", tc.header, got)
			}
			if !tc.keep && len(got) != 36 {
				t.Fatalf("expected generated uuid, got %q", got)
			}
		})
	}
}

func TestIPRateLimiter_PerIP(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 2)
	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatalf("burst of 2 should pass")
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("third request should be limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("other IPs have their own bucket")
	}
}

func TestRateLimit_OnlyAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(realService(), nil, Options{RateLimitEnabled: true, RateLimitRPS: 0.001, RateLimitBurst: 1})
	r := h.InitRoutes()

	do := func(path string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "192.0.2.10:5555"
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("/api/v1/catalog"); code != http.StatusOK {
		t.Fatalf("first call: %d", code)
	}
	if code := do("/api/v1/catalog"); code != http.StatusTooManyRequests {
		t.Fatalf("second call: %d, want 429", code)
	}
	if code := do("/health"); code != http.StatusOK {
		t.Fatalf("health must not be limited: %d", code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(realService(), nil, Options{AllowedOrigins: []string{"https://heater.example"}})
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluate", nil)
	req.Header.Set("Origin", "https://heater.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://heater.example" {
		t.Fatalf("unexpected allow origin %q (status %d)", got, w.Code)
	}
}
