package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func corsHandler(origins ...string) http.Handler {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = origins
	return CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS_OriginWhitelist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		origins     []string
		origin      string
		method      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:       "no origins configured refuses everything",
			origins:    nil,
			origin:     "https://app.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "whitelisted origin is echoed",
			origins:     []string{"https://app.example.com"},
			origin:      "https://app.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: "https://app.example.com",
		},
		{
			name:        "origin match ignores case",
			origins:     []string{"HTTPS://APP.EXAMPLE.COM"},
			origin:      "https://app.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: "https://app.example.com",
		},
		{
			name:       "unlisted origin passes through without headers",
			origins:    []string{"https://app.example.com"},
			origin:     "https://evil.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unlisted origin preflight is refused",
			origins:    []string{"https://app.example.com"},
			origin:     "https://evil.example.com",
			method:     http.MethodOptions,
			wantStatus: http.StatusForbidden,
		},
		{
			name:        "whitelisted preflight short-circuits with 204",
			origins:     []string{"https://app.example.com"},
			origin:      "https://app.example.com",
			method:      http.MethodOptions,
			wantStatus:  http.StatusNoContent,
			wantAllowed: "https://app.example.com",
		},
		{
			name:       "same-origin request skips negotiation",
			origins:    []string{"https://app.example.com"},
			origin:     "",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/api/alimentos", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			corsHandler(tt.origins...).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowed)
			}
		})
	}
}

func TestCORS_PreflightHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/api/auth", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()

	corsHandler("https://app.example.com").ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Access-Control-Allow-Methods not set on preflight")
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("Access-Control-Allow-Headers not set on preflight")
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("Access-Control-Max-Age = %q, want %q", got, "86400")
	}
}

func TestCORS_AuthorizationHeaderAllowed(t *testing.T) {
	t.Parallel()

	// The food lookup needs the Authorization header cross-origin.
	req := httptest.NewRequest(http.MethodOptions, "/api/alimentos", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()

	corsHandler("https://app.example.com").ServeHTTP(rec, req)

	allowHeaders := rec.Header().Get("Access-Control-Allow-Headers")
	found := false
	for _, name := range strings.Split(allowHeaders, ",") {
		if strings.TrimSpace(name) == "Authorization" {
			found = true
		}
	}
	if !found {
		t.Errorf("Access-Control-Allow-Headers = %q, want Authorization included", allowHeaders)
	}
}
