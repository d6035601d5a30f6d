package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantEcho bool
	}{
		{"no header generates one", "", false},
		{"valid uuid is honored", "0b84dbe3-85b9-453a-a4f4-9967b0f0b0ab", true},
		{"non-uuid is replaced", "../../etc/passwd", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromCtx string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/alimentos", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			echoed := rec.Header().Get(RequestIDHeader)
			if echoed != fromCtx {
				t.Errorf("response header %q does not match context value %q", echoed, fromCtx)
			}
			if _, err := uuid.Parse(echoed); err != nil {
				t.Errorf("request ID %q is not a UUID", echoed)
			}
			if tt.wantEcho && echoed != tt.header {
				t.Errorf("valid client ID %q was replaced with %q", tt.header, echoed)
			}
			if !tt.wantEcho && tt.header != "" && echoed == tt.header {
				t.Errorf("invalid client ID %q was not replaced", tt.header)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID without middleware = %q, want empty", got)
	}
}
