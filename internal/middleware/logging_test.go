package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveLogged(t *testing.T, handler http.HandlerFunc, mutate func(*http.Request)) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/alimentos", nil)
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	Logger(logger)(handler).ServeHTTP(rec, req)

	return buf.String()
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// TestLogger_NoCredentialLeak ensures bearer tokens and request-body
// passwords never reach the log.
func TestLogger_NoCredentialLeak(t *testing.T) {
	t.Parallel()

	const token = "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6NDJ9.c2lnbmF0dXJl"

	out := serveLogged(t, okHandler, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
		r.Body = io.NopCloser(strings.NewReader(`{"email":"maria@example.com","password":"hunter2-secret"}`))
	})

	for _, secret := range []string{token, "Bearer", "hunter2-secret"} {
		if strings.Contains(out, secret) {
			t.Errorf("log output contains %q", secret)
		}
	}
}

func TestLogger_RequestLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"user registered"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/usuario", nil)
	req.Header.Set("User-Agent", "TestBrowser/2.0")
	rec := httptest.NewRecorder()
	Logger(logger)(handler).ServeHTTP(rec, req)

	out := buf.String()
	for _, field := range []string{
		`"method":"POST"`,
		`"path":"/api/usuario"`,
		`"status_code":201`,
		`"bytes":29`,
		`"user_agent":"TestBrowser/2.0"`,
	} {
		if !strings.Contains(out, field) {
			t.Errorf("log line missing %s: %s", field, out)
		}
	}
}

// TestLogger_LevelByStatus verifies 4xx log at warn and 5xx at error.
func TestLogger_LevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"unauthorized", http.StatusUnauthorized, "WARN"},
		{"forbidden", http.StatusForbidden, "WARN"},
		{"internal error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)

			if !strings.Contains(out, `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("status %d logged without level %s: %s", tt.status, tt.wantLevel, out)
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("captures status and bytes", func(t *testing.T) {
		t.Parallel()

		rw := wrapResponseWriter(httptest.NewRecorder())
		rw.WriteHeader(http.StatusCreated)
		_, _ = rw.Write([]byte("hello"))

		if rw.status != http.StatusCreated {
			t.Errorf("status = %d, want %d", rw.status, http.StatusCreated)
		}
		if rw.bytes != 5 {
			t.Errorf("bytes = %d, want 5", rw.bytes)
		}
	})

	t.Run("write without header defaults to 200", func(t *testing.T) {
		t.Parallel()

		rw := wrapResponseWriter(httptest.NewRecorder())
		_, _ = rw.Write([]byte("hello"))

		if rw.status != http.StatusOK {
			t.Errorf("status = %d, want %d", rw.status, http.StatusOK)
		}
	})

	t.Run("second WriteHeader is ignored", func(t *testing.T) {
		t.Parallel()

		rw := wrapResponseWriter(httptest.NewRecorder())
		rw.WriteHeader(http.StatusCreated)
		rw.WriteHeader(http.StatusInternalServerError)

		if rw.status != http.StatusCreated {
			t.Errorf("status = %d, want %d", rw.status, http.StatusCreated)
		}
	})
}
