package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) Ping(ctx context.Context) error {
	return s.err
}

func TestHealthHandler_Healthz(t *testing.T) {
	t.Parallel()

	// Liveness must not depend on the database at all.
	h := NewHealthHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status field = %q, want ok", body.Status)
	}
}

func TestHealthHandler_Readyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		db           HealthChecker
		wantStatus   int
		wantBody     string
		wantPostgres string
	}{
		{
			name:         "database reachable",
			db:           &stubHealthChecker{},
			wantStatus:   http.StatusOK,
			wantBody:     "ok",
			wantPostgres: "ok",
		},
		{
			name:         "database down",
			db:           &stubHealthChecker{err: errors.New("connection refused")},
			wantStatus:   http.StatusServiceUnavailable,
			wantBody:     "unhealthy",
			wantPostgres: "error: connection refused",
		},
		{
			name:         "database not configured",
			db:           nil,
			wantStatus:   http.StatusOK,
			wantBody:     "ok",
			wantPostgres: "not configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.db)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			rec := httptest.NewRecorder()
			h.Readyz(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Status != tt.wantBody {
				t.Errorf("status field = %q, want %q", body.Status, tt.wantBody)
			}
			if body.Checks["postgres"] != tt.wantPostgres {
				t.Errorf("postgres check = %q, want %q", body.Checks["postgres"], tt.wantPostgres)
			}
		})
	}
}
