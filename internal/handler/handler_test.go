package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_Hello(t *testing.T) {
	t.Parallel()

	h := New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Hello(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Hello from Alimenta!" {
		t.Errorf("message = %q", body["message"])
	}
	if body["version"] == "" {
		t.Error("version missing from banner")
	}
}

func TestHandler_Fallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		serve       func(h *Handler, w http.ResponseWriter, r *http.Request)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			serve:       func(h *Handler, w http.ResponseWriter, r *http.Request) { h.NotFound(w, r) },
			wantStatus:  http.StatusNotFound,
			wantMessage: "resource not found",
		},
		{
			name:        "method not allowed",
			serve:       func(h *Handler, w http.ResponseWriter, r *http.Request) { h.MethodNotAllowed(w, r) },
			wantStatus:  http.StatusMethodNotAllowed,
			wantMessage: "method not allowed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := New()
			req := httptest.NewRequest(http.MethodGet, "/whatever", nil)
			rec := httptest.NewRecorder()

			tt.serve(h, rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}
