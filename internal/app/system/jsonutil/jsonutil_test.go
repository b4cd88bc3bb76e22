package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "200 OK with data",
			status:     http.StatusOK,
			data:       map[string]string{"status": "ok"},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "503 with data",
			status:     http.StatusServiceUnavailable,
			data:       map[string]string{"status": "degraded"},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"degraded"}`,
		},
		{
			name:       "nil data",
			status:     http.StatusOK,
			data:       nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.status, tt.data)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", cc)
			}
			body := strings.TrimSpace(rec.Body.String())
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestOKAndUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"status": "alive"})
	if rec.Code != http.StatusOK {
		t.Errorf("OK status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	Unavailable(rec, map[string]string{"status": "not ready"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Unavailable status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"status":"not ready"}` {
		t.Errorf("body = %q", body)
	}
}
