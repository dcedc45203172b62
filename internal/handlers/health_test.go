package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("unavailable") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantState  string
		wantChecks map[string]string
		wantIssues []string
	}{
		{
			name:       "all checks pass",
			checks:     map[string]HealthCheck{"database": ok, "upload_folder": ok},
			wantStatus: http.StatusOK,
			wantState:  "healthy",
			wantChecks: map[string]string{"database": "ok", "upload_folder": "ok"},
		},
		{
			name:       "database down",
			checks:     map[string]HealthCheck{"database": failing, "upload_folder": ok},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
			wantChecks: map[string]string{"database": "error", "upload_folder": "ok"},
			wantIssues: []string{"database_unavailable"},
		},
		{
			name:       "everything down",
			checks:     map[string]HealthCheck{"upload_folder": failing, "database": failing},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
			wantChecks: map[string]string{"database": "error", "upload_folder": "error"},
			wantIssues: []string{"database_unavailable", "upload_folder_unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.checks)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("Status = %v, want %v", resp.Status, tt.wantState)
			}
			if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
				t.Errorf("Timestamp %q not RFC3339: %v", resp.Timestamp, err)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("Checks[%s] = %v, want %v", name, resp.Checks[name], want)
				}
			}
			if len(resp.Issues) != len(tt.wantIssues) {
				t.Fatalf("Issues = %v, want %v", resp.Issues, tt.wantIssues)
			}
			for i := range tt.wantIssues {
				if resp.Issues[i] != tt.wantIssues[i] {
					t.Errorf("Issues[%d] = %v, want %v", i, resp.Issues[i], tt.wantIssues[i])
				}
			}
		})
	}
}

func TestHealthHandler_ChecksHaveDeadline(t *testing.T) {
	var hadDeadline bool
	handler := NewHealthHandler(map[string]HealthCheck{
		"database": func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		},
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if !hadDeadline {
		t.Error("health check context has no deadline")
	}
}
