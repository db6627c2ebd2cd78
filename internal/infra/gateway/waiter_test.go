package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"waiter/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/waiter/profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"name": "Nadia", "completedOrdersCount": "12", "attendanceDates": ["2026-10-01", 5, "2026-10-02"]}`)
	})
	fx := newTestClient(t, mux, entity.Session{Token: "tok"})

	profile, err := fx.client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nadia", profile.Name)
	assert.Equal(t, 12, profile.CompletedOrdersCount)
	// Non-date entries pass through; the calendar ignores them later.
	assert.Equal(t, []string{"2026-10-01", "5", "2026-10-02"}, profile.AttendanceDates)
}

func TestClient_MarkAttendanceToday(t *testing.T) {
	tests := []struct {
		name      string
		stationID string
		wantBody  string
	}{
		{"without station", "", ""},
		{"with station", "front-desk", `{"stationId":"front-desk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /api/waiter/attendance/mark-today", func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
				writeJSON(w, http.StatusOK, `{"success": true}`)
			})
			fx := newTestClient(t, mux, entity.Session{Token: "tok"})

			require.NoError(t, fx.client.MarkAttendanceToday(context.Background(), tt.stationID))
		})
	}
}

func TestClient_GetSettings(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantLogo string
	}{
		{"name", `{"data": {"name": "Spice Route", "logoUrl": "https://cdn/logo.png"}}`, "Spice Route", "https://cdn/logo.png"},
		{"restaurantName", `{"restaurantName": "Spice Route"}`, "Spice Route", ""},
		{"title", `{"title": "Spice Route"}`, "Spice Route", ""},
		{"nothing", `{}`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			fx := newTestClient(t, handler, entity.Session{})

			settings, err := fx.client.GetSettings(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, settings.Name)
			assert.Equal(t, tt.wantLogo, settings.LogoURL)
		})
	}
}

func TestClient_ReportIssue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/restaurant/report-issue", func(w http.ResponseWriter, r *http.Request) {
		var report entity.IssueReport
		require.NoError(t, json.NewDecoder(r.Body).Decode(&report))
		assert.Equal(t, entity.IssueSource, report.Source)
		assert.Equal(t, "Nadia", report.WaiterName)
		writeJSON(w, http.StatusOK, `{}`)
	})
	fx := newTestClient(t, mux, entity.Session{Token: "tok"})

	err := fx.client.ReportIssue(context.Background(), entity.IssueReport{WaiterName: "Nadia", Source: entity.IssueSource})
	require.NoError(t, err)
}
