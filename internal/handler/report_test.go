package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/userreport/userreport/internal/handler/dto"
	"github.com/userreport/userreport/internal/middleware"
	"github.com/userreport/userreport/internal/service"
)

// fakeReportService produces "Report for user-{id}" for known IDs.
type fakeReportService struct {
	known map[int64]bool
	err   error
}

func (f *fakeReportService) GenerateUserReport(ctx context.Context, id int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if !f.known[id] {
		return "", service.ErrUserNotFound
	}
	return fmt.Sprintf("Report for user-%d", id), nil
}

func newReportRouter(svc ReportGenerator) http.Handler {
	h := NewReportHandler(svc, testLogger())
	r := chi.NewRouter()
	r.With(middleware.IntParam("id")).Get("/users/{id}/report", h.Get)
	return r
}

func TestReportHandler_Get(t *testing.T) {
	router := newReportRouter(&fakeReportService{known: map[int64]bool{7: true}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/7/report", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response dto.ReportResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.UserID != 7 {
		t.Errorf("user_id = %d, want 7", response.UserID)
	}
	if response.Report != "Report for user-7" {
		t.Errorf("report = %q", response.Report)
	}
}

func TestReportHandler_Get_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeReportService
		path       string
		wantStatus int
		wantCode   string
	}{
		{"not found", &fakeReportService{}, "/users/999/report", http.StatusNotFound, "USER_NOT_FOUND"},
		{"internal", &fakeReportService{err: errors.New("analytics down")}, "/users/1/report", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"bad id", &fakeReportService{}, "/users/abc/report", http.StatusBadRequest, "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newReportRouter(tt.svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", response.Code, tt.wantCode)
			}
		})
	}
}
