package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/userreport/userreport/internal/handler/dto"
	"github.com/userreport/userreport/internal/middleware"
)

// ReportGenerator composes user reports.
type ReportGenerator interface {
	GenerateUserReport(ctx context.Context, id int64) (string, error)
}

// ReportHandler handles HTTP requests for user reports.
type ReportHandler struct {
	svc    ReportGenerator
	logger *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc ReportGenerator, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		svc:    svc,
		logger: logger.With("component", "handler.report"),
	}
}

// Get handles GET /users/{id}/report.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IntParamFromContext(r.Context(), "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be an integer")
		return
	}

	report, err := h.svc.GenerateUserReport(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportResponse{
		UserID: id,
		Report: report,
	})
}
