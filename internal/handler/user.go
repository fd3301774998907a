package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/userreport/userreport/internal/handler/dto"
	"github.com/userreport/userreport/internal/middleware"
	"github.com/userreport/userreport/internal/model"
	"github.com/userreport/userreport/internal/service"
)

// UserGetter looks up users for the HTTP layer.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	svc    UserGetter
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserGetter, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger.With("component", "handler.user"),
	}
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IntParamFromContext(r.Context(), "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "User ID must be an integer")
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
