package service

import (
	"context"
	"fmt"

	"github.com/userreport/userreport/internal/analytics"
	"github.com/userreport/userreport/internal/model"
)

// UserGetter looks up a user by ID.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// ReportService composes per-user text reports.
type ReportService struct {
	users     UserGetter
	analytics analytics.Provider
}

// NewReportService creates a new ReportService.
func NewReportService(users UserGetter, provider analytics.Provider) *ReportService {
	return &ReportService{
		users:     users,
		analytics: provider,
	}
}

// GenerateUserReport returns "Report for {name}: {analytics}" for the user.
// Lookup errors, including ErrUserNotFound, are returned unchanged.
func (s *ReportService) GenerateUserReport(ctx context.Context, id int64) (string, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return "", err
	}

	summary, err := s.analytics.GetUserAnalytics(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get analytics for user %d: %w", id, err)
	}

	return formatReport(user.Name, summary), nil
}

func formatReport(name, summary string) string {
	return fmt.Sprintf("Report for %s: %s", name, summary)
}
