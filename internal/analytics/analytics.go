// Package analytics supplies per-user analytics summaries for reports.
package analytics

import "context"

// DefaultPlaceholder is the summary returned by Stub when none is configured.
const DefaultPlaceholder = "Sample analytics data"

// Provider returns an analytics summary for a user.
type Provider interface {
	GetUserAnalytics(ctx context.Context, userID int64) (string, error)
}

// Stub is a Provider that returns the same placeholder for every user.
type Stub struct {
	placeholder string
}

// NewStub creates a Stub. An empty placeholder falls back to DefaultPlaceholder.
func NewStub(placeholder string) *Stub {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Stub{placeholder: placeholder}
}

// GetUserAnalytics returns the placeholder regardless of userID.
func (s *Stub) GetUserAnalytics(ctx context.Context, userID int64) (string, error) {
	return s.placeholder, nil
}
