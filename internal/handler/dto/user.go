// Package dto provides Data Transfer Objects for API responses.
package dto

import "github.com/userreport/userreport/internal/model"

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReportResponse carries a generated user report.
type ReportResponse struct {
	UserID int64  `json:"user_id"`
	Report string `json:"report"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to its response DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:   user.ID,
		Name: user.Name,
	}
}
