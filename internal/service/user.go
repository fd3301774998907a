// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/userreport/userreport/internal/cache"
	"github.com/userreport/userreport/internal/model"
	"github.com/userreport/userreport/internal/repository"
)

// Service errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the backing source of user records.
type UserStore interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserCache is a read-through cache in front of a UserStore.
type UserCache interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
	IsNegativelyCached(ctx context.Context, id int64) (bool, error)
	SetNegativeCache(ctx context.Context, id int64) error
}

// UserService handles user lookups.
type UserService struct {
	store  UserStore
	cache  UserCache
	logger *slog.Logger
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(store UserStore, cache UserCache, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		store:  store,
		cache:  cache,
		logger: logger.With("component", "service.user"),
	}
}

// GetUser returns the user with the given ID, or ErrUserNotFound.
// Cache failures are logged and never fail the lookup.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if s.cache != nil {
		user, err := s.cache.GetUser(ctx, id)
		if err == nil {
			return user, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("user cache read failed", "user_id", id, "error", err)
		} else {
			negative, err := s.cache.IsNegativelyCached(ctx, id)
			if err != nil {
				s.logger.Warn("user negative cache read failed", "user_id", id, "error", err)
			} else if negative {
				return nil, ErrUserNotFound
			}
		}
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.setNegative(ctx, id)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}

	s.backfill(ctx, user)

	return user, nil
}

func (s *UserService) backfill(ctx context.Context, user *model.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetUser(ctx, user); err != nil {
		s.logger.Warn("user cache write failed", "user_id", user.ID, "error", err)
	}
}

func (s *UserService) setNegative(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetNegativeCache(ctx, id); err != nil {
		s.logger.Warn("user negative cache write failed", "user_id", id, "error", err)
	}
}
