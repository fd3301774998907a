package repository

import (
	"context"
	"sync"

	"github.com/userreport/userreport/internal/model"
)

// DefaultUsers are the fixtures served by the in-memory store when no
// database is configured. They mirror migrations/000002_seed_users.up.sql.
func DefaultUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
}

// MemoryRepository is an in-process user store.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[int64]model.User
}

// NewMemory creates a MemoryRepository holding the given users.
func NewMemory(users ...model.User) *MemoryRepository {
	m := &MemoryRepository{users: make(map[int64]model.User, len(users))}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

// CreateUser adds a user. Returns ErrUserExists if the ID is taken.
func (m *MemoryRepository) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; ok {
		return ErrUserExists
	}
	m.users[user.ID] = *user
	return nil
}

// GetUserByID returns a copy of the stored user.
func (m *MemoryRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Ping always succeeds.
func (m *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}
