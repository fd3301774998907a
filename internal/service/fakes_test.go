package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/userreport/userreport/internal/cache"
	"github.com/userreport/userreport/internal/model"
	"github.com/userreport/userreport/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is a UserStore backed by a map.
type fakeStore struct {
	users map[int64]model.User
	err   error
	calls int
}

func newFakeStore(users ...model.User) *fakeStore {
	s := &fakeStore{users: make(map[int64]model.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

// fakeCache is a UserCache backed by maps. readErr and writeErr simulate an
// unavailable Redis.
type fakeCache struct {
	users    map[int64]model.User
	negative map[int64]bool
	readErr  error
	writeErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		users:    make(map[int64]model.User),
		negative: make(map[int64]bool),
	}
}

func (c *fakeCache) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	u, ok := c.users[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return &u, nil
}

func (c *fakeCache) SetUser(ctx context.Context, user *model.User) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.users[user.ID] = *user
	delete(c.negative, user.ID)
	return nil
}

func (c *fakeCache) IsNegativelyCached(ctx context.Context, id int64) (bool, error) {
	if c.readErr != nil {
		return false, c.readErr
	}
	return c.negative[id], nil
}

func (c *fakeCache) SetNegativeCache(ctx context.Context, id int64) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.negative[id] = true
	return nil
}

// fakeAnalytics is an analytics.Provider with a fixed answer.
type fakeAnalytics struct {
	summary string
	err     error
	calls   int
}

func (a *fakeAnalytics) GetUserAnalytics(ctx context.Context, userID int64) (string, error) {
	a.calls++
	return a.summary, a.err
}
