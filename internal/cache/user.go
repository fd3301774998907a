package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/userreport/userreport/internal/model"
)

// Cache key prefixes and TTLs.
const (
	userKeyPrefix     = "user:"
	negCacheKeySuffix = ":neg"

	// DefaultUserTTL is the TTL for cached user records.
	DefaultUserTTL = 10 * time.Minute

	// NegativeCacheTTL is the TTL for "user not found" markers.
	NegativeCacheTTL = time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

func negativeUserKey(id int64) string {
	return userKey(id) + negCacheKeySuffix
}

// GetUser retrieves a user from cache by ID.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUser(ctx context.Context, id int64) (*model.User, error) {
	result, err := c.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	name, ok := result["name"]
	if !ok {
		return nil, ErrCacheMiss
	}

	cached := &model.CachedUser{Name: name}
	return cached.ToUser(id), nil
}

// SetUser stores a user in cache and clears any negative entry for it.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	key := userKey(user.ID)
	cached := user.ToCachedUser()

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, "name", cached.Name)
	pipe.Expire(ctx, key, c.userTTL)
	pipe.Del(ctx, negativeUserKey(user.ID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}

	return nil
}

// DeleteUser removes a user and its negative entry from cache.
func (c *Cache) DeleteUser(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, userKey(id), negativeUserKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}
	return nil
}

// IsNegativelyCached checks if a user ID is marked as not found.
func (c *Cache) IsNegativelyCached(ctx context.Context, id int64) (bool, error) {
	exists, err := c.client.Exists(ctx, negativeUserKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks a user ID as not found.
func (c *Cache) SetNegativeCache(ctx context.Context, id int64) error {
	err := c.client.SetEx(ctx, negativeUserKey(id), "", c.negativeTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}
