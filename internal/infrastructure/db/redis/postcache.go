package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cyberforum/forum-api/internal/core/domain"
)

const (
	recentPostsKey = "forum:posts:recent"
	// cacheTTL bounds staleness even if an invalidation is lost. Clients
	// refetch after their own mutations, so this only affects other readers.
	cacheTTL = 30 * time.Second
)

// PostCache caches the recent-posts list as a single JSON blob. It is
// advisory: every failure is reported to the caller, which treats it as a
// miss.
type PostCache struct {
	client *redis.Client
}

// NewPostCache creates a PostCache wrapping the given Redis client.
func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client}
}

// Get returns the cached list, with ok=false on a clean miss.
func (c *PostCache) Get(ctx context.Context) ([]domain.Post, bool, error) {
	raw, err := c.client.Get(ctx, recentPostsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("post cache get: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false, fmt.Errorf("post cache decode: %w", err)
	}
	return posts, true, nil
}

// Set stores the list snapshot with the cache TTL.
func (c *PostCache) Set(ctx context.Context, posts []domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("post cache encode: %w", err)
	}
	if err := c.client.Set(ctx, recentPostsKey, raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("post cache set: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot; called after every post or reply mutation.
func (c *PostCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, recentPostsKey).Err(); err != nil {
		return fmt.Errorf("post cache invalidate: %w", err)
	}
	return nil
}
