package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const compatibilityNamespace = "compat:v1"

// CompatibilityCache stores computed results per unordered user pair.
type CompatibilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCompatibilityCache(client *redis.Client, ttl time.Duration) *CompatibilityCache {
	return &CompatibilityCache{client: client, ttl: ttl}
}

// CompatibilityKey is symmetric in the two users.
func CompatibilityKey(mode string, userA, userB int) string {
	a, b := domain.Canonicalize(userA, userB)
	return fmt.Sprintf("%s:%s:%d:%d", compatibilityNamespace, mode, a, b)
}

// Get returns nil without error on a miss.
func (c *CompatibilityCache) Get(ctx context.Context, mode string, userA, userB int) (*domain.CompatibilityResult, error) {
	data, err := c.client.Get(ctx, CompatibilityKey(mode, userA, userB)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var res domain.CompatibilityResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &res, nil
}

func (c *CompatibilityCache) Set(ctx context.Context, mode string, userA, userB int, res *domain.CompatibilityResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return c.client.Set(ctx, CompatibilityKey(mode, userA, userB), data, c.ttl).Err()
}

// InvalidateUser drops every cached pair involving userID. Used after a
// profile update.
func (c *CompatibilityCache) InvalidateUser(ctx context.Context, userID int) error {
	patterns := []string{
		fmt.Sprintf("%s:*:%d:*", compatibilityNamespace, userID),
		fmt.Sprintf("%s:*:*:%d", compatibilityNamespace, userID),
	}
	for _, pattern := range patterns {
		iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del failed: %w", err)
			}
		}
	}
	return nil
}
