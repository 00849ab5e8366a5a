package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const menuSnapshotKey = "menu:snapshot"

type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

// GetSnapshot returns nil, nil on a cache miss.
func (c *RedisMenuCache) GetSnapshot(ctx context.Context) (*domain.MenuSnapshot, error) {
	raw, err := c.Client.Get(ctx, menuSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot domain.MenuSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *RedisMenuCache) SetSnapshot(ctx context.Context, snapshot *domain.MenuSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuSnapshotKey, payload, c.TTL).Err()
}
