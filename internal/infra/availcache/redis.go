package availcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache holds the month availability index per (professional, month)
// key. The TTL is short: availability changes under other clients' feet, and
// a month switch produces a different key so nothing needs invalidating.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]string, bool) {
	data, err := c.client.Get(ctx, "booking:avail:"+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("availability cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(data), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (c *RedisCache) Set(ctx context.Context, key string, dates []string) {
	data, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "booking:avail:"+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}
