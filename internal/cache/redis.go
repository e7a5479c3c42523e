package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vehicle-query-service/internal/model"
)

const keyPrefix = "vehicle-query:"

// QueryCache keeps successful lookup payloads in Redis for a bounded time.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

// Connect parses url and pings the server. An empty url disables caching and
// returns nil, nil.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func Key(plate, identityNumber string) string {
	return keyPrefix + plate + ":" + identityNumber
}

// Get returns the cached payload, or nil when the key is absent or expired.
func (c *QueryCache) Get(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error) {
	raw, err := c.client.Get(ctx, Key(plate, identityNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read query cache: %w", err)
	}

	var payload model.QueryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode cached payload: %w", err)
	}
	return &payload, nil
}

func (c *QueryCache) Set(ctx context.Context, plate, identityNumber string, payload *model.QueryPayload) error {
	if payload == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := c.client.Set(ctx, Key(plate, identityNumber), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write query cache: %w", err)
	}
	return nil
}
