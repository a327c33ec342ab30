// Package cache holds the optional Redis front for public provider lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"turnera/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
)

const providerCodePrefix = "provider:code:"

func providerCodeKey(code string) string {
	return providerCodePrefix + code
}

// RedisProviderCache treats every Redis failure as a miss.
type RedisProviderCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProviderCache(client *redis.Client, ttl time.Duration) *RedisProviderCache {
	return &RedisProviderCache{client: client, ttl: ttl}
}

func (c *RedisProviderCache) Get(ctx context.Context, code string) (*queries.ProviderView, bool) {
	raw, err := c.client.Get(ctx, providerCodeKey(code)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("provider cache get failed", "code", code, "error", err.Error())
		}
		return nil, false
	}

	var view queries.ProviderView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("provider cache entry is corrupt", "code", code, "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *RedisProviderCache) Set(ctx context.Context, code string, view *queries.ProviderView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, providerCodeKey(code), raw, c.ttl).Err(); err != nil {
		slog.Warn("provider cache set failed", "code", code, "error", err.Error())
	}
}

func (c *RedisProviderCache) Invalidate(ctx context.Context, codes ...string) {
	if len(codes) == 0 {
		return
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, providerCodeKey(code))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("provider cache invalidate failed", "codes", codes, "error", err.Error())
	}
}

// NoopProviderCache is used when no Redis address is configured.
type NoopProviderCache struct{}

func (NoopProviderCache) Get(context.Context, string) (*queries.ProviderView, bool) { return nil, false }
func (NoopProviderCache) Set(context.Context, string, *queries.ProviderView)       {}
func (NoopProviderCache) Invalidate(context.Context, ...string)                    {}
