package bootstrap

import (
	"context"
	"log/slog"

	"turnera/internal/infra/cache"
	"turnera/internal/pkg/config"
	"turnera/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewProviderCache,
	),
)

// NewProviderCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewProviderCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) queries.ProviderCache {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis未設定のためプロバイダーキャッシュを無効化します")
		return cache.NoopProviderCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Redis being down only disables caching.
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redisに接続できません。キャッシュなしで続行します", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisProviderCache(client, cfg.Redis.TTL)
}
