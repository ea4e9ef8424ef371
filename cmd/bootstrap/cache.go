package bootstrap

import (
	"context"
	"log/slog"

	"petstore-backend/internal/infra/cache"
	"petstore-backend/internal/pkg/config"
	"petstore-backend/internal/usecase"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCategoryCache,
	),
)

// NewCategoryCache falls back to a cache that always misses when REDIS_ADDR is unset.
func NewCategoryCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.CategoryCache {
	if !cfg.Redis.Enabled() {
		logger.Info("Category cache disabled")
		return cache.NopCategoryCache{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				// reads fall through to the database
				logger.Warn("Redis is unreachable, category cache degraded", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCategoryCache(client, cfg.Redis.CategoryTTL, logger)
}
