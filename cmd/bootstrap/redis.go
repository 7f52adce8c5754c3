package bootstrap

import (
	"context"
	"log/slog"

	"canteen-core/internal/infra/reportcache"
	"canteen-core/internal/pkg/config"
	"canteen-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewReportCache,
	),
)

// NewReportCache wires the Redis-backed cache when REDIS_ADDR is set and a
// no-op fallback otherwise. The service works identically either way, minus
// the caching.
func NewReportCache(lc fx.Lifecycle, cfg config.Config) queries.ReportCache {
	if cfg.Redis.Addr == "" {
		slog.Info("report cache disabled, REDIS_ADDR not set")
		return reportcache.Noop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("report cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.ReportTTL)
	return reportcache.New(client, cfg.Redis)
}
