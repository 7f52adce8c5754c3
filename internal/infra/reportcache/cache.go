package reportcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"canteen-core/internal/pkg/config"
	"canteen-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered daily reports in Redis for a short TTL. Every failure
// path degrades to a cache miss; report reads never depend on Redis being up.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, cfg config.RedisConfig) *Cache {
	return &Cache{client: client, ttl: cfg.ReportTTL}
}

func (c *Cache) GetDailyReport(ctx context.Context, key string) (*queries.DailyReportView, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("report cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var report queries.DailyReportView
	if err := json.Unmarshal(payload, &report); err != nil {
		slog.Warn("report cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &report, true
}

func (c *Cache) SetDailyReport(ctx context.Context, key string, report *queries.DailyReportView) {
	payload, err := json.Marshal(report)
	if err != nil {
		slog.Warn("report cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("report cache write failed", "key", key, "error", err)
	}
}

// Noop serves deployments without Redis configured.
type Noop struct{}

func (Noop) GetDailyReport(context.Context, string) (*queries.DailyReportView, bool) { return nil, false }

func (Noop) SetDailyReport(context.Context, string, *queries.DailyReportView) {}
