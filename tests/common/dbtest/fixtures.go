//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestMenuItem(t *testing.T, db DBLike, canteenID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO menu_items (id, canteen_id, name, price_cents, is_available) VALUES ($1, $2, $3, $4, true)",
		itemID, canteenID, name, priceCents)
	require.NoError(t, err)

	return itemID
}

func MarkMenuItemUnavailable(t *testing.T, db DBLike, itemID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE menu_items SET is_available = false WHERE id = $1", itemID)
	require.NoError(t, err)
}

type CouponSpec struct {
	Code             string
	Type             string
	Value            int64
	MaxDiscountCents *int64
	UsageLimit       *int64
	StartsAt         *time.Time
	ExpiresAt        *time.Time
	IsActive         bool
	CanteenID        *uuid.UUID
}

func CreateTestCoupon(t *testing.T, db DBLike, spec CouponSpec) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, type, value, max_discount_cents, usage_limit, starts_at, expires_at, is_active, canteen_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO NOTHING`,
		couponID, spec.Code, spec.Type, spec.Value, spec.MaxDiscountCents, spec.UsageLimit,
		spec.StartsAt, spec.ExpiresAt, spec.IsActive, spec.CanteenID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupons WHERE code = $1", spec.Code).Scan(&couponID)
	}

	return couponID
}

func CouponUsageCount(t *testing.T, db DBLike, couponID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT usage_count FROM coupons WHERE id = $1", couponID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountActivityLogs(t *testing.T, db DBLike, action string) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM activity_logs WHERE action = $1", action).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
