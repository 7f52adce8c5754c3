package repository

import (
	"context"
	"database/sql"

	"canteen-core/internal/infra"
	"canteen-core/internal/pkg/pgconv"
	"canteen-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	var (
		snap      commands.CouponSnapshot
		maxCents  sql.NullInt64
		limit     sql.NullInt64
		canteenID uuid.NullUUID
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, code, type, value, max_discount_cents, usage_limit, usage_count,
			starts_at, expires_at, is_active, canteen_id
		FROM coupons
		WHERE code = $1`,
		code,
	).Scan(
		&snap.ID, &snap.Code, &snap.Type, &snap.Value, &maxCents, &limit, &snap.UsageCount,
		&snap.StartsAt, &snap.ExpiresAt, &snap.IsActive, &canteenID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	snap.MaxDiscountCents = pgconv.Int64PtrFromNull(maxCents)
	snap.UsageLimit = pgconv.Int64PtrFromNull(limit)
	snap.CanteenID = pgconv.UUIDPtrFromNull(canteenID)
	return &snap, nil
}

// Redeem is a guarded increment: usage_count never passes usage_limit even
// under concurrent checkouts, because the cap check and the increment are one
// statement.
func (r *CouponRepository) Redeem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons
		SET usage_count = usage_count + 1
		WHERE id = $1
			AND is_active
			AND (usage_limit IS NULL OR usage_count < usage_limit)`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon no longer redeemable", nil, infra.KindConflict)
	}
	return nil
}
