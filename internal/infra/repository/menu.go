package repository

import (
	"context"

	"canteen-core/internal/infra"
	"canteen-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	db *pgxpool.Pool
}

func NewMenuItemRepository(db *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// FindForOrder loads the requested menu items scoped to one canteen. Items
// from other canteens or unknown IDs are simply absent from the result map;
// the caller decides how to treat the gap.
func (r *MenuItemRepository) FindForOrder(
	ctx context.Context,
	canteenID uuid.UUID,
	ids []uuid.UUID,
) (map[uuid.UUID]commands.MenuItemSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, canteen_id, name, price_cents, COALESCE(image_url, ''), is_available
		FROM menu_items
		WHERE canteen_id = $1 AND id = ANY($2)`,
		canteenID, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load menu items", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID]commands.MenuItemSnapshot, len(ids))
	for rows.Next() {
		var snap commands.MenuItemSnapshot
		if err := rows.Scan(&snap.ID, &snap.CanteenID, &snap.Name, &snap.PriceCents, &snap.ImageURL, &snap.IsAvailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		items[snap.ID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return items, nil
}
