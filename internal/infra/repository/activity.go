package repository

import (
	"context"
	"encoding/json"

	"canteen-core/internal/infra"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository is an append-only audit trail. Rows are never updated
// or deleted.
type ActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Record(ctx context.Context, entry commands.ActivityEntry) error {
	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return infra.WrapRepoErr("failed to encode activity detail", err, infra.KindDBFailure)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO activity_logs (id, actor_id, actor_role, action, entity_kind, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		uuid.New(), entry.ActorID, entry.ActorRole, entry.Action, entry.EntityKind, entry.EntityID, detail,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record activity", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*queries.ActivityView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, actor_id, actor_role, action, entity_kind, entity_id, detail, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity entries", err)
	}
	defer rows.Close()

	var entries []*queries.ActivityView
	for rows.Next() {
		view := &queries.ActivityView{}
		if err := rows.Scan(
			&view.ID, &view.ActorID, &view.ActorRole, &view.Action,
			&view.EntityKind, &view.EntityID, &view.Detail, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity row", err)
		}
		entries = append(entries, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate activity rows", err)
	}
	return entries, nil
}
