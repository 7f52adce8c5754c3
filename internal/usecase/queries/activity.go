package queries

import (
	"context"

	"canteen-core/internal/pkg/errs"
)

type ActivityReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*ActivityView, error)
}

type ActivityQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*ActivityView, error)
}

type activityQueriesImpl struct {
	store ActivityReadStore
}

func NewActivityQueries(store ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{store: store}
}

func (q *activityQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*ActivityView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	entries, err := q.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list activity entries")
	}
	return entries, nil
}
