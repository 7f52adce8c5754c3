package queries

import (
	"context"
	"fmt"
	"time"

	"canteen-core/internal/domain/user"
	"canteen-core/internal/infra"
	"canteen-core/internal/pkg/errs"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

//go:generate mockgen -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock canteen-core/internal/usecase/queries OrderReadStore,ReportCache,ActivityReadStore,InboxReader
//go:generate mockgen -destination=../../../tests/mock/queries/order_queries_mock.go -package=queriesmock canteen-core/internal/usecase/queries OrderQueries

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	reportDateLayout = "2006-01-02"
	tokenQRSizePx    = 256
)

// Viewer is the authenticated identity reading order data.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter) ([]*OrderListItem, error)
	AggregateDaily(ctx context.Context, day time.Time, canteenID *uuid.UUID) (*DailyReportView, error)
}

// ReportCache is best-effort: a miss or a cache failure falls through to the
// aggregation query.
type ReportCache interface {
	GetDailyReport(ctx context.Context, key string) (*DailyReportView, bool)
	SetDailyReport(ctx context.Context, key string, report *DailyReportView)
}

type OrderQueries interface {
	GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, viewer Viewer, filter OrderFilter) ([]*OrderListItem, error)
	DailyReport(ctx context.Context, date string, canteenID *uuid.UUID) (*DailyReportView, error)
	TokenCard(ctx context.Context, viewer Viewer, orderID uuid.UUID) (*TokenCardView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
	cache ReportCache
}

func NewOrderQueries(store OrderReadStore, cache ReportCache) OrderQueries {
	return &orderQueriesImpl{store: store, cache: cache}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*OrderView, error) {
	view, err := q.findVisible(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, viewer Viewer, filter OrderFilter) ([]*OrderListItem, error) {
	if !viewer.Role.CanManageOrders() {
		// Students only ever see their own orders.
		self := viewer.ID
		filter.UserID = &self
		filter.CanteenID = nil
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	items, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return items, nil
}

func (q *orderQueriesImpl) DailyReport(ctx context.Context, date string, canteenID *uuid.UUID) (*DailyReportView, error) {
	day, err := time.Parse(reportDateLayout, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	key := reportCacheKey(date, canteenID)
	if cached, ok := q.cache.GetDailyReport(ctx, key); ok {
		return cached, nil
	}

	report, err := q.store.AggregateDaily(ctx, day, canteenID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate daily report")
	}

	q.cache.SetDailyReport(ctx, key, report)
	return report, nil
}

func (q *orderQueriesImpl) TokenCard(ctx context.Context, viewer Viewer, orderID uuid.UUID) (*TokenCardView, error) {
	view, err := q.findVisible(ctx, viewer, orderID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(view.TokenNumber, qrcode.Medium, tokenQRSizePx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to render token QR code")
	}

	return &TokenCardView{
		OrderID:     view.ID,
		TokenNumber: view.TokenNumber,
		QRCodePNG:   png,
	}, nil
}

func (q *orderQueriesImpl) findVisible(ctx context.Context, viewer Viewer, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}

	if view.UserID != viewer.ID && !viewer.Role.CanManageOrders() {
		// Hide other users' orders instead of confirming their existence.
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}

func reportCacheKey(date string, canteenID *uuid.UUID) string {
	if canteenID == nil {
		return fmt.Sprintf("report:daily:%s:all", date)
	}
	return fmt.Sprintf("report:daily:%s:%s", date, canteenID)
}
