package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"canteen-core/internal/domain/order"
	"canteen-core/internal/infra"
	"canteen-core/internal/pkg/pgconv"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, token_number, user_id, canteen_id, counter_id, items,
	subtotal_cents, service_charge_cents, gst_cents, discount_cents, total_cents,
	coupon_id, status, payment_status,
	pending_at, cooking_at, ready_at, delivered_at, cancelled_at,
	created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(itemRecordsFromDomain(o.Items()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err, infra.KindDBFailure)
	}

	bill := o.Bill()
	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (
			id, token_number, user_id, canteen_id, counter_id, items,
			subtotal_cents, service_charge_cents, gst_cents, discount_cents, total_cents,
			coupon_id, status, payment_status, pending_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		o.ID(), o.TokenNumber(), o.UserID(), o.CanteenID(), pgconv.NullFromUUIDPtr(o.CounterID()), items,
		bill.SubtotalCents, bill.ServiceChargeCents, bill.GSTCents, bill.DiscountCents, bill.TotalCents,
		pgconv.NullFromUUIDPtr(o.CouponID()), o.Status().String(), o.PaymentStatus().String(),
		o.Timeline().PendingAt, o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

// UpdateStatus is a single conditional statement: the terminal-state guard and
// the one-shot timeline stamp live in the WHERE/SET clauses so concurrent
// admins cannot lose updates or restamp the timeline.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	target order.Status,
	payment *order.PaymentStatus,
	at time.Time,
) (*commands.StatusChange, error) {
	var paymentStr *string
	if payment != nil {
		s := payment.String()
		paymentStr = &s
	}

	change := commands.StatusChange{OrderID: id, ChangedAt: at}
	var status, paymentStatus string
	err := r.db.QueryRow(ctx, `
		UPDATE orders SET
			status         = $2,
			payment_status = COALESCE($3, payment_status),
			cooking_at     = CASE WHEN $2 = 'Cooking'   THEN COALESCE(cooking_at, $4)   ELSE cooking_at END,
			ready_at       = CASE WHEN $2 = 'Ready'     THEN COALESCE(ready_at, $4)     ELSE ready_at END,
			delivered_at   = CASE WHEN $2 = 'Delivered' THEN COALESCE(delivered_at, $4) ELSE delivered_at END,
			cancelled_at   = CASE WHEN $2 IN ('Cancelled', 'Rejected') THEN COALESCE(cancelled_at, $4) ELSE cancelled_at END,
			updated_at     = $4
		WHERE id = $1 AND status NOT IN ('Delivered', 'Cancelled', 'Rejected')
		RETURNING user_id, canteen_id, token_number, status, payment_status`,
		id, target.String(), paymentStr, at,
	).Scan(&change.UserID, &change.CanteenID, &change.TokenNumber, &status, &paymentStatus)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyMissedUpdate(ctx, id, "order not transitionable")
		}
		return nil, infra.WrapRepoErr("failed to update order status", err)
	}

	change.Status = order.Status(status)
	change.PaymentStatus = order.PaymentStatus(paymentStatus)
	return &change, nil
}

// CancelByOwner enforces ownership and the Pending/Cooking window inside the
// statement; the follow-up read only classifies why nothing matched.
func (r *OrderRepository) CancelByOwner(
	ctx context.Context,
	id, userID uuid.UUID,
	at time.Time,
) (*commands.StatusChange, error) {
	change := commands.StatusChange{OrderID: id, ChangedAt: at}
	var status, paymentStatus string
	err := r.db.QueryRow(ctx, `
		UPDATE orders SET
			status         = 'Cancelled',
			payment_status = 'Refunded',
			cancelled_at   = COALESCE(cancelled_at, $3),
			updated_at     = $3
		WHERE id = $1 AND user_id = $2 AND status IN ('Pending', 'Cooking')
		RETURNING user_id, canteen_id, token_number, status, payment_status`,
		id, userID, at,
	).Scan(&change.UserID, &change.CanteenID, &change.TokenNumber, &status, &paymentStatus)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyMissedCancel(ctx, id, userID)
		}
		return nil, infra.WrapRepoErr("failed to cancel order", err)
	}

	change.Status = order.Status(status)
	change.PaymentStatus = order.PaymentStatus(paymentStatus)
	return &change, nil
}

func (r *OrderRepository) classifyMissedUpdate(ctx context.Context, id uuid.UUID, msg string) error {
	var status string
	err := r.db.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect order status", err)
	}
	return infra.WrapRepoErr(msg+": status="+status, nil, infra.KindConflict)
}

func (r *OrderRepository) classifyMissedCancel(ctx context.Context, id, userID uuid.UUID) error {
	var ownerID uuid.UUID
	var status string
	err := r.db.QueryRow(ctx, `SELECT user_id, status FROM orders WHERE id = $1`, id).Scan(&ownerID, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect order for cancellation", err)
	}
	if ownerID != userID {
		return infra.WrapRepoErr("order owned by another user", nil, infra.KindForbidden)
	}
	return infra.WrapRepoErr("cancellation window closed: status="+status, nil, infra.KindConflict)
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return view, nil
}

func (r *OrderRepository) List(ctx context.Context, filter queries.OrderFilter) ([]*queries.OrderListItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.CanteenID != nil {
		args = append(args, *filter.CanteenID)
		conds = append(conds, fmt.Sprintf("canteen_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT id, token_number, user_id, canteen_id, status, payment_status, total_cents, created_at FROM orders`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		item := &queries.OrderListItem{}
		if err := rows.Scan(
			&item.ID, &item.TokenNumber, &item.UserID, &item.CanteenID,
			&item.Status, &item.PaymentStatus, &item.TotalCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

// AggregateDaily counts orders per status for one calendar day and sums the
// revenue of everything that was not cancelled or rejected.
func (r *OrderRepository) AggregateDaily(
	ctx context.Context,
	day time.Time,
	canteenID *uuid.UUID,
) (*queries.DailyReportView, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	args := []any{from, to}
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_cents), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2`
	if canteenID != nil {
		args = append(args, *canteenID)
		query += fmt.Sprintf(" AND canteen_id = $%d", len(args))
	}
	query += " GROUP BY status"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily report", err)
	}
	defer rows.Close()

	report := &queries.DailyReportView{
		Date:         from.Format("2006-01-02"),
		CanteenID:    canteenID,
		StatusCounts: make(map[string]int64),
	}
	for rows.Next() {
		var status string
		var count, revenue int64
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report row", err)
		}
		report.StatusCounts[status] = count
		report.TotalOrders += count
		if status != order.StatusCancelled.String() && status != order.StatusRejected.String() {
			report.RevenueCents += revenue
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate report rows", err)
	}
	return report, nil
}

// ---------------------------------------------------------------------------
// Row conversion
// ---------------------------------------------------------------------------

type lineItemRecord struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	ImageURL       string    `json:"image_url,omitempty"`
}

func itemRecordsFromDomain(items []order.LineItem) []lineItemRecord {
	records := make([]lineItemRecord, len(items))
	for i, item := range items {
		records[i] = lineItemRecord{
			MenuItemID:     item.MenuItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			ImageURL:       item.ImageURL,
		}
	}
	return records
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		view      queries.OrderView
		counterID uuid.NullUUID
		couponID  uuid.NullUUID
		itemsJSON []byte
	)
	err := row.Scan(
		&view.ID, &view.TokenNumber, &view.UserID, &view.CanteenID, &counterID, &itemsJSON,
		&view.SubtotalCents, &view.ServiceChargeCents, &view.GSTCents, &view.DiscountCents, &view.TotalCents,
		&couponID, &view.Status, &view.PaymentStatus,
		&view.Timeline.PendingAt, &view.Timeline.CookingAt, &view.Timeline.ReadyAt,
		&view.Timeline.DeliveredAt, &view.Timeline.CancelledAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.CounterID = pgconv.UUIDPtrFromNull(counterID)
	view.CouponID = pgconv.UUIDPtrFromNull(couponID)

	var records []lineItemRecord
	if err := json.Unmarshal(itemsJSON, &records); err != nil {
		return nil, err
	}
	view.Items = make([]queries.OrderItemView, len(records))
	for i, rec := range records {
		view.Items[i] = queries.OrderItemView{
			MenuItemID:     rec.MenuItemID,
			Name:           rec.Name,
			Quantity:       rec.Quantity,
			UnitPriceCents: rec.UnitPriceCents,
			ImageURL:       rec.ImageURL,
		}
	}
	return &view, nil
}
