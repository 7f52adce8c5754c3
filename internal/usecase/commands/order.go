package commands

import (
	"context"
	"log/slog"
	"time"

	"canteen-core/internal/domain/coupon"
	"canteen-core/internal/domain/order"
	"canteen-core/internal/domain/user"
	"canteen-core/internal/infra"
	"canteen-core/internal/notify"
	"canteen-core/internal/pkg/clock"
	"canteen-core/internal/pkg/errs"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/commands/order_commands_mock.go -package=commandsmock canteen-core/internal/usecase/commands OrderCommands

const auditTimeout = 5 * time.Second

type CartLine struct {
	MenuItemID uuid.UUID
	Quantity   int64
}

type CreateOrderInput struct {
	CanteenID  uuid.UUID
	CounterID  *uuid.UUID
	Items      []CartLine
	CouponCode *string
}

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, input CreateOrderInput, userID uuid.UUID) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target string, paymentStatus *string, actor Actor) (*queries.OrderView, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, actor Actor) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	orderRepo  OrderRepository
	menuReader MenuItemReader
	couponRepo CouponRepository
	orderViews OrderViewFinder
	events     EventPublisher
	notifier   UserNotifier
	audit      ActivityRecorder
	clock      clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	menuReader MenuItemReader,
	couponRepo CouponRepository,
	orderViews OrderViewFinder,
	events EventPublisher,
	notifier UserNotifier,
	audit ActivityRecorder,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:  orderRepo,
		menuReader: menuReader,
		couponRepo: couponRepo,
		orderViews: orderViews,
		events:     events,
		notifier:   notifier,
		audit:      audit,
		clock:      clock,
	}
}

func (s *orderCommandsImpl) CreateOrder(
	ctx context.Context,
	input CreateOrderInput,
	userID uuid.UUID,
) (*queries.OrderView, error) {
	if len(input.Items) == 0 {
		return nil, errs.ErrEmptyCart
	}
	if input.CanteenID == uuid.Nil {
		return nil, errs.Mark(order.ErrCanteenRequired, errs.ErrDomainValidation)
	}

	lines, err := s.snapshotCartLines(ctx, input)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	couponID, discount, err := s.redeemCoupon(ctx, input.CouponCode, input.CanteenID, now)
	if err != nil {
		return nil, err
	}

	bill := order.CalculateBill(billLines(lines), discount)

	entity, err := s.persistWithTokenRetry(ctx, input, userID, lines, bill, couponID, now)
	if err != nil {
		return nil, err
	}

	s.events.Publish(notify.Event{
		Kind:          notify.EventOrderCreated,
		OrderID:       entity.ID(),
		UserID:        entity.UserID(),
		CanteenID:     entity.CanteenID(),
		TokenNumber:   entity.TokenNumber(),
		Status:        entity.Status().String(),
		PaymentStatus: entity.PaymentStatus().String(),
		OccurredAt:    now,
	}, notify.UserTopic(entity.UserID()), notify.CanteenTopic(entity.CanteenID()))

	s.recordActivity(ctx, ActivityEntry{
		ActorID:    userID,
		ActorRole:  user.RoleStudent.String(),
		Action:     "order.created",
		EntityKind: "order",
		EntityID:   entity.ID(),
		Detail: map[string]any{
			"token_number": entity.TokenNumber(),
			"total_cents":  bill.TotalCents,
		},
	})

	view, err := s.orderViews.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (s *orderCommandsImpl) UpdateStatus(
	ctx context.Context,
	orderID uuid.UUID,
	target string,
	paymentStatus *string,
	actor Actor,
) (*queries.OrderView, error) {
	targetStatus, err := order.NewStatus(target)
	if err != nil || targetStatus == order.StatusPending {
		return nil, errs.Mark(order.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	var payment *order.PaymentStatus
	if paymentStatus != nil {
		p, perr := order.NewPaymentStatus(*paymentStatus)
		if perr != nil {
			return nil, errs.Mark(perr, errs.ErrDomainValidation)
		}
		payment = &p
	}

	current, err := s.orderViews.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// The conditional UPDATE below remains the arbiter under concurrent
	// admins; this check rejects terminal orders before any write.
	if !order.Status(current.Status).CanTransitionTo(targetStatus) {
		return nil, errs.ErrTerminalState
	}

	change, err := s.orderRepo.UpdateStatus(ctx, orderID, targetStatus, payment, s.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrOrderNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.ErrTerminalState
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	s.publishChange(notify.EventOrderUpdated, change)

	if change.Status == order.StatusReady {
		s.notifier.Push(notify.Notification{
			UserID:    change.UserID,
			Type:      "order_ready",
			Title:     "Order ready for pickup",
			Body:      "Your order is ready. Show token " + change.TokenNumber + " at the counter.",
			OrderID:   change.OrderID,
			CreatedAt: change.ChangedAt,
		})
	}

	s.recordActivity(ctx, ActivityEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role.String(),
		Action:     "order.status_updated",
		EntityKind: "order",
		EntityID:   change.OrderID,
		Detail: map[string]any{
			"status":         change.Status.String(),
			"payment_status": change.PaymentStatus.String(),
		},
	})

	view, err := s.orderViews.FindByID(ctx, change.OrderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (s *orderCommandsImpl) CancelOrder(
	ctx context.Context,
	orderID uuid.UUID,
	actor Actor,
) (*queries.OrderView, error) {
	change, err := s.orderRepo.CancelByOwner(ctx, orderID, actor.ID, s.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrOrderNotFound
		case infra.IsKind(err, infra.KindForbidden):
			return nil, errs.ErrNotOrderOwner
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.ErrCancelWindowClosed
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	s.publishChange(notify.EventOrderUpdated, change)

	s.recordActivity(ctx, ActivityEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role.String(),
		Action:     "order.cancelled",
		EntityKind: "order",
		EntityID:   change.OrderID,
		Detail: map[string]any{
			"payment_status": change.PaymentStatus.String(),
		},
	})

	view, err := s.orderViews.FindByID(ctx, change.OrderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// snapshotCartLines resolves every cart reference against the menu and copies
// name/price/image into the order so later menu edits cannot rewrite history.
func (s *orderCommandsImpl) snapshotCartLines(
	ctx context.Context,
	input CreateOrderInput,
) ([]order.LineItem, error) {
	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, errs.Mark(order.ErrInvalidQuantity, errs.ErrDomainValidation)
		}
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := s.menuReader.FindForOrder(ctx, input.CanteenID, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	lines := make([]order.LineItem, 0, len(input.Items))
	for _, line := range input.Items {
		item, ok := menuItems[line.MenuItemID]
		if !ok || !item.IsAvailable {
			return nil, errs.ErrMenuItemUnavailable
		}
		lines = append(lines, order.LineItem{
			MenuItemID:     item.ID,
			Name:           item.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: item.PriceCents,
			ImageURL:       item.ImageURL,
		})
	}
	return lines, nil
}

func billLines(lines []order.LineItem) []order.BillLine {
	bill := make([]order.BillLine, len(lines))
	for i, line := range lines {
		bill[i] = order.BillLine{
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		}
	}
	return bill
}

// redeemCoupon resolves a coupon code and, when valid, atomically claims one
// use. Any invalid, expired or exhausted coupon degrades to "no discount";
// checkout never fails because of a bad code.
func (s *orderCommandsImpl) redeemCoupon(
	ctx context.Context,
	code *string,
	canteenID uuid.UUID,
	now time.Time,
) (*uuid.UUID, *coupon.Discount, error) {
	if code == nil {
		return nil, nil, nil
	}

	normalized, err := coupon.NewCouponCode(*code)
	if err != nil {
		slog.Debug("ignoring malformed coupon code at checkout", "error", err)
		return nil, nil, nil
	}

	snapshot, err := s.couponRepo.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("ignoring unknown coupon code at checkout", "code", normalized.String())
			return nil, nil, nil
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := coupon.NewCoupon(coupon.Spec{
		ID:               snapshot.ID,
		Code:             snapshot.Code,
		Type:             snapshot.Type,
		Value:            snapshot.Value,
		MaxDiscountCents: snapshot.MaxDiscountCents,
		UsageLimit:       snapshot.UsageLimit,
		UsageCount:       snapshot.UsageCount,
		StartsAt:         snapshot.StartsAt,
		ExpiresAt:        snapshot.ExpiresAt,
		IsActive:         snapshot.IsActive,
		CanteenID:        snapshot.CanteenID,
	})
	if err != nil {
		slog.Warn("ignoring malformed coupon record at checkout", "code", snapshot.Code, "error", err)
		return nil, nil, nil
	}

	if err := entity.ValidateRedemption(now, canteenID); err != nil {
		slog.Debug("coupon not redeemable at checkout", "code", snapshot.Code, "reason", err)
		return nil, nil, nil
	}

	// The guard re-checks the limit inside the UPDATE, so concurrent
	// checkouts can never over-redeem.
	if err := s.couponRepo.Redeem(ctx, snapshot.ID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			slog.Debug("coupon exhausted by concurrent checkout", "code", snapshot.Code)
			return nil, nil, nil
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id := entity.ID()
	discount := entity.Discount()
	return &id, &discount, nil
}

// persistWithTokenRetry mints a pickup token and inserts the order, retrying
// once with fresh randomness if the token collides on the unique constraint.
func (s *orderCommandsImpl) persistWithTokenRetry(
	ctx context.Context,
	input CreateOrderInput,
	userID uuid.UUID,
	lines []order.LineItem,
	bill order.Bill,
	couponID *uuid.UUID,
	now time.Time,
) (*order.Order, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		token, err := order.GeneratePickupToken(now)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := order.NewOrder(userID, input.CanteenID, input.CounterID, lines, bill, couponID, token, now)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
		}

		if err := s.orderRepo.Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				lastErr = err
				continue
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return entity, nil
	}
	return nil, errs.Mark(lastErr, errs.ErrTokenConflict)
}

func (s *orderCommandsImpl) publishChange(kind string, change *StatusChange) {
	s.events.Publish(notify.Event{
		Kind:          kind,
		OrderID:       change.OrderID,
		UserID:        change.UserID,
		CanteenID:     change.CanteenID,
		TokenNumber:   change.TokenNumber,
		Status:        change.Status.String(),
		PaymentStatus: change.PaymentStatus.String(),
		OccurredAt:    change.ChangedAt,
	}, notify.OrderTopic(change.OrderID), notify.CanteenTopic(change.CanteenID))
}

// recordActivity appends to the audit trail off the request path. The order
// write is the source of truth; an audit failure is logged, never propagated.
func (s *orderCommandsImpl) recordActivity(ctx context.Context, entry ActivityEntry) {
	detached := context.WithoutCancel(ctx)
	go func() {
		auditCtx, cancel := context.WithTimeout(detached, auditTimeout)
		defer cancel()
		if err := s.audit.Record(auditCtx, entry); err != nil {
			slog.Error("failed to record activity entry", "action", entry.Action, "entity_id", entry.EntityID, "error", err)
		}
	}()
}
