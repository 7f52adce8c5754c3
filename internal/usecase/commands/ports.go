package commands

import (
	"context"
	"time"

	"canteen-core/internal/domain/order"
	"canteen-core/internal/notify"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

type MenuItemSnapshot struct {
	ID          uuid.UUID
	CanteenID   uuid.UUID
	Name        string
	PriceCents  int64
	ImageURL    string
	IsAvailable bool
}

type CouponSnapshot struct {
	ID               uuid.UUID
	Code             string
	Type             string
	Value            int64
	MaxDiscountCents *int64
	UsageLimit       *int64
	UsageCount       int64
	StartsAt         *time.Time
	ExpiresAt        *time.Time
	IsActive         bool
	CanteenID        *uuid.UUID
}

// StatusChange is the row actually persisted by a conditional update. Side
// effects (events, audit, inbox) derive from it, never from a stale read.
type StatusChange struct {
	OrderID       uuid.UUID
	UserID        uuid.UUID
	CanteenID     uuid.UUID
	TokenNumber   string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	ChangedAt     time.Time
}

type ActivityEntry struct {
	ActorID    uuid.UUID
	ActorRole  string
	Action     string
	EntityKind string
	EntityID   uuid.UUID
	Detail     map[string]any
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	// UpdateStatus applies a conditional transition guarded against terminal
	// states in the statement itself (no read-then-write).
	UpdateStatus(ctx context.Context, id uuid.UUID, target order.Status, payment *order.PaymentStatus, at time.Time) (*StatusChange, error)
	// CancelByOwner succeeds only while the owner's cancellation window is
	// open (Pending or Cooking) and the acting user owns the order.
	CancelByOwner(ctx context.Context, id, userID uuid.UUID, at time.Time) (*StatusChange, error)
}

type MenuItemReader interface {
	FindForOrder(ctx context.Context, canteenID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]MenuItemSnapshot, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	// Redeem atomically increments usage_count, guarded so the post-increment
	// value never exceeds usage_limit. Returns a conflict-kind error when the
	// limit is exhausted.
	Redeem(ctx context.Context, id uuid.UUID) error
}

type OrderViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error)
}

type EventPublisher interface {
	Publish(event notify.Event, topics ...string)
}

type UserNotifier interface {
	Push(n notify.Notification)
}

// ActivityRecorder appends to the audit trail. Callers treat failures as
// non-fatal; the write happens off the request's critical path.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry) error
}
