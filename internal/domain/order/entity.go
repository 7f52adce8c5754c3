package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("order requires at least one line item")
	ErrCanteenRequired = errors.New("order requires a canteen")
	ErrInvalidQuantity = errors.New("line item quantity must be at least 1")
	ErrNegativePrice   = errors.New("line item price cannot be negative")
	ErrMissingToken    = errors.New("order requires a pickup token")
)

// LineItem is a snapshot of a menu item captured at order creation. Menu
// edits after checkout never change historical orders.
type LineItem struct {
	MenuItemID     uuid.UUID
	Name           string
	Quantity       int64
	UnitPriceCents int64
	ImageURL       string
}

type Order struct {
	id            uuid.UUID
	tokenNumber   string
	userID        uuid.UUID
	canteenID     uuid.UUID
	counterID     *uuid.UUID
	items         []LineItem
	bill          Bill
	couponID      *uuid.UUID
	status        Status
	paymentStatus PaymentStatus
	timeline      Timeline
	createdAt     time.Time
	updatedAt     time.Time
}

// NewOrder builds a freshly checked-out order: Pending, Paid (payment is
// simulated as succeeding at creation) and pendingAt stamped.
func NewOrder(
	userID, canteenID uuid.UUID,
	counterID *uuid.UUID,
	items []LineItem,
	bill Bill,
	couponID *uuid.UUID,
	tokenNumber string,
	now time.Time,
) (*Order, error) {
	if canteenID == uuid.Nil {
		return nil, ErrCanteenRequired
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if tokenNumber == "" {
		return nil, ErrMissingToken
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPriceCents < 0 {
			return nil, ErrNegativePrice
		}
	}

	snapshot := make([]LineItem, len(items))
	copy(snapshot, items)

	o := &Order{
		id:            uuid.New(),
		tokenNumber:   tokenNumber,
		userID:        userID,
		canteenID:     canteenID,
		counterID:     counterID,
		items:         snapshot,
		bill:          bill,
		couponID:      couponID,
		status:        StatusPending,
		paymentStatus: PaymentPaid,
		createdAt:     now,
		updatedAt:     now,
	}
	o.timeline.Stamp(StatusPending, now)
	return o, nil
}

func ReconstructOrder(
	id uuid.UUID,
	tokenNumber string,
	userID, canteenID uuid.UUID,
	counterID *uuid.UUID,
	items []LineItem,
	bill Bill,
	couponID *uuid.UUID,
	status Status,
	paymentStatus PaymentStatus,
	timeline Timeline,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		tokenNumber:   tokenNumber,
		userID:        userID,
		canteenID:     canteenID,
		counterID:     counterID,
		items:         items,
		bill:          bill,
		couponID:      couponID,
		status:        status,
		paymentStatus: paymentStatus,
		timeline:      timeline,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) TokenNumber() string          { return o.tokenNumber }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) CanteenID() uuid.UUID         { return o.canteenID }
func (o *Order) CounterID() *uuid.UUID        { return o.counterID }
func (o *Order) Bill() Bill                   { return o.bill }
func (o *Order) CouponID() *uuid.UUID         { return o.couponID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Timeline() Timeline           { return o.timeline }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// Items returns a copy; callers cannot mutate the snapshot.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}
