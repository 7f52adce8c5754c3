package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OrderItemView struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	ImageURL       string    `json:"image_url,omitempty"`
}

type TimelineView struct {
	PendingAt   *time.Time `json:"pending_at,omitempty"`
	CookingAt   *time.Time `json:"cooking_at,omitempty"`
	ReadyAt     *time.Time `json:"ready_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	TokenNumber        string          `json:"token_number"`
	UserID             uuid.UUID       `json:"user_id"`
	CanteenID          uuid.UUID       `json:"canteen_id"`
	CounterID          *uuid.UUID      `json:"counter_id,omitempty"`
	Items              []OrderItemView `json:"items"`
	SubtotalCents      int64           `json:"subtotal_cents"`
	ServiceChargeCents int64           `json:"service_charge_cents"`
	GSTCents           int64           `json:"gst_cents"`
	DiscountCents      int64           `json:"discount_cents"`
	TotalCents         int64           `json:"total_cents"`
	CouponID           *uuid.UUID      `json:"coupon_id,omitempty"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"payment_status"`
	Timeline           TimelineView    `json:"timeline"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	TokenNumber   string    `json:"token_number"`
	UserID        uuid.UUID `json:"user_id"`
	CanteenID     uuid.UUID `json:"canteen_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderFilter narrows listings; zero values mean "no filter".
type OrderFilter struct {
	UserID    *uuid.UUID
	CanteenID *uuid.UUID
	Status    *string
	Limit     int
}

type DailyReportView struct {
	Date         string           `json:"date"`
	CanteenID    *uuid.UUID       `json:"canteen_id,omitempty"`
	StatusCounts map[string]int64 `json:"status_counts"`
	TotalOrders  int64            `json:"total_orders"`
	RevenueCents int64            `json:"revenue_cents"`
}

// TokenCardView is the presentational pickup card: the token plus a QR PNG.
type TokenCardView struct {
	OrderID     uuid.UUID `json:"order_id"`
	TokenNumber string    `json:"token_number"`
	QRCodePNG   []byte    `json:"qr_code_png"`
}

type ActivityView struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    uuid.UUID       `json:"actor_id"`
	ActorRole  string          `json:"actor_role"`
	Action     string          `json:"action"`
	EntityKind string          `json:"entity_kind"`
	EntityID   uuid.UUID       `json:"entity_id"`
	Detail     json.RawMessage `json:"detail,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
