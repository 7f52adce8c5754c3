//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canteen-core/internal/handler/dto/request"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CanteenID     uuid.UUID
	TokenNumber   string
	ItemName      string
	Quantity      int64
	UnitPrice     int64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		CanteenID:     uuid.New(),
		TokenNumber:   "CTN-1234567",
		ItemName:      "Veg Thali",
		Quantity:      2,
		UnitPrice:     10000,
		Status:        "Pending",
		PaymentStatus: "Paid",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		CanteenID: b.CanteenID,
		Items: []reqdto.OrderItemRequest{
			{MenuItemID: uuid.New(), Quantity: b.Quantity},
		},
	}
}

func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	subtotal := b.Quantity * b.UnitPrice
	serviceCharge := b.Quantity * 200
	gst := subtotal * 5 / 100
	return &queries.OrderView{
		ID:          b.ID,
		TokenNumber: b.TokenNumber,
		UserID:      b.UserID,
		CanteenID:   b.CanteenID,
		Items: []queries.OrderItemView{
			{MenuItemID: uuid.New(), Name: b.ItemName, Quantity: b.Quantity, UnitPriceCents: b.UnitPrice},
		},
		SubtotalCents:      subtotal,
		ServiceChargeCents: serviceCharge,
		GSTCents:           gst,
		TotalCents:         subtotal + serviceCharge + gst,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		Timeline:           queries.TimelineView{PendingAt: &b.CreatedAt},
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:            b.ID,
		TokenNumber:   b.TokenNumber,
		UserID:        b.UserID,
		CanteenID:     b.CanteenID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalCents:    b.Quantity*b.UnitPrice + b.Quantity*200,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildTokenCard() *queries.TokenCardView {
	return &queries.TokenCardView{
		OrderID:     b.ID,
		TokenNumber: b.TokenNumber,
		QRCodePNG:   []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
	}
}
