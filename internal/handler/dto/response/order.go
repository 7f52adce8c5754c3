package response

import (
	"time"

	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	MenuItemID     uuid.UUID `json:"menuItemId"`
	Name           string    `json:"name"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	ImageURL       string    `json:"imageUrl,omitempty"`
}

type TimelineResponse struct {
	PendingAt   *time.Time `json:"pendingAt,omitempty"`
	CookingAt   *time.Time `json:"cookingAt,omitempty"`
	ReadyAt     *time.Time `json:"readyAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	TokenNumber        string              `json:"tokenNumber"`
	UserID             uuid.UUID           `json:"userId"`
	CanteenID          uuid.UUID           `json:"canteenId"`
	CounterID          *uuid.UUID          `json:"counterId,omitempty"`
	Items              []OrderItemResponse `json:"items"`
	SubtotalCents      int64               `json:"subtotalCents"`
	ServiceChargeCents int64               `json:"serviceChargeCents"`
	GSTCents           int64               `json:"gstCents"`
	DiscountCents      int64               `json:"discountCents"`
	TotalCents         int64               `json:"totalCents"`
	CouponID           *uuid.UUID          `json:"couponId,omitempty"`
	Status             string              `json:"status"`
	PaymentStatus      string              `json:"paymentStatus"`
	Timeline           TimelineResponse    `json:"timeline"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	TokenNumber   string    `json:"tokenNumber"`
	UserID        uuid.UUID `json:"userId"`
	CanteenID     uuid.UUID `json:"canteenId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalCents    int64     `json:"totalCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(rm.Items))
	for i, item := range rm.Items {
		items[i] = OrderItemResponse{
			MenuItemID:     item.MenuItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			ImageURL:       item.ImageURL,
		}
	}

	return &OrderResponse{
		ID:                 rm.ID,
		TokenNumber:        rm.TokenNumber,
		UserID:             rm.UserID,
		CanteenID:          rm.CanteenID,
		CounterID:          rm.CounterID,
		Items:              items,
		SubtotalCents:      rm.SubtotalCents,
		ServiceChargeCents: rm.ServiceChargeCents,
		GSTCents:           rm.GSTCents,
		DiscountCents:      rm.DiscountCents,
		TotalCents:         rm.TotalCents,
		CouponID:           rm.CouponID,
		Status:             rm.Status,
		PaymentStatus:      rm.PaymentStatus,
		Timeline: TimelineResponse{
			PendingAt:   rm.Timeline.PendingAt,
			CookingAt:   rm.Timeline.CookingAt,
			ReadyAt:     rm.Timeline.ReadyAt,
			DeliveredAt: rm.Timeline.DeliveredAt,
			CancelledAt: rm.Timeline.CancelledAt,
		},
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:            rm.ID,
		TokenNumber:   rm.TokenNumber,
		UserID:        rm.UserID,
		CanteenID:     rm.CanteenID,
		Status:        rm.Status,
		PaymentStatus: rm.PaymentStatus,
		TotalCents:    rm.TotalCents,
		CreatedAt:     rm.CreatedAt,
	}
}
