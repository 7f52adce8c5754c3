package request

import (
	"strings"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int64     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CanteenID  uuid.UUID          `json:"canteen_id" binding:"required"`
	CounterID  *uuid.UUID         `json:"counter_id,omitempty"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string            `json:"coupon_code,omitempty"`
}

func (r CreateOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateOrderStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}
