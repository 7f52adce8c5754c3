package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
)

// Event is a lifecycle change pushed to live viewers. Delivery is at-most-once
// and best-effort; a disconnected subscriber simply misses it.
type Event struct {
	Kind          string    `json:"kind"`
	OrderID       uuid.UUID `json:"order_id"`
	UserID        uuid.UUID `json:"user_id"`
	CanteenID     uuid.UUID `json:"canteen_id"`
	TokenNumber   string    `json:"token_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Topic naming convention: order:<id>, user:<id>, canteen:<id>.
func OrderTopic(id uuid.UUID) string   { return fmt.Sprintf("order:%s", id) }
func UserTopic(id uuid.UUID) string    { return fmt.Sprintf("user:%s", id) }
func CanteenTopic(id uuid.UUID) string { return fmt.Sprintf("canteen:%s", id) }
