package response

import (
	"encoding/json"
	"time"

	"canteen-core/internal/notify"
	"canteen-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type DailyReportResponse struct {
	Date         string           `json:"date"`
	CanteenID    *uuid.UUID       `json:"canteenId,omitempty"`
	StatusCounts map[string]int64 `json:"statusCounts"`
	TotalOrders  int64            `json:"totalOrders"`
	RevenueCents int64            `json:"revenueCents"`
}

// TokenCardResponse carries the QR PNG base64-encoded in JSON.
type TokenCardResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	TokenNumber string    `json:"tokenNumber"`
	QRCodePNG   []byte    `json:"qrCodePng"`
}

type ActivityResponse struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    uuid.UUID       `json:"actorId"`
	ActorRole  string          `json:"actorRole"`
	Action     string          `json:"action"`
	EntityKind string          `json:"entityKind"`
	EntityID   uuid.UUID       `json:"entityId"`
	Detail     json.RawMessage `json:"detail,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type NotificationResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OrderID   uuid.UUID `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDailyReportView(rm *queries.DailyReportView) *DailyReportResponse {
	return &DailyReportResponse{
		Date:         rm.Date,
		CanteenID:    rm.CanteenID,
		StatusCounts: rm.StatusCounts,
		TotalOrders:  rm.TotalOrders,
		RevenueCents: rm.RevenueCents,
	}
}

func FromTokenCardView(rm *queries.TokenCardView) *TokenCardResponse {
	return &TokenCardResponse{
		OrderID:     rm.OrderID,
		TokenNumber: rm.TokenNumber,
		QRCodePNG:   rm.QRCodePNG,
	}
}

func FromActivityView(rm *queries.ActivityView) *ActivityResponse {
	return &ActivityResponse{
		ID:         rm.ID,
		ActorID:    rm.ActorID,
		ActorRole:  rm.ActorRole,
		Action:     rm.Action,
		EntityKind: rm.EntityKind,
		EntityID:   rm.EntityID,
		Detail:     rm.Detail,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromNotification(n notify.Notification) *NotificationResponse {
	return &NotificationResponse{
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
	}
}
