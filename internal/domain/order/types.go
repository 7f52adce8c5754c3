package order

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCooking   Status = "Cooking"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
	StatusRejected  Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCooking, StatusReady, StatusDelivered, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an admin may move an order from s to target.
// Orders only enter Pending at creation; any other status is reachable from
// any non-terminal state (the kitchen may skip steps, e.g. Pending -> Ready).
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	return target.IsValid() && target != StatusPending
}

// CancellableByOwner reports whether the owning user may still cancel.
// Once food is Ready the window has closed.
func (s Status) CancellableByOwner() bool {
	return s == StatusPending || s == StatusCooking
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
	PaymentFailed   PaymentStatus = "Failed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return status, nil
}

// Timeline records when each status was entered. Fields are stamped at most
// once and never cleared; skipping a step leaves its field nil.
type Timeline struct {
	PendingAt   *time.Time
	CookingAt   *time.Time
	ReadyAt     *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// Stamp sets the field matching the status, keeping any earlier value.
// Cancelled and Rejected share the cancelledAt field.
func (t *Timeline) Stamp(status Status, at time.Time) {
	field := t.fieldFor(status)
	if field != nil && *field == nil {
		*field = &at
	}
}

// StampedAt returns the recorded entry time for a status, or nil.
func (t *Timeline) StampedAt(status Status) *time.Time {
	field := t.fieldFor(status)
	if field == nil {
		return nil
	}
	return *field
}

func (t *Timeline) fieldFor(status Status) **time.Time {
	switch status {
	case StatusPending:
		return &t.PendingAt
	case StatusCooking:
		return &t.CookingAt
	case StatusReady:
		return &t.ReadyAt
	case StatusDelivered:
		return &t.DeliveredAt
	case StatusCancelled, StatusRejected:
		return &t.CancelledAt
	default:
		return nil
	}
}
