package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	ErrWrongCanteen      = errors.New("coupon not valid for this canteen")
)

type Coupon struct {
	id         uuid.UUID
	code       Code
	discount   Discount
	usageLimit *int64
	usageCount int64
	startsAt   *time.Time
	expiresAt  *time.Time
	isActive   bool
	canteenID  *uuid.UUID
}

type Spec struct {
	ID               uuid.UUID
	Code             string
	Type             string // "percentage" | "flat"
	Value            int64  // percent for percentage type, cents for flat type
	MaxDiscountCents *int64
	UsageLimit       *int64
	UsageCount       int64
	StartsAt         *time.Time
	ExpiresAt        *time.Time
	IsActive         bool
	CanteenID        *uuid.UUID
}

const (
	TypePercentage = "percentage"
	TypeFlat       = "flat"
)

func NewCoupon(spec Spec) (*Coupon, error) {
	code, err := NewCouponCode(spec.Code)
	if err != nil {
		return nil, err
	}

	var discount Discount
	switch spec.Type {
	case TypePercentage:
		discount, err = NewPercentageDiscount(float64(spec.Value), spec.MaxDiscountCents)
	case TypeFlat:
		discount, err = NewFlatDiscount(spec.Value, spec.MaxDiscountCents)
	default:
		return nil, errors.New("unknown discount type: " + spec.Type)
	}
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:         spec.ID,
		code:       code,
		discount:   discount,
		usageLimit: spec.UsageLimit,
		usageCount: spec.UsageCount,
		startsAt:   spec.StartsAt,
		expiresAt:  spec.ExpiresAt,
		isActive:   spec.IsActive,
		canteenID:  spec.CanteenID,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if !c.isActive {
		return false
	}
	if c.startsAt != nil && t.Before(*c.startsAt) {
		return false
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return false
	}
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return false
	}
	return true
}

// ValidateRedemption is the read-side validity check. It never mutates state;
// the usage counter is incremented by the caller through an atomic guard.
func (c *Coupon) ValidateRedemption(t time.Time, canteenID uuid.UUID) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.startsAt != nil && t.Before(*c.startsAt) {
		return ErrCouponNotYetValid
	}
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	if c.canteenID != nil && *c.canteenID != canteenID {
		return ErrWrongCanteen
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) UsageLimit() *int64    { return c.usageLimit }
func (c *Coupon) UsageCount() int64     { return c.usageCount }
func (c *Coupon) StartsAt() *time.Time  { return c.startsAt }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Coupon) IsActive() bool        { return c.isActive }
func (c *Coupon) CanteenID() *uuid.UUID { return c.canteenID }
