package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMaxDiscount     = errors.New("max discount cannot be negative")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is stored canonically upper-cased; lookups are case-insensitive.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	flatOffCents     *int64
	percentOff       *float64
	maxDiscountCents *int64
}

func NewFlatDiscount(flatOffCents int64, maxDiscountCents *int64) (Discount, error) {
	if flatOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	if maxDiscountCents != nil && *maxDiscountCents < 0 {
		return Discount{}, ErrInvalidMaxDiscount
	}
	return Discount{flatOffCents: &flatOffCents, maxDiscountCents: maxDiscountCents}, nil
}

func NewPercentageDiscount(percentOff float64, maxDiscountCents *int64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if maxDiscountCents != nil && *maxDiscountCents < 0 {
		return Discount{}, ErrInvalidMaxDiscount
	}
	return Discount{percentOff: &percentOff, maxDiscountCents: maxDiscountCents}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFlat() bool {
	return d.flatOffCents != nil
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

func (d Discount) FlatOffCents() int64 {
	if d.flatOffCents != nil {
		return *d.flatOffCents
	}
	return 0
}

func (d Discount) MaxDiscountCents() *int64 {
	return d.maxDiscountCents
}

// CentsFor computes the discount for a subtotal, clamped to the cap when one is
// set. Percentage amounts round half-up to whole cents. The result may exceed
// the subtotal; the bill total floors at zero, not the discount.
func (d Discount) CentsFor(subtotalCents int64) int64 {
	var amount int64
	if d.IsPercentage() {
		amount = int64(math.Floor(float64(subtotalCents)*d.PercentOff()/100.0 + 0.5))
	} else {
		amount = d.FlatOffCents()
	}

	if d.maxDiscountCents != nil && amount > *d.maxDiscountCents {
		amount = *d.maxDiscountCents
	}
	if amount < 0 {
		return 0
	}
	return amount
}
