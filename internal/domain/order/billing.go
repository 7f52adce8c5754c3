package order

import (
	"math"

	"canteen-core/internal/domain/coupon"
)

// Billing constants. Money is integer cents throughout; the two fractional
// computations (GST, percentage discount) round half-up to whole cents so
// every implementation of this bill agrees to the cent.
const (
	ServiceChargeCentsPerUnit int64 = 200 // 2 currency units per line unit
	GSTRateBasisPoints        int64 = 500 // 5%
)

type BillLine struct {
	UnitPriceCents int64
	Quantity       int64
}

type Bill struct {
	SubtotalCents      int64
	ServiceChargeCents int64
	GSTCents           int64
	DiscountCents      int64
	TotalCents         int64
}

// CalculateBill prices a cart. Pure function: no I/O, deterministic, and an
// empty cart yields the zero bill rather than an error. The total floors at
// zero even when the discount overshoots subtotal plus charges.
func CalculateBill(lines []BillLine, discount *coupon.Discount) Bill {
	var subtotal, totalQuantity int64
	for _, line := range lines {
		subtotal += line.UnitPriceCents * line.Quantity
		totalQuantity += line.Quantity
	}

	serviceCharge := totalQuantity * ServiceChargeCentsPerUnit
	gst := roundHalfUpBasisPoints(subtotal, GSTRateBasisPoints)

	var discountCents int64
	if discount != nil {
		discountCents = discount.CentsFor(subtotal)
	}

	total := subtotal + serviceCharge + gst - discountCents
	if total < 0 {
		total = 0
	}

	return Bill{
		SubtotalCents:      subtotal,
		ServiceChargeCents: serviceCharge,
		GSTCents:           gst,
		DiscountCents:      discountCents,
		TotalCents:         total,
	}
}

func roundHalfUpBasisPoints(amountCents, basisPoints int64) int64 {
	return int64(math.Floor(float64(amountCents)*float64(basisPoints)/10000.0 + 0.5))
}
