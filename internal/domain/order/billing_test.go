//go:build unit

package order_test

import (
	"testing"

	"canteen-core/internal/domain/coupon"
	"canteen-core/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalculateBill(t *testing.T) {
	t.Run("empty cart yields zero bill", func(t *testing.T) {
		bill := order.CalculateBill(nil, nil)
		assert.Equal(t, order.Bill{}, bill)
	})

	t.Run("no coupon", func(t *testing.T) {
		// 2 units of 100.00 each: subtotal 200.00, service 2x2.00, GST 5%
		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 10000, Quantity: 2},
		}, nil)

		assert.Equal(t, int64(20000), bill.SubtotalCents)
		assert.Equal(t, int64(400), bill.ServiceChargeCents)
		assert.Equal(t, int64(1000), bill.GSTCents)
		assert.Equal(t, int64(0), bill.DiscountCents)
		assert.Equal(t, int64(21400), bill.TotalCents)
	})

	t.Run("flat coupon", func(t *testing.T) {
		discount, err := coupon.NewFlatDiscount(1500, nil)
		require.NoError(t, err)

		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 10000, Quantity: 2},
		}, &discount)

		assert.Equal(t, int64(1500), bill.DiscountCents)
		assert.Equal(t, int64(19900), bill.TotalCents)
	})

	t.Run("percentage coupon clamped to max discount", func(t *testing.T) {
		discount, err := coupon.NewPercentageDiscount(10, int64Ptr(500))
		require.NoError(t, err)

		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 10000, Quantity: 2},
		}, &discount)

		// 10% of 200.00 is 20.00, capped at 5.00
		assert.Equal(t, int64(500), bill.DiscountCents)
		assert.Equal(t, int64(20900), bill.TotalCents)
	})

	t.Run("percentage discount rounds half up", func(t *testing.T) {
		discount, err := coupon.NewPercentageDiscount(5, nil)
		require.NoError(t, err)

		// 5% of 9.99 is 49.95 paise, rounds to 50
		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 999, Quantity: 1},
		}, &discount)

		assert.Equal(t, int64(50), bill.DiscountCents)
	})

	t.Run("gst rounds half up", func(t *testing.T) {
		// 5% of 10.10 is 50.5 paise, rounds to 51
		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 1010, Quantity: 1},
		}, nil)

		assert.Equal(t, int64(51), bill.GSTCents)
	})

	t.Run("oversized discount floors total at zero", func(t *testing.T) {
		discount, err := coupon.NewFlatDiscount(100000, nil)
		require.NoError(t, err)

		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 500, Quantity: 1},
		}, &discount)

		assert.Equal(t, int64(100000), bill.DiscountCents)
		assert.Equal(t, int64(0), bill.TotalCents)
	})

	t.Run("service charge is per unit not per line", func(t *testing.T) {
		bill := order.CalculateBill([]order.BillLine{
			{UnitPriceCents: 1000, Quantity: 3},
			{UnitPriceCents: 2000, Quantity: 1},
		}, nil)

		assert.Equal(t, int64(4*order.ServiceChargeCentsPerUnit), bill.ServiceChargeCents)
	})
}
