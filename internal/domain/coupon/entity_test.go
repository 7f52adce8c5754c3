//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"canteen-core/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64         { return &v }
func timePtr(t time.Time) *time.Time  { return &t }
func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func validSpec() coupon.Spec {
	return coupon.Spec{
		ID:       uuid.New(),
		Code:     "WELCOME10",
		Type:     coupon.TypePercentage,
		Value:    10,
		IsActive: true,
	}
}

func TestNewCouponCode(t *testing.T) {
	t.Run("normalizes to upper case", func(t *testing.T) {
		code, err := coupon.NewCouponCode("  welcome10 ")
		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", code.String())
	})

	t.Run("rejects invalid formats", func(t *testing.T) {
		for _, raw := range []string{"", "AB", "HAS SPACE", "WAY-TOO-LONG-FOR-A-COUPON-CODE", "emoji🍛"} {
			_, err := coupon.NewCouponCode(raw)
			assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode, "code %q", raw)
		}
	})
}

func TestNewCoupon(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		c, err := coupon.NewCoupon(validSpec())
		require.NoError(t, err)
		assert.True(t, c.Discount().IsPercentage())
		assert.Equal(t, 10.0, c.Discount().PercentOff())
	})

	t.Run("flat", func(t *testing.T) {
		spec := validSpec()
		spec.Type = coupon.TypeFlat
		spec.Value = 1500

		c, err := coupon.NewCoupon(spec)
		require.NoError(t, err)
		assert.True(t, c.Discount().IsFlat())
		assert.Equal(t, int64(1500), c.Discount().FlatOffCents())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		spec := validSpec()
		spec.Type = "bogo"
		_, err := coupon.NewCoupon(spec)
		assert.Error(t, err)
	})

	t.Run("rejects percentage over 100", func(t *testing.T) {
		spec := validSpec()
		spec.Value = 150
		_, err := coupon.NewCoupon(spec)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
	})
}

func TestValidateRedemption(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	canteenID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*coupon.Spec)
		errIs  error
	}{
		{"valid", func(*coupon.Spec) {}, nil},
		{
			"inactive",
			func(s *coupon.Spec) { s.IsActive = false },
			coupon.ErrCouponInactive,
		},
		{
			"not yet valid",
			func(s *coupon.Spec) { s.StartsAt = timePtr(now.Add(time.Hour)) },
			coupon.ErrCouponNotYetValid,
		},
		{
			"expired",
			func(s *coupon.Spec) { s.ExpiresAt = timePtr(now.Add(-time.Hour)) },
			coupon.ErrCouponExpired,
		},
		{
			"usage limit reached",
			func(s *coupon.Spec) { s.UsageLimit = int64Ptr(5); s.UsageCount = 5 },
			coupon.ErrUsageLimitReached,
		},
		{
			"usage below limit",
			func(s *coupon.Spec) { s.UsageLimit = int64Ptr(5); s.UsageCount = 4 },
			nil,
		},
		{
			"scoped to another canteen",
			func(s *coupon.Spec) { s.CanteenID = uuidPtr(uuid.New()) },
			coupon.ErrWrongCanteen,
		},
		{
			"scoped to the right canteen",
			func(s *coupon.Spec) { s.CanteenID = uuidPtr(canteenID) },
			nil,
		},
		{
			"inside the validity window",
			func(s *coupon.Spec) {
				s.StartsAt = timePtr(now.Add(-time.Hour))
				s.ExpiresAt = timePtr(now.Add(time.Hour))
			},
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)

			c, err := coupon.NewCoupon(spec)
			require.NoError(t, err)

			err = c.ValidateRedemption(now, canteenID)
			if tc.errIs == nil {
				assert.NoError(t, err)
				assert.True(t, c.IsValidAt(now))
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestDiscountCentsFor(t *testing.T) {
	t.Run("flat exceeding subtotal is returned untouched", func(t *testing.T) {
		d, err := coupon.NewFlatDiscount(5000, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), d.CentsFor(1000))
	})

	t.Run("percentage rounds half up", func(t *testing.T) {
		d, err := coupon.NewPercentageDiscount(15, nil)
		require.NoError(t, err)
		// 15% of 10.10 is 151.5 paise
		assert.Equal(t, int64(152), d.CentsFor(1010))
	})

	t.Run("cap clamps both kinds", func(t *testing.T) {
		flat, err := coupon.NewFlatDiscount(5000, int64Ptr(2000))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), flat.CentsFor(100000))

		pct, err := coupon.NewPercentageDiscount(50, int64Ptr(2000))
		require.NoError(t, err)
		assert.Equal(t, int64(2000), pct.CentsFor(100000))
	})
}
