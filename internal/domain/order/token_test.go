//go:build unit

package order_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"canteen-core/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^CTN-\d{7}$`)

func TestGeneratePickupToken(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		token, err := order.GeneratePickupToken(now)
		require.NoError(t, err)
		assert.Regexp(t, tokenPattern, token)
	})

	t.Run("time-derived digits are stable for a fixed instant", func(t *testing.T) {
		expected := fmt.Sprintf("%04d", now.Unix()%10000)

		token, err := order.GeneratePickupToken(now)
		require.NoError(t, err)
		assert.Equal(t, expected, token[4:8])
	})

	t.Run("random suffix varies", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			token, err := order.GeneratePickupToken(now)
			require.NoError(t, err)
			seen[token] = struct{}{}
		}
		// 100 draws from 1000 suffixes collide sometimes but never collapse
		// to a handful of values.
		assert.Greater(t, len(seen), 50)
	})
}
