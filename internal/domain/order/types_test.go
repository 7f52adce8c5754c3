//go:build unit

package order_test

import (
	"testing"
	"time"

	"canteen-core/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"pending to cooking", order.StatusPending, order.StatusCooking, true},
		{"pending skips to ready", order.StatusPending, order.StatusReady, true},
		{"pending to delivered", order.StatusPending, order.StatusDelivered, true},
		{"pending to rejected", order.StatusPending, order.StatusRejected, true},
		{"cooking to ready", order.StatusCooking, order.StatusReady, true},
		{"cooking to cancelled", order.StatusCooking, order.StatusCancelled, true},
		{"ready to delivered", order.StatusReady, order.StatusDelivered, true},
		{"ready back to cooking", order.StatusReady, order.StatusCooking, true},
		{"nothing re-enters pending", order.StatusCooking, order.StatusPending, false},
		{"delivered is terminal", order.StatusDelivered, order.StatusCooking, false},
		{"cancelled is terminal", order.StatusCancelled, order.StatusReady, false},
		{"rejected is terminal", order.StatusRejected, order.StatusDelivered, false},
		{"invalid target", order.StatusPending, order.Status("Burnt"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusRejected.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusCooking.IsTerminal())
	assert.False(t, order.StatusReady.IsTerminal())
}

func TestStatusCancellableByOwner(t *testing.T) {
	assert.True(t, order.StatusPending.CancellableByOwner())
	assert.True(t, order.StatusCooking.CancellableByOwner())
	assert.False(t, order.StatusReady.CancellableByOwner())
	assert.False(t, order.StatusDelivered.CancellableByOwner())
	assert.False(t, order.StatusCancelled.CancellableByOwner())
}

func TestNewStatus(t *testing.T) {
	status, err := order.NewStatus("Cooking")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCooking, status)

	_, err = order.NewStatus("cooking")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestTimelineStamp(t *testing.T) {
	first := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	second := first.Add(10 * time.Minute)

	t.Run("stamps each status once", func(t *testing.T) {
		var tl order.Timeline

		tl.Stamp(order.StatusCooking, first)
		tl.Stamp(order.StatusCooking, second)

		require.NotNil(t, tl.CookingAt)
		assert.Equal(t, first, *tl.CookingAt)
	})

	t.Run("cancelled and rejected share a field", func(t *testing.T) {
		var tl order.Timeline

		tl.Stamp(order.StatusRejected, first)
		tl.Stamp(order.StatusCancelled, second)

		require.NotNil(t, tl.CancelledAt)
		assert.Equal(t, first, *tl.CancelledAt)
		assert.Equal(t, &first, tl.StampedAt(order.StatusCancelled))
	})

	t.Run("skipped steps stay nil", func(t *testing.T) {
		var tl order.Timeline

		tl.Stamp(order.StatusPending, first)
		tl.Stamp(order.StatusReady, second)

		assert.Nil(t, tl.CookingAt)
		assert.Nil(t, tl.DeliveredAt)
		require.NotNil(t, tl.PendingAt)
		require.NotNil(t, tl.ReadyAt)
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		var tl order.Timeline
		tl.Stamp(order.Status("Burnt"), first)
		assert.Nil(t, tl.StampedAt(order.Status("Burnt")))
	})
}
