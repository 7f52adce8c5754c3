//go:build unit

package notify_test

import (
	"fmt"
	"testing"
	"time"

	"canteen-core/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("newest first", func(t *testing.T) {
		inbox := notify.NewInbox(10)
		for i := 0; i < 3; i++ {
			inbox.Push(notify.Notification{
				UserID:    userID,
				Title:     fmt.Sprintf("n%d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
		}

		got := inbox.ListByUser(userID)
		require.Len(t, got, 3)
		assert.Equal(t, "n2", got[0].Title)
		assert.Equal(t, "n0", got[2].Title)
	})

	t.Run("capacity rotates out oldest", func(t *testing.T) {
		inbox := notify.NewInbox(2)
		for i := 0; i < 5; i++ {
			inbox.Push(notify.Notification{UserID: userID, Title: fmt.Sprintf("n%d", i)})
		}

		got := inbox.ListByUser(userID)
		require.Len(t, got, 2)
		assert.Equal(t, "n4", got[0].Title)
		assert.Equal(t, "n3", got[1].Title)
	})

	t.Run("users are isolated", func(t *testing.T) {
		inbox := notify.NewInbox(10)
		inbox.Push(notify.Notification{UserID: userID, Title: "mine"})

		assert.Empty(t, inbox.ListByUser(uuid.New()))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		inbox := notify.NewInbox(10)
		inbox.Push(notify.Notification{UserID: userID, Title: "original"})

		got := inbox.ListByUser(userID)
		got[0].Title = "mutated"

		assert.Equal(t, "original", inbox.ListByUser(userID)[0].Title)
	})
}
