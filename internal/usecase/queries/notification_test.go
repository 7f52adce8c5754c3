//go:build unit

package queries_test

import (
	"testing"

	"canteen-core/internal/notify"
	"canteen-core/internal/usecase/queries"
	queriesmock "canteen-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotificationListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	inbox := queriesmock.NewMockInboxReader(ctrl)
	sut := queries.NewNotificationQueries(inbox)

	userID := uuid.New()
	stored := []notify.Notification{{UserID: userID, Title: "Order ready"}}

	inbox.EXPECT().ListByUser(userID).Return(stored)

	assert.Equal(t, stored, sut.ListByUser(userID))
}
