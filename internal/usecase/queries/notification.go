package queries

import (
	"canteen-core/internal/notify"

	"github.com/google/uuid"
)

type InboxReader interface {
	ListByUser(userID uuid.UUID) []notify.Notification
}

type NotificationQueries interface {
	ListByUser(userID uuid.UUID) []notify.Notification
}

type notificationQueriesImpl struct {
	inbox InboxReader
}

func NewNotificationQueries(inbox InboxReader) NotificationQueries {
	return &notificationQueriesImpl{inbox: inbox}
}

func (q *notificationQueriesImpl) ListByUser(userID uuid.UUID) []notify.Notification {
	return q.inbox.ListByUser(userID)
}
