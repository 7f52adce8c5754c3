package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInboxCapacity bounds the per-user record list. Old entries rotate
// out; the inbox is best-effort and not persisted across restarts.
const DefaultInboxCapacity = 50

type Notification struct {
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OrderID   uuid.UUID `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Inbox keeps the most recent notifications per user in memory. It replaces
// an unbounded process-global list with a bounded per-user ring.
type Inbox struct {
	mu       sync.RWMutex
	byUser   map[uuid.UUID][]Notification
	capacity int
}

func NewInbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultInboxCapacity
	}
	return &Inbox{
		byUser:   make(map[uuid.UUID][]Notification),
		capacity: capacity,
	}
}

func (i *Inbox) Push(n Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()

	list := append(i.byUser[n.UserID], n)
	if len(list) > i.capacity {
		list = list[len(list)-i.capacity:]
	}
	i.byUser[n.UserID] = list
}

// ListByUser returns the user's notifications, newest first.
func (i *Inbox) ListByUser(userID uuid.UUID) []Notification {
	i.mu.RLock()
	defer i.mu.RUnlock()

	list := i.byUser[userID]
	out := make([]Notification, len(list))
	for idx, n := range list {
		out[len(list)-1-idx] = n
	}
	return out
}
