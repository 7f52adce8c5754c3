package notify

import (
	"log/slog"
	"sync"
)

// Hub fans lifecycle events out to in-process subscribers grouped by topic.
// It is handed to the order usecases as an explicit dependency, never held as
// a package-level singleton. Publish never blocks: a subscriber whose buffer
// is full drops the event.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*subscriber
	buffer int
}

type subscriber struct {
	ch     chan Event
	topics map[string]struct{}
}

func NewHub(subscriberBuffer int) *Hub {
	if subscriberBuffer <= 0 {
		subscriberBuffer = 16
	}
	return &Hub{
		subs:   make(map[uint64]*subscriber),
		buffer: subscriberBuffer,
	}
}

// Subscribe registers interest in the given topics. An empty topic list
// subscribes to everything. The returned cancel func must be called when the
// viewer disconnects.
func (h *Hub) Subscribe(topics []string) (<-chan Event, func()) {
	sub := &subscriber{
		ch:     make(chan Event, h.buffer),
		topics: make(map[string]struct{}, len(topics)),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = sub
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if s, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(s.ch)
		}
		h.mu.Unlock()
	}
	return sub.ch, cancel
}

// Publish delivers the event to subscribers matching any of the topics.
// Publishing with no topics broadcasts to every subscriber.
func (h *Hub) Publish(event Event, topics ...string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.matches(topics) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Slow consumer: drop rather than stall the publisher.
			slog.Debug("dropping event for slow subscriber", "kind", event.Kind, "order_id", event.OrderID)
		}
	}
}

// SubscriberCount is used by tests and the health surface.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (s *subscriber) matches(topics []string) bool {
	if len(topics) == 0 || len(s.topics) == 0 {
		return true
	}
	for _, t := range topics {
		if _, ok := s.topics[t]; ok {
			return true
		}
	}
	return false
}
