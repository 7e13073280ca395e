package notification

import (
	"context"
	"sync"

	"qa-board-sync/internal/model"
	"qa-board-sync/pkg/log"
)

// subscriberBuffer bounds each subscriber channel; a subscriber that
// falls this far behind starts losing events rather than blocking the
// publisher.
const subscriberBuffer = 16

// Hub is the process-wide notification broker. It is constructed once
// and injected; it holds no state outside the running process, so a
// user connected to a different instance will not receive the event.
// Multi-instance deployments must replace it with a shared broker
// behind the same Publish/Subscribe surface.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan model.Notification]struct{}
	l    log.Logger
}

// NewHub creates an empty hub.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[chan model.Notification]struct{}),
		l:    l,
	}
}

// Subscribe registers a channel for one user and returns it with its
// unsubscribe function. Unsubscribe must be called the moment the
// consuming connection closes; subscriptions are cleaned up explicitly,
// never left to the garbage collector.
func (h *Hub) Subscribe(userID string) (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan model.Notification]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], ch)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Publish delivers to every open channel whose userID matches exactly.
// Sends never block: a full subscriber drops the event.
func (h *Hub) Publish(n model.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[n.UserID] {
		select {
		case ch <- n:
		default:
			h.l.Warnf(context.Background(), "hub: dropping notification %s for slow subscriber of user %s", n.ID, n.UserID)
		}
	}
}

// Subscribers reports how many channels a user currently has open.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
