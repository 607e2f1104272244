// Package feed provides the in-process comment feed hub backing live comment
// subscriptions.
package feed

import (
	"sync"

	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/logger"
)

// Hub is an in-memory fan-out of comment activity keyed by ticket ID.
// Callbacks must be fast and must not call Unsubscribe from within
// themselves.
type Hub struct {
	logger logger.Interface

	mu     sync.RWMutex
	nextID uint64
	subs   map[uint]map[uint64]*subscription
}

func NewHub(logger logger.Interface) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[uint]map[uint64]*subscription),
	}
}

func (h *Hub) Subscribe(ticketID uint, notify func()) ticket.FeedSubscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &subscription{
		hub:      h,
		ticketID: ticketID,
		id:       h.nextID,
		notify:   notify,
	}

	if h.subs[ticketID] == nil {
		h.subs[ticketID] = make(map[uint64]*subscription)
	}
	h.subs[ticketID][sub.id] = sub

	h.logger.Debugw("feed subscription opened", "ticket_id", ticketID, "subscription_id", sub.id)
	return sub
}

func (h *Hub) Publish(ticketID uint) {
	h.mu.RLock()
	targets := make([]*subscription, 0, len(h.subs[ticketID]))
	for _, sub := range h.subs[ticketID] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	for _, sub := range targets {
		sub.deliver()
	}
}

func (h *Hub) remove(ticketID uint, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subs[ticketID]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(h.subs, ticketID)
		}
	}
}

type subscription struct {
	hub      *Hub
	ticketID uint
	id       uint64
	notify   func()

	// mu serializes deliver and Unsubscribe so that no callback begins
	// after Unsubscribe has returned.
	mu     sync.Mutex
	closed bool
}

func (s *subscription) deliver() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.notify()
}

// Unsubscribe cancels the subscription. It is safe to call more than once,
// and once it returns no further callback will start.
func (s *subscription) Unsubscribe() {
	s.hub.remove(s.ticketID, s.id)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
