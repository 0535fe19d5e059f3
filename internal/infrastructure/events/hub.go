package events

import (
	"context"
	"sync"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"
)

// SubscriptionBuffer is how many undelivered snapshots a subscriber may lag
// behind before the oldest one is dropped.
const SubscriptionBuffer = 8

// Hub fans quote snapshots out to in-process subscribers keyed by quote id.
// Publishing never blocks on a slow reader.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[*Subscription]struct{}
	closed bool
}

var (
	_ interfaces.IQuoteEventBus   = (*Hub)(nil)
	_ interfaces.IQuoteSubscriber = (*Hub)(nil)
)

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

func (h *Hub) Subscribe(quoteID string) interfaces.ISubscription {
	s := &Subscription{hub: h, quoteID: quoteID, ch: make(chan entities.Quote, SubscriptionBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		s.closeLocked()
		return s
	}
	set, ok := h.subs[quoteID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[quoteID] = set
	}
	set[s] = struct{}{}
	return s
}

// Publish delivers the snapshot to every subscriber of the quote. A deleted
// quote gets its final snapshot and then all of its streams are closed.
func (h *Hub) Publish(_ context.Context, e entities.QuoteEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[e.Quote.ID]
	for s := range set {
		s.offer(e.Quote)
	}
	if e.Type == entities.QuoteEventDeleted {
		for s := range set {
			s.closeLocked()
		}
		delete(h.subs, e.Quote.ID)
	}
	return nil
}

// Shutdown closes every open stream and makes later subscriptions start
// closed. Readers see their channel close as they do for a deleted quote.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, set := range h.subs {
		for s := range set {
			s.closeLocked()
		}
		delete(h.subs, id)
	}
}

// Subscribers reports the number of open streams for a quote.
func (h *Hub) Subscribers(quoteID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[quoteID])
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[s.quoteID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	s.closeLocked()
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.quoteID)
	}
}

// Subscription is one live snapshot stream. All state changes happen under
// the hub lock.
type Subscription struct {
	hub     *Hub
	quoteID string
	ch      chan entities.Quote
	closed  bool
}

var _ interfaces.ISubscription = (*Subscription)(nil)

func (s *Subscription) C() <-chan entities.Quote { return s.ch }

// Close is idempotent.
func (s *Subscription) Close() { s.hub.remove(s) }

func (s *Subscription) offer(q entities.Quote) {
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- q:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *Subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
