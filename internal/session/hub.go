// Package session fans out sign-in and sign-out notifications to in-process listeners.
package session

import (
	"sync"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

// Event is one session change. Session is nil only for anonymous sign-outs.
type Event struct {
	Kind    EventKind
	Session *domain.Session
}

// Hub is safe for concurrent use. Listeners run synchronously on the
// publishing goroutine, outside the hub lock.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]func(Event)
}

func NewHub() *Hub {
	return &Hub{subs: map[uint64]func(Event){}}
}

// Subscription is released with Unsubscribe. Releasing twice is a no-op.
type Subscription struct {
	hub  *Hub
	id   uint64
	once sync.Once
}

// Subscribe registers fn for every later Publish.
func (h *Hub) Subscribe(fn func(Event)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.subs[h.nextID] = fn
	return &Subscription{hub: h, id: h.nextID}
}

func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}

// Publish delivers e to the current listeners.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	listeners := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		listeners = append(listeners, fn)
	}
	h.mu.RUnlock()

	for _, fn := range listeners {
		fn(e)
	}
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
