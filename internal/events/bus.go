// Package events implements the synchronous named-event registry the poller
// publishes weather changes on.
package events

import "sync"

// Handler receives the new value of a changed attribute.
type Handler func(payload any)

// Bus is a registry of named-event subscribers. Emit invokes subscribers
// synchronously, in subscription order; nothing is persisted between events.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Emit delivers payload to every subscriber of name. Events with no
// subscribers are dropped.
func (b *Bus) Emit(name string, payload any) {
	b.mu.RLock()
	handlers := b.handlers[name]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}
