// Package events is a small in-process event bus. Emission is synchronous:
// Emit runs every handler in subscription order and returns only after all of
// them have completed, which is what the extension registry relies on for its
// ordering guarantee (listeners of registration N finish before extension N+1
// starts).
package events

import (
	"context"
	"sync"
)

// Handler processes an emitted event. A handler may block; Emit waits for it.
type Handler func(ctx context.Context, payload interface{}) error

// Bus dispatches named events to subscribed handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers h for the named event.
func (b *Bus) Subscribe(event string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], h)
}

// Emit dispatches payload to all handlers of the named event, one at a time in
// subscription order. The first handler error stops dispatch and is returned.
func (b *Bus) Emit(ctx context.Context, event string, payload interface{}) error {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[event]...)
	b.mu.RUnlock()
	for _, h := range hs {
		if err := h(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}
