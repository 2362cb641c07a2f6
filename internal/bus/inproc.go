package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Inproc is the in-process emitter backend. All sessions sharing the same
// Inproc instance form one origin; it doubles as the test transport.
// Messages are round-tripped through JSON so receivers never alias the
// publisher's memory, exactly as with a real wire.
type Inproc struct {
	mu       sync.Mutex
	closed   bool
	nextID   int
	handlers map[int]Handler
}

func NewInproc() *Inproc {
	return &Inproc{handlers: make(map[int]Handler)}
}

func (b *Inproc) Publish(_ context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode bus message: %w", err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("bus is closed")
	}
	hs := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	// Sequential delivery preserves per-receiver arrival order. The
	// sender's own handler is included.
	for _, h := range hs {
		var m Message
		if err := json.Unmarshal(payload, &m); err != nil {
			return fmt.Errorf("decode bus message: %w", err)
		}
		h(m)
	}
	return nil
}

func (b *Inproc) Subscribe(h Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("bus is closed")
	}
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}, nil
}

func (b *Inproc) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[int]Handler)
	return nil
}
