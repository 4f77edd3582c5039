// Package events fans structural changes out to subscribers.
package events

import (
	"context"
	"sync"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/logging"
)

// Listener receives a structural change.
type Listener func(ctx context.Context, change port.StructuralChange)

// Bus implements port.ChangeNotifier by calling every subscriber in
// subscription order on the notifying goroutine.
type Bus struct {
	mu        sync.RWMutex
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
}

var _ port.ChangeNotifier = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[uint64]Listener)}
}

// Subscribe registers l and returns a function that removes it.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Notify delivers change to a snapshot of the current subscribers, so a
// listener may unsubscribe itself while being called.
func (b *Bus) Notify(ctx context.Context, change port.StructuralChange) {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		listeners = append(listeners, b.listeners[id])
	}
	b.mu.RUnlock()

	logging.FromContext(ctx).Trace().
		Str("kind", string(change.Kind)).
		Int("listeners", len(listeners)).
		Msg("structural change")

	for _, l := range listeners {
		l(ctx, change)
	}
}

// Channel returns a listener that forwards changes to ch without blocking.
// Changes are dropped while ch is full; a renderer only needs to know that
// something changed.
func Channel(ch chan<- port.StructuralChange) Listener {
	return func(_ context.Context, change port.StructuralChange) {
		select {
		case ch <- change:
		default:
		}
	}
}
