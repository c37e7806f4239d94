package alloc

import (
	"context"

	"github.com/guiguan/caster"
)

// EventKind classifies allocation events.
type EventKind uint8

// Kinds of allocation events published by a Monitor.
const (
	Allocated EventKind = iota
	Released
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Allocated:
		return "allocated"
	case Released:
		return "released"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Event is published by a Monitor for every allocator call.
type Event struct {
	Kind  EventKind
	Slots int   // number of slots requested or released
	Err   error // set for Failed events
}

// Monitor wraps an allocator and broadcasts an Event for every call to all
// subscribers. Delivery is asynchronous; events reach a subscriber in the
// order the calls were made.
//
// A Monitor owns background goroutines and must be closed.
type Monitor[T any] struct {
	base Allocator[T]
	cast *caster.Caster
}

// NewMonitor wraps base (Heap if nil). Cancelling ctx closes the monitor.
func NewMonitor[T any](ctx context.Context, base Allocator[T]) *Monitor[T] {
	if base == nil {
		base = Heap[T]{}
	}
	return &Monitor[T]{
		base: base,
		cast: caster.New(ctx),
	}
}

// Subscribe returns a channel receiving Event values. capacity sets the
// channel buffer. The channel is closed when the monitor is closed or ctx
// is done. Subscribe returns false if the monitor is already closed.
func (m *Monitor[T]) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return m.cast.Sub(ctx, capacity)
}

// Unsubscribe detaches and closes a channel obtained from Subscribe.
func (m *Monitor[T]) Unsubscribe(ch chan interface{}) bool {
	return m.cast.Unsub(ch)
}

// Close stops broadcasting and closes all subscriber channels.
func (m *Monitor[T]) Close() {
	m.cast.Close()
}

// Allocate forwards to the wrapped allocator and publishes the outcome.
func (m *Monitor[T]) Allocate(n int) ([]T, error) {
	block, err := m.base.Allocate(n)
	if err != nil {
		m.cast.Pub(Event{Kind: Failed, Slots: n, Err: err})
		return nil, err
	}
	m.cast.Pub(Event{Kind: Allocated, Slots: n})
	return block, nil
}

// Deallocate forwards to the wrapped allocator and publishes a Released event.
func (m *Monitor[T]) Deallocate(block []T, n int) {
	m.base.Deallocate(block, n)
	m.cast.Pub(Event{Kind: Released, Slots: n})
}
