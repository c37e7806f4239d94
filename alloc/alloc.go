package alloc

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unsafe"
)

// Allocator is the allocation capability consumed by the stores.
//
// Allocate returns a block of exactly n slots, every slot holding the zero
// value of T. A request for 0 slots returns a nil block. Deallocate takes back
// a block previously returned by Allocate, together with the count it was
// requested with. Clients must have destroyed every slot of the block before
// calling Deallocate.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T, n int)
}

// Heap is an allocator delegating to the Go runtime. It is the default
// allocator of all stores. Deallocate leaves reclamation to the garbage
// collector.
type Heap[T any] struct{}

// Allocate allocates n zeroed slots. Requests beyond MaxSlots fail with
// *Failure.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrInvalidRequest, n)
	}
	if n == 0 {
		return nil, nil
	}
	if n > MaxSlots[T]() {
		tracer().Errorf("alloc: request for %d slots exceeds address space", n)
		return nil, &Failure{Requested: n, Available: -1}
	}
	return make([]T, n), nil
}

// maxHeapBytes is the largest block the Go runtime will hand out: the
// address space on 64-bit platforms, MaxInt on 32-bit ones.
func maxHeapBytes() uint64 {
	if strconv.IntSize == 32 {
		return math.MaxInt32
	}
	return 1 << 48
}

// MaxSlots returns the largest number of slots of type T a single block
// can hold.
func MaxSlots[T any]() int {
	var zero T
	size := max(1, uint64(unsafe.Sizeof(zero)))
	return int(maxHeapBytes() / size)
}

// Deallocate is a no-op for heap blocks.
func (Heap[T]) Deallocate([]T, int) {}

// Same reports whether two allocators are the same allocator instance, i.e.
// whether a block allocated through a may be released through b.
//
// Allocators of uncomparable dynamic type are never considered the same,
// unless both are nil.
func Same[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Checked calls a.Allocate and verifies the block length. A short block is
// handed back to a and reported as ErrShortBlock.
func Checked[T any](a Allocator[T], n int) ([]T, error) {
	block, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	if len(block) != n {
		if len(block) > 0 {
			a.Deallocate(block, len(block))
		}
		return nil, fmt.Errorf("%w: got %d slots, requested %d", ErrShortBlock, len(block), n)
	}
	return block[:n:n], nil
}

// --- Limited ---------------------------------------------------------------

// Limited wraps an allocator with a budget of slots. Requests exceeding the
// remaining budget fail with *Failure. Deallocation returns slots to the budget.
type Limited[T any] struct {
	Base   Allocator[T] // underlying allocator, Heap if nil
	Budget int          // total number of slots which may be outstanding
	used   int
}

// NewLimited creates a limited allocator on top of Heap.
func NewLimited[T any](budget int) *Limited[T] {
	return &Limited[T]{Base: Heap[T]{}, Budget: budget}
}

// Allocate allocates n slots if the budget permits.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrInvalidRequest, n)
	}
	if l.used+n > l.Budget {
		tracer().Debugf("alloc: budget exhausted, requested %d of %d remaining", n, l.Budget-l.used)
		return nil, &Failure{Requested: n, Available: l.Budget - l.used}
	}
	base := l.Base
	if base == nil {
		base = Heap[T]{}
	}
	block, err := Checked(base, n)
	if err != nil {
		return nil, err
	}
	l.used += n
	return block, nil
}

// Deallocate releases a block and credits its slots to the budget.
func (l *Limited[T]) Deallocate(block []T, n int) {
	if n <= 0 {
		return
	}
	l.used -= n
	if l.Base != nil {
		l.Base.Deallocate(block, n)
	}
}

// Used returns the number of slots currently outstanding.
func (l *Limited[T]) Used() int {
	return l.used
}
