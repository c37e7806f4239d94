package alloc

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Tracking is an allocator which accounts for every outstanding block.
// It is meant for tests and diagnostics: misuse such as double frees,
// deallocation with a wrong count or deallocation of blocks still holding
// live values is recorded and reported by Verify.
type Tracking[T any] struct {
	// Base is the underlying allocator, Heap if nil.
	Base Allocator[T]
	// Pristine, if set, is consulted for every slot of a block being
	// deallocated. It should report whether the slot has been destroyed,
	// i.e. holds the zero value. See ZeroCheck.
	Pristine func(*T) bool
	live     map[*T]int
	allocs   int
	deallocs int
	units    int
	problems []error
}

// NewTracking creates a tracking allocator on top of Heap.
func NewTracking[T any]() *Tracking[T] {
	return &Tracking[T]{Base: Heap[T]{}}
}

// ZeroCheck returns a Pristine function for comparable element types.
func ZeroCheck[T comparable]() func(*T) bool {
	return func(slot *T) bool {
		var zero T
		return *slot == zero
	}
}

func (tr *Tracking[T]) base() Allocator[T] {
	if tr.Base == nil {
		return Heap[T]{}
	}
	return tr.Base
}

// Allocate allocates n slots from the base allocator and records the block.
func (tr *Tracking[T]) Allocate(n int) ([]T, error) {
	block, err := Checked(tr.base(), n)
	if err != nil || n == 0 {
		return block, err
	}
	if tr.live == nil {
		tr.live = make(map[*T]int)
	}
	tr.live[&block[0]] = n
	tr.allocs++
	tr.units += n
	return block, nil
}

// Deallocate checks and forgets a block, then hands it to the base allocator.
func (tr *Tracking[T]) Deallocate(block []T, n int) {
	if len(block) == 0 {
		return
	}
	key := &block[0]
	size, ok := tr.live[key]
	if !ok {
		tr.problems = append(tr.problems, fmt.Errorf("%w: %p (%d slots)", ErrForeignBlock, key, n))
		tracer().Errorf("alloc: deallocation of unknown block %p", key)
		return
	}
	if size != n {
		tr.problems = append(tr.problems, fmt.Errorf("%w: block %p allocated with %d, released with %d",
			ErrSizeMismatch, key, size, n))
	}
	if tr.Pristine != nil {
		for i := range block[:size] {
			if !tr.Pristine(&block[i]) {
				tr.problems = append(tr.problems, fmt.Errorf("%w: block %p slot %d", ErrUndestroyed, key, i))
				break
			}
		}
	}
	delete(tr.live, key)
	tr.deallocs++
	tr.units -= size
	tr.base().Deallocate(block, size)
}

// Live returns the number of outstanding blocks.
func (tr *Tracking[T]) Live() int {
	return len(tr.live)
}

// LiveSlots returns the number of slots in outstanding blocks.
func (tr *Tracking[T]) LiveSlots() int {
	return tr.units
}

// Allocations returns the number of successful non-empty allocations.
func (tr *Tracking[T]) Allocations() int {
	return tr.allocs
}

// Deallocations returns the number of accepted deallocations.
func (tr *Tracking[T]) Deallocations() int {
	return tr.deallocs
}

// Verify reports every recorded misuse, followed by one error per leaked
// block. It returns nil if the allocator is balanced and clean.
func (tr *Tracking[T]) Verify() error {
	var result *multierror.Error
	for _, p := range tr.problems {
		result = multierror.Append(result, p)
	}
	for key, n := range tr.live {
		result = multierror.Append(result, fmt.Errorf("%w: %p (%d slots)", ErrLeak, key, n))
	}
	return result.ErrorOrNil()
}
