package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory signals that an allocator could not satisfy a request.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrInvalidRequest signals a malformed allocation request, e.g. a negative count.
	ErrInvalidRequest = errors.New("alloc: invalid request")
	// ErrShortBlock signals that an allocator returned fewer slots than requested.
	ErrShortBlock = errors.New("alloc: allocator returned short block")
	// ErrForeignBlock signals deallocation of a block the allocator does not own,
	// including double frees.
	ErrForeignBlock = errors.New("alloc: block not owned by allocator")
	// ErrSizeMismatch signals deallocation with a count different from the
	// count the block was allocated with.
	ErrSizeMismatch = errors.New("alloc: deallocation count mismatch")
	// ErrUndestroyed signals deallocation of a block still holding live values.
	ErrUndestroyed = errors.New("alloc: block deallocated with live slots")
	// ErrLeak signals a block which has never been deallocated.
	ErrLeak = errors.New("alloc: block leaked")
)

// Failure is returned when an allocation request cannot be satisfied.
// It carries the requested slot count and the count still available
// (-1 if unknown). Failure matches ErrOutOfMemory with errors.Is.
type Failure struct {
	Requested int
	Available int
}

func (f *Failure) Error() string {
	if f.Available < 0 {
		return fmt.Sprintf("%s: requested %d slots", ErrOutOfMemory, f.Requested)
	}
	return fmt.Sprintf("%s: requested %d slots, %d available", ErrOutOfMemory,
		f.Requested, f.Available)
}

func (f *Failure) Unwrap() error {
	return ErrOutOfMemory
}
