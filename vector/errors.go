package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid vector configuration.
	ErrInvalidConfig = errors.New("vector: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrEmpty signals access to an element of an empty vector.
	ErrEmpty = errors.New("vector: empty")
	// ErrInvalidArgument signals invalid counts or sizes.
	ErrInvalidArgument = errors.New("vector: invalid argument")
)

// RangeError reports an index outside of the live range of a vector,
// together with the vector's size at the time of the call.
// RangeError matches ErrIndexOutOfBounds with errors.Is.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d, size %d", ErrIndexOutOfBounds, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func outOfRange(index, size int) error {
	return &RangeError{Index: index, Size: size}
}
