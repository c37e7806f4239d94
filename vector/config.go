package vector

import (
	"fmt"

	"github.com/npillmayer/containers/alloc"
)

// Config configures a vector.
type Config[T any] struct {
	// Allocator provides backing blocks. Defaults to alloc.Heap.
	Allocator alloc.Allocator[T]
	// Traits describes construction, copy and destruction of elements.
	Traits alloc.Traits[T]
	// Capacity is reserved when the vector is created.
	Capacity int
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[T]{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative initial capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
