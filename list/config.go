package list

import (
	"github.com/npillmayer/containers/alloc"
)

// Config configures a list.
type Config[T any] struct {
	// Allocator provides one node slot per element. Defaults to alloc.Heap;
	// use an alloc.Pool for slab allocation of nodes.
	Allocator alloc.Allocator[Element[T]]
	// Traits describes construction, copy and destruction of element values.
	Traits alloc.Traits[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[Element[T]]{}
	}
	return cfg
}
