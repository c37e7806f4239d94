/*
Package alloc defines the allocation capability consumed by the stores of
this module.

An Allocator hands out blocks of raw element slots and takes them back.
Allocation never implies construction: a block returned by Allocate holds
zero values only, and a store must explicitly construct into a slot before
it counts as live. Conversely, Deallocate must only be called after every
slot of the block has been destroyed (see Traits.DestroyAt).

The package ships a few thin adapters, not a general purpose memory manager:

  - Heap delegates to the Go runtime,
  - Limited enforces a slot budget and fails with *Failure when exceeded,
  - Tracking accounts for every block and reports leaks and misuse,
  - Pool is a slab allocator for single-slot requests (list nodes),
  - Monitor broadcasts allocation events to subscribers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
