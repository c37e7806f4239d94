/*
Package containers is a small runtime of allocator-backed generic stores.

Storage is obtained through a pluggable allocation capability (package
alloc) and managed explicitly: element lifetimes are separated from slot
allocation, and every store returns each block it obtained, with all values
destroyed, to the allocator it came from.

Sub-packages:

  - vector: a growable contiguous store with geometric growth
  - list: a circular, sentinel-based doubly linked node store with O(1) splice
  - alloc: the allocator contract plus heap, budgeted, tracking, pooled and
    monitored allocators
  - owned: a single-owner pointer with a pluggable release policy
  - fn: a callable which reports use before initialization
  - inspect: console slot maps and Graphviz output for debugging

The stores are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package containers

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
