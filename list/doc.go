/*
Package list provides a doubly linked, circular, sentinel-terminated node
store on top of a pluggable allocator.

Every element lives in a node of its own, obtained from an
alloc.Allocator[Element[T]] one slot at a time. Insertion and erasure are
O(1) and never touch any other node. Splice relinks the complete chain of
another list in O(1) without copying, moving or reconstructing values.

A handle to an element (*Element) stays valid until the element itself is
erased: insertions, erasure of other elements and splicing leave it
untouched. Handles into a spliced chain are attributed to the receiving
list from then on.

Lists are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
