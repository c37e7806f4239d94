/*
Package vector provides a growable contiguous store on top of a pluggable
allocator.

A Vector owns exactly one backing block, obtained from an alloc.Allocator.
It tracks the number of live elements (Len) separately from the number of
allocated slots (Cap): slots [0, Len) hold constructed values, slots
[Len, Cap) are allocated but uninitialized.

Growth is geometric: appending to a full vector allocates a new block of
max(2·Cap, Len+1) slots, relocates every element into it and releases the
old block. Allocation always happens before any element is touched, so a
failing allocator leaves the vector exactly as it was before the call.

Position handles (Iterator) are invalidated by every reallocation; this is
detectable with Iterator.Valid. Shifting operations (InsertAt, EraseAt)
invalidate handles at or after the mutation point.

Vectors are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

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
