/*
Package owned provides Ptr, a pointer with exactly one owner.

A Ptr holds a pointee together with the policy which releases it, a Deleter.
The deleter runs exactly once: when the owner calls Free (or Close), or when
Reset replaces the pointee. Ownership can be handed on with Take or MoveFrom,
which leave the donor empty, or given up with Release, after which the caller
is responsible for the pointee.

Pointees created with Make live in a slot obtained from an alloc.Allocator
and are returned to it, destroyed, when freed.

Ptrs are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package owned

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
