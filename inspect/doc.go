/*
Package inspect renders the internal state of containers for debugging.

Slots prints the slot map of a vector to a console: live slots carry the
label of their value, reserved slots are drawn as empty cells. ListDot writes
the node ring of a list in Graphviz DOT format.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
