package list

import (
	"fmt"

	"github.com/npillmayer/containers/fn"
)

// Generate creates a list of n elements, element i being produced by gen(i).
// An uninitialized gen is reported as fn.ErrUninitialized.
func Generate[T any](cfg Config[T], n int, gen fn.Func[int, T]) (*List[T], error) {
	if !gen.IsSet() {
		return nil, fmt.Errorf("list: generator: %w", fn.ErrUninitialized)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	return FromSeq(cfg, func(yield func(T) bool) {
		for i := range n {
			if !yield(gen.MustCall(i)) {
				return
			}
		}
	})
}
