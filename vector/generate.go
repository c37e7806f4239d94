package vector

import (
	"fmt"

	"github.com/npillmayer/containers/fn"
)

// Generate creates a vector of n elements, element i being produced by
// gen(i). An uninitialized gen is reported as fn.ErrUninitialized.
func Generate[T any](cfg Config[T], n int, gen fn.Func[int, T]) (*Vector[T], error) {
	if !gen.IsSet() {
		return nil, fmt.Errorf("vector: generator: %w", fn.ErrUninitialized)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = v.Reserve(n); err != nil {
		v.Release()
		return nil, err
	}
	for i := range n {
		v.block[i] = gen.MustCall(i)
		v.size++
	}
	return v, nil
}
