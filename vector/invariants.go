package vector

import "fmt"

// Check validates the structural invariants of the vector.
//
// This checker is intended for tests.
func (v *Vector[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidConfig)
	}
	if v.cfg.Allocator == nil {
		return fmt.Errorf("%w: vector has no allocator", ErrInvalidConfig)
	}
	if v.size < 0 || v.size > len(v.block) {
		return fmt.Errorf("%w: size %d outside [0, %d]", ErrInvalidConfig, v.size, len(v.block))
	}
	if (v.block == nil) != (len(v.block) == 0) {
		return fmt.Errorf("%w: empty backing block must be nil", ErrInvalidConfig)
	}
	if cap(v.block) != len(v.block) {
		return fmt.Errorf("%w: backing block has hidden capacity %d > %d",
			ErrInvalidConfig, cap(v.block), len(v.block))
	}
	return nil
}

// CheckReserved extends Check for comparable element types: every reserved
// slot in [Len, Cap) must hold the zero value, i.e. be uninitialized.
func CheckReserved[T comparable](v *Vector[T]) error {
	if err := v.Check(); err != nil {
		return err
	}
	var zero T
	for i := v.size; i < len(v.block); i++ {
		if v.block[i] != zero {
			return fmt.Errorf("%w: reserved slot %d holds a value", ErrInvalidConfig, i)
		}
	}
	return nil
}
