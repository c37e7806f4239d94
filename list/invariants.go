package list

import "fmt"

// Check validates the structural invariants of the list: the ring is closed
// in both directions, every element belongs to the list and the element
// count matches.
//
// This checker is intended for tests.
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvalidConfig)
	}
	if l.root.next == nil {
		if l.len != 0 {
			return fmt.Errorf("%w: uninitialized list with length %d", ErrCorrupted, l.len)
		}
		return nil
	}
	if !l.root.sentinel {
		return fmt.Errorf("%w: root is not marked as sentinel", ErrCorrupted)
	}
	if l.cfg.Allocator == nil {
		return fmt.Errorf("%w: list has no allocator", ErrInvalidConfig)
	}
	n := 0
	for e := l.root.next; e != &l.root; e = e.next {
		if e == nil || e.next == nil || e.prev == nil {
			return fmt.Errorf("%w: broken link after %d elements", ErrCorrupted, n)
		}
		if e.next.prev != e || e.prev.next != e {
			return fmt.Errorf("%w: asymmetric links at element %d", ErrCorrupted, n)
		}
		if e.sentinel {
			return fmt.Errorf("%w: second sentinel at element %d", ErrCorrupted, n)
		}
		if !l.owns(e) {
			return fmt.Errorf("%w: element %d belongs to another list", ErrCorrupted, n)
		}
		n++
		if n > l.len {
			return fmt.Errorf("%w: more than %d elements in ring", ErrCorrupted, l.len)
		}
	}
	if l.root.prev.next != &l.root {
		return fmt.Errorf("%w: back element does not link to sentinel", ErrCorrupted)
	}
	if n != l.len {
		return fmt.Errorf("%w: counted %d elements, length is %d", ErrCorrupted, n, l.len)
	}
	return nil
}
