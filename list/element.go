package list

// Element is a node of a list and doubles as the position handle of the
// element it holds.
type Element[T any] struct {
	// next and prev are structural links into the ring; they do not own.
	next, prev *Element[T]
	// owner identifies the list the element belongs to; nil once the element
	// has been erased.
	owner    *owner
	sentinel bool

	// Value is the element value.
	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.owner != nil && p != nil && !p.sentinel {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.owner != nil && p != nil && !p.sentinel {
		return p
	}
	return nil
}

// owner is the ownership token of a list. Splicing forwards the donor's
// token to the receiver's token, which transfers all of the donor's elements
// at once; lookups follow and compress the forwarding chain.
type owner struct {
	fwd *owner
}

func (o *owner) resolve() *owner {
	for o.fwd != nil {
		if o.fwd.fwd != nil {
			o.fwd = o.fwd.fwd
		}
		o = o.fwd
	}
	return o
}
