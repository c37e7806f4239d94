package list

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/alloc"
)

// --- Insertion -------------------------------------------------------------

// insertBefore allocates a node for v in front of mark. construct places v
// into the fresh node.
func (l *List[T]) insertBefore(mark *Element[T], construct func(*T)) (*Element[T], error) {
	e, err := l.newNode()
	if err != nil {
		return nil, err
	}
	construct(&e.Value)
	l.linkChain(e, e, mark, 1)
	return e, nil
}

func (l *List[T]) assignValue(v T) func(*T) {
	return func(slot *T) { *slot = v }
}

func (l *List[T]) emplaceValue(ctor func(*T)) func(*T) {
	return func(slot *T) {
		l.cfg.Traits.Construct(slot)
		if ctor != nil {
			ctor(slot)
		}
	}
}

// PushFront inserts v as the new first element.
func (l *List[T]) PushFront(v T) (*Element[T], error) {
	l.lazyInit()
	return l.insertBefore(l.root.next, l.assignValue(v))
}

// PushBack inserts v as the new last element.
func (l *List[T]) PushBack(v T) (*Element[T], error) {
	l.lazyInit()
	return l.insertBefore(&l.root, l.assignValue(v))
}

// EmplaceFront default-constructs a new first element and lets ctor
// initialize it in place. ctor may be nil.
func (l *List[T]) EmplaceFront(ctor func(*T)) (*Element[T], error) {
	l.lazyInit()
	return l.insertBefore(l.root.next, l.emplaceValue(ctor))
}

// EmplaceBack default-constructs a new last element and lets ctor
// initialize it in place. ctor may be nil.
func (l *List[T]) EmplaceBack(ctor func(*T)) (*Element[T], error) {
	l.lazyInit()
	return l.insertBefore(&l.root, l.emplaceValue(ctor))
}

// EmplaceAt constructs a new element in front of mark; a nil mark denotes
// the end of the list.
func (l *List[T]) EmplaceAt(mark *Element[T], ctor func(*T)) (*Element[T], error) {
	l.lazyInit()
	at, err := l.position(mark)
	if err != nil {
		return nil, err
	}
	return l.insertBefore(at, l.emplaceValue(ctor))
}

// InsertBefore inserts v immediately before mark.
func (l *List[T]) InsertBefore(v T, mark *Element[T]) (*Element[T], error) {
	l.lazyInit()
	if !l.owns(mark) {
		return nil, ErrForeignElement
	}
	return l.insertBefore(mark, l.assignValue(v))
}

// InsertAfter inserts v immediately after mark.
func (l *List[T]) InsertAfter(v T, mark *Element[T]) (*Element[T], error) {
	l.lazyInit()
	if !l.owns(mark) {
		return nil, ErrForeignElement
	}
	return l.insertBefore(mark.next, l.assignValue(v))
}

// InsertN inserts n copies of v in front of mark (nil for the end) and
// returns the first inserted element. Either all n elements are inserted or,
// if an allocation fails, none.
func (l *List[T]) InsertN(mark *Element[T], n int, v T) (*Element[T], error) {
	return l.insertN(mark, n, func(slot *T) {
		l.cfg.Traits.CopyTo(slot, v)
	})
}

// EmplaceN inserts n default-constructed elements in front of mark.
func (l *List[T]) EmplaceN(mark *Element[T], n int) (*Element[T], error) {
	return l.insertN(mark, n, l.emplaceValue(nil))
}

func (l *List[T]) insertN(mark *Element[T], n int, construct func(*T)) (*Element[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	return l.insertChain(mark, repeat[T](n), func(slot *T, _ T) {
		construct(slot)
	})
}

// InsertSeq inserts the values of an input sequence in front of mark (nil
// for the end) and returns the first inserted element, or mark if seq was
// empty. Either all values are inserted or none.
func (l *List[T]) InsertSeq(mark *Element[T], seq iter.Seq[T]) (*Element[T], error) {
	return l.insertChain(mark, seq, func(slot *T, v T) {
		*slot = v
	})
}

func (l *List[T]) insertChain(mark *Element[T], seq iter.Seq[T], construct func(*T, T)) (*Element[T], error) {
	l.lazyInit()
	at, err := l.position(mark)
	if err != nil {
		return nil, err
	}
	first, last, n, err := l.buildChain(seq, construct)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return mark, nil
	}
	l.linkChain(first, last, at, n)
	return first, nil
}

// repeat yields n zero values; the values are only used as a count.
func repeat[T any](n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for range n {
			if !yield(zero) {
				return
			}
		}
	}
}

// --- Erasure ---------------------------------------------------------------

// Erase unlinks e, destroys its value and frees its node. It returns the
// element following e, or nil if e was the last element. The handle e is
// invalid afterwards.
func (l *List[T]) Erase(e *Element[T]) (*Element[T], error) {
	if !l.owns(e) {
		return nil, ErrForeignElement
	}
	next := e.next
	l.unlink(e)
	l.freeNode(e)
	return l.handle(next), nil
}

// EraseRange erases the elements [first, last) and returns last. A nil last
// denotes the end of the list; a nil first denotes an empty range at the
// end. The range is validated before any element is erased.
func (l *List[T]) EraseRange(first, last *Element[T]) (*Element[T], error) {
	if first == nil {
		if last != nil {
			return nil, ErrInvalidRange
		}
		return nil, nil
	}
	if !l.owns(first) {
		return nil, ErrForeignElement
	}
	stop, err := l.position(last)
	if err != nil {
		return nil, err
	}
	for e := first; e != stop; e = e.next {
		if e == &l.root {
			return nil, fmt.Errorf("%w: last does not follow first", ErrInvalidRange)
		}
	}
	for e := first; e != stop; {
		next := e.next
		l.unlink(e)
		l.freeNode(e)
		e = next
	}
	return last, nil
}

// PopFront erases the first element.
func (l *List[T]) PopFront() error {
	if l.len == 0 {
		return ErrEmpty
	}
	_, err := l.Erase(l.root.next)
	return err
}

// PopBack erases the last element.
func (l *List[T]) PopBack() error {
	if l.len == 0 {
		return ErrEmpty
	}
	_, err := l.Erase(l.root.prev)
	return err
}

// RemoveIf erases every element whose value satisfies pred and returns the
// number of erased elements.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	if l.len == 0 {
		return 0
	}
	count := 0
	for e := l.root.next; e != &l.root; {
		next := e.next
		if pred(e.Value) {
			l.unlink(e)
			l.freeNode(e)
			count++
		}
		e = next
	}
	return count
}

// RemoveValue erases every element equal to v under eq.
func (l *List[T]) RemoveValue(v T, eq func(a, b T) bool) int {
	return l.RemoveIf(func(x T) bool {
		return eq(x, v)
	})
}

// Remove erases every element equal to v.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(x T) bool {
		return x == v
	})
}

// Clear erases all elements.
func (l *List[T]) Clear() {
	if l.root.next == nil {
		return
	}
	e := l.root.next
	for e != &l.root {
		next := e.next
		l.freeNode(e)
		e = next
	}
	l.root.next, l.root.prev = &l.root, &l.root
	l.len = 0
}

// --- Splice ----------------------------------------------------------------

// Splice moves all elements of other in front of mark (nil for the end) by
// relinking the boundary nodes of the chain. No element value is copied,
// moved or reconstructed, handles into other stay valid and belong to l
// from now on. other is left empty.
//
// Both lists must use the same allocator instance, since l becomes
// responsible for freeing the transferred nodes.
func (l *List[T]) Splice(mark *Element[T], other *List[T]) error {
	if other == l {
		return ErrSelfSplice
	}
	l.lazyInit()
	at, err := l.position(mark)
	if err != nil {
		return err
	}
	if other == nil || other.len == 0 {
		return nil
	}
	if !alloc.Same(l.cfg.Allocator, other.cfg.normalized().Allocator) {
		return ErrForeignAllocator
	}
	tracer().Debugf("list: splice %d elements into list of %d", other.len, l.len)
	l.linkChain(other.root.next, other.root.prev, at, other.len)
	other.root.next, other.root.prev = &other.root, &other.root
	other.len = 0
	other.own.fwd = l.own
	other.own = &owner{}
	return nil
}

// --- Copy, move, assign ----------------------------------------------------

// Clone returns a deep copy of the list using the same configuration.
func (l *List[T]) Clone() (*List[T], error) {
	return l.cloneWith(l.cfg)
}

func (l *List[T]) cloneWith(cfg Config[T]) (*List[T], error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if l.len == 0 {
		return c, nil
	}
	if _, err = c.insertChain(nil, l.All(), cfg.Traits.CopyTo); err != nil {
		return nil, err
	}
	return c, nil
}

// Take transfers all elements into a new list in O(1). Handles stay valid
// and belong to the new list. l is left empty and reusable.
func (l *List[T]) Take() *List[T] {
	l.lazyInit()
	m := &List[T]{cfg: l.cfg}
	m.init()
	m.adopt(l)
	return m
}

// adopt relinks the chain of an empty l's donor onto l's sentinel and
// exchanges ownership tokens.
func (l *List[T]) adopt(donor *List[T]) {
	assert(l.len == 0, "list: adopt into non-empty list")
	l.cfg = donor.cfg
	if donor.len > 0 {
		l.linkChain(donor.root.next, donor.root.prev, &l.root, donor.len)
	}
	l.own, donor.own = donor.own, l.own
	donor.root.next, donor.root.prev = &donor.root, &donor.root
	donor.len = 0
}

// MoveFrom erases the elements of l and takes over the elements of other,
// together with other's configuration. other is left empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if other == l {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.Clear()
	l.adopt(other)
}

// CopyFrom replaces the elements of l with deep copies of the elements of
// other. l keeps its configuration. On failure l is unchanged.
func (l *List[T]) CopyFrom(other *List[T]) error {
	if other == l {
		return nil
	}
	l.lazyInit()
	c, err := other.cloneWith(l.cfg)
	if err != nil {
		return err
	}
	l.MoveFrom(c)
	return nil
}

// Swap exchanges the contents of two lists in O(1).
func (l *List[T]) Swap(other *List[T]) {
	if other == l {
		return
	}
	tmp := l.Take()
	l.MoveFrom(other)
	other.MoveFrom(tmp)
}

// Assign replaces the elements of l with values. Either all values are
// assigned or, on allocation failure, l is unchanged.
func (l *List[T]) Assign(values ...T) error {
	return l.assign(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}, func(slot *T, v T) { *slot = v })
}

// AssignN replaces the elements of l with n copies of v.
func (l *List[T]) AssignN(n int, v T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	return l.assign(repeat[T](n), func(slot *T, _ T) {
		l.cfg.Traits.CopyTo(slot, v)
	})
}

func (l *List[T]) assign(seq iter.Seq[T], construct func(*T, T)) error {
	l.lazyInit()
	first, last, n, err := l.buildChain(seq, construct)
	if err != nil {
		return err
	}
	l.Clear()
	if n > 0 {
		l.linkChain(first, last, &l.root, n)
	}
	return nil
}

// --- Traversal -------------------------------------------------------------

// All returns an iterator over the values in forward order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.len == 0 {
			return
		}
		for e := l.root.next; e != &l.root; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.len == 0 {
			return
		}
		for e := l.root.prev; e != &l.root; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Elements returns an iterator over the element handles in forward order.
// The element just yielded may be erased during iteration.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		if l.len == 0 {
			return
		}
		for e := l.root.next; e != &l.root; {
			next := e.next
			if !yield(e) {
				return
			}
			e = next
		}
	}
}
