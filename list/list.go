package list

import (
	"iter"
	"unsafe"

	"github.com/npillmayer/containers/alloc"
)

// List is a doubly linked list of elements of type T, organized as a ring
// around a sentinel node.
//
// The zero value is an empty list using the heap allocator. A List must not
// be copied by value; use Clone for a deep copy and Take for an O(1)
// transfer of ownership.
type List[T any] struct {
	cfg  Config[T]
	root Element[T] // sentinel; root.next is the front, root.prev the back
	own  *owner
	len  int
}

// New creates an empty list.
func New[T any](cfg Config[T]) (*List[T], error) {
	l := &List[T]{cfg: cfg}
	l.init()
	return l, nil
}

// NewSized creates a list of n default-constructed elements.
func NewSized[T any](cfg Config[T], n int) (*List[T], error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = l.EmplaceN(nil, n); err != nil {
		return nil, err
	}
	return l, nil
}

// NewFilled creates a list of n copies of value.
func NewFilled[T any](cfg Config[T], n int, value T) (*List[T], error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = l.InsertN(nil, n, value); err != nil {
		return nil, err
	}
	return l, nil
}

// Of creates a list holding values, in order.
func Of[T any](cfg Config[T], values ...T) (*List[T], error) {
	return FromSeq(cfg, func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
}

// FromSeq creates a list from an input sequence.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*List[T], error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = l.InsertSeq(nil, seq); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) init() {
	l.cfg = l.cfg.normalized()
	l.root.sentinel = true
	l.root.next, l.root.prev = &l.root, &l.root
	l.own = &owner{}
	l.len = 0
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// --- Nodes -----------------------------------------------------------------

func (l *List[T]) newNode() (*Element[T], error) {
	block, err := alloc.Checked(l.cfg.Allocator, 1)
	if err != nil {
		tracer().Errorf("list: cannot allocate node: %v", err)
		return nil, err
	}
	e := &block[0]
	e.owner = l.own
	return e, nil
}

// freeNode destroys the value of a detached node and returns the node to
// the allocator.
func (l *List[T]) freeNode(e *Element[T]) {
	l.cfg.Traits.DestroyAt(&e.Value)
	e.next, e.prev, e.owner = nil, nil, nil
	l.cfg.Allocator.Deallocate(unsafe.Slice(e, 1), 1)
}

// freeChain frees a detached chain linked through next.
func (l *List[T]) freeChain(e *Element[T]) {
	for e != nil {
		next := e.next
		l.freeNode(e)
		e = next
	}
}

// buildChain allocates and constructs a detached chain of nodes, one per
// value of seq. On failure every node already built is freed again.
func (l *List[T]) buildChain(seq iter.Seq[T], construct func(*T, T)) (first, last *Element[T], n int, err error) {
	for v := range seq {
		var e *Element[T]
		if e, err = l.newNode(); err != nil {
			l.freeChain(first)
			return nil, nil, 0, err
		}
		construct(&e.Value, v)
		if first == nil {
			first = e
		} else {
			last.next = e
			e.prev = last
		}
		last = e
		n++
	}
	return first, last, n, nil
}

// linkChain splices the detached chain first…last in front of mark.
func (l *List[T]) linkChain(first, last, mark *Element[T], n int) {
	prev := mark.prev
	prev.next = first
	first.prev = prev
	last.next = mark
	mark.prev = last
	l.len += n
}

func (l *List[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.len--
}

// owns reports whether e is a live element of l.
func (l *List[T]) owns(e *Element[T]) bool {
	if e == nil || e.owner == nil || l.own == nil {
		return false
	}
	r := e.owner.resolve()
	e.owner = r
	return r == l.own
}

// position maps a handle to its node; nil denotes the end of the list.
func (l *List[T]) position(mark *Element[T]) (*Element[T], error) {
	if mark == nil {
		return &l.root, nil
	}
	if !l.owns(mark) {
		return nil, ErrForeignElement
	}
	return mark, nil
}

// handle maps a node to a handle, the sentinel to nil.
func (l *List[T]) handle(e *Element[T]) *Element[T] {
	if e == &l.root {
		return nil
	}
	return e
}

// --- Size and access -------------------------------------------------------

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Config returns a copy of the effective configuration.
func (l *List[T]) Config() Config[T] {
	return l.cfg.normalized()
}

// Front returns the first element or nil.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element or nil.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// FrontValue returns the value of the first element.
func (l *List[T]) FrontValue() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.root.next.Value, nil
}

// BackValue returns the value of the last element.
func (l *List[T]) BackValue() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.root.prev.Value, nil
}

// Contains reports whether e is a live element of l.
func (l *List[T]) Contains(e *Element[T]) bool {
	return l.owns(e)
}
