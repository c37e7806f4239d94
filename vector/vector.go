package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/alloc"
)

// Vector is a growable contiguous store of elements of type T.
//
// The zero value is not usable; create vectors with New or one of the other
// constructors. A Vector must not be copied by value; use Clone for a deep
// copy and Take for an O(1) transfer of ownership.
type Vector[T any] struct {
	cfg   Config[T]
	block []T    // backing block, len(block) is the capacity; nil iff capacity is 0
	size  int    // live elements are block[:size]
	epoch uint64 // incremented on every reallocation
}

// New creates an empty vector with validated configuration.
func New[T any](cfg Config[T]) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	v := &Vector[T]{cfg: cfg}
	if cfg.Capacity > 0 {
		if err := v.reallocate(cfg.Capacity); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewSized creates a vector of n default-constructed elements.
func NewSized[T any](cfg Config[T], n int) (*Vector[T], error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = v.Resize(n); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// NewFilled creates a vector of n copies of value.
func NewFilled[T any](cfg Config[T], n int, value T) (*Vector[T], error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = v.ResizeWith(n, value); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// Of creates a vector holding values, in order.
func Of[T any](cfg Config[T], values ...T) (*Vector[T], error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = v.InsertAt(0, values...); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSeq creates a vector from an input sequence.
func FromSeq[T any](cfg Config[T], seq iter.Seq[T]) (*Vector[T], error) {
	v, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for value := range seq {
		if err = v.Append(value); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// --- Memory management -----------------------------------------------------

// reallocate moves the live elements into a fresh block of exactly n slots
// and releases the old block. On allocation failure the vector is unchanged.
func (v *Vector[T]) reallocate(n int) error {
	assert(n >= v.size, "vector: reallocation below size")
	var fresh []T
	if n > 0 {
		block, err := alloc.Checked(v.cfg.Allocator, n)
		if err != nil {
			tracer().Errorf("vector: cannot allocate %d slots: %v", n, err)
			return err
		}
		fresh = block
	}
	tracer().Debugf("vector: reallocate from %d to %d slots", len(v.block), n)
	for i := range v.size {
		v.cfg.Traits.Move(&fresh[i], &v.block[i])
	}
	if old := v.block; len(old) > 0 {
		v.cfg.Allocator.Deallocate(old, len(old))
	}
	v.block = fresh
	v.epoch++
	return nil
}

// growFor makes room for extra more elements, doubling the capacity if
// that suffices.
func (v *Vector[T]) growFor(extra int) error {
	if extra > v.MaxLen()-v.size {
		return fmt.Errorf("%w: cannot grow length %d by %d", ErrInvalidArgument, v.size, extra)
	}
	need := v.size + extra
	if need <= len(v.block) {
		return nil
	}
	return v.reallocate(min(max(2*len(v.block), need), v.MaxLen()))
}

func (v *Vector[T]) destroyRange(from, to int) {
	for i := from; i < to; i++ {
		v.cfg.Traits.DestroyAt(&v.block[i])
	}
}

// adopt takes over the state of other, leaving other empty.
func (v *Vector[T]) adopt(other *Vector[T]) {
	v.cfg = other.cfg
	v.block, v.size = other.block, other.size
	v.epoch++
	other.block, other.size = nil, 0
	other.epoch++
}

// --- Size and capacity -----------------------------------------------------

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.block)
}

// MaxLen returns the theoretical upper bound of the length of a vector of T,
// as limited by the address space.
func (v *Vector[T]) MaxLen() int {
	return alloc.MaxSlots[T]()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Config returns a copy of the effective configuration.
func (v *Vector[T]) Config() Config[T] {
	return v.cfg
}

// Reserve guarantees a capacity of at least n without changing the length.
// If the capacity has to grow, it grows to exactly n.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, n)
	}
	if n <= len(v.block) {
		return nil
	}
	return v.reallocate(n)
}

// Resize changes the length to n. Shrinking destroys the trailing elements,
// growing appends default-constructed elements.
func (v *Vector[T]) Resize(n int) error {
	return v.resize(n, func(slot *T) {
		v.cfg.Traits.Construct(slot)
	})
}

// ResizeWith changes the length to n. Shrinking destroys the trailing
// elements, growing appends copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resize(n, func(slot *T) {
		v.cfg.Traits.CopyTo(slot, value)
	})
}

func (v *Vector[T]) resize(n int, construct func(*T)) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}
	if n < v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			construct(&v.block[i])
		}
		v.size = n
	}
	return nil
}

// ShrinkToFit reallocates the vector to a block of exactly Len slots,
// releasing the block altogether if the vector is empty.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.block) == v.size {
		return nil
	}
	return v.reallocate(v.size)
}

// Clear destroys all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Release destroys all elements and returns the backing block to the
// allocator. The vector stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	if len(v.block) > 0 {
		v.cfg.Allocator.Deallocate(v.block, len(v.block))
	}
	v.block = nil
	v.epoch++
}

// --- Element access --------------------------------------------------------

// At returns the element at index i. It fails with a *RangeError if i is
// outside [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.block[i], nil
}

// Ref returns a pointer to the element at index i. The pointer is valid
// until the next reallocating or shifting operation.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.block[i], nil
}

// Set replaces the element at index i, destroying the previous value.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return outOfRange(i, v.size)
	}
	v.cfg.Traits.DestroyAt(&v.block[i])
	v.block[i] = value
	return nil
}

// Index returns the element at index i without checking i against Len.
// Indices within [Len, Cap) yield uninitialized slots.
func (v *Vector[T]) Index(i int) T {
	return v.block[i]
}

// IndexRef is the unchecked variant of Ref.
func (v *Vector[T]) IndexRef(i int) *T {
	return &v.block[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.block[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.block[v.size-1], nil
}

// Data returns the live elements as a slice sharing the backing block, or
// nil for a nil vector.
// The slice's capacity is limited to Len, so appending to it never writes
// into the vector. It is invalidated like any position handle.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.block[:v.size:v.size]
}

// --- Appending and erasing -------------------------------------------------

// Append adds value as the new last element, growing the backing block if
// the vector is full.
func (v *Vector[T]) Append(value T) error {
	if err := v.growFor(1); err != nil {
		return err
	}
	v.block[v.size] = value
	v.size++
	return nil
}

// AppendInPlace default-constructs a new last element and then lets ctor
// initialize it in place. ctor may be nil. It returns a pointer to the new
// element.
func (v *Vector[T]) AppendInPlace(ctor func(*T)) (*T, error) {
	if err := v.growFor(1); err != nil {
		return nil, err
	}
	slot := &v.block[v.size]
	v.cfg.Traits.Construct(slot)
	if ctor != nil {
		ctor(slot)
	}
	v.size++
	return slot, nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	v.cfg.Traits.DestroyAt(&v.block[v.size])
	return nil
}

// InsertAt inserts values before index, shifting the elements at and after
// index to the right. index may equal Len. values must not alias the
// vector's own storage.
func (v *Vector[T]) InsertAt(index int, values ...T) error {
	return v.insert(index, len(values), func(i int, slot *T) {
		*slot = values[i]
	})
}

// InsertN inserts n copies of value before index.
func (v *Vector[T]) InsertN(index, n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	return v.insert(index, n, func(_ int, slot *T) {
		v.cfg.Traits.CopyTo(slot, value)
	})
}

// InsertSeq inserts the elements of an input sequence before index.
func (v *Vector[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	if index < 0 || index > v.size {
		return outOfRange(index, v.size)
	}
	var values []T
	for value := range seq {
		values = append(values, value)
	}
	return v.InsertAt(index, values...)
}

// EmplaceAt inserts a default-constructed element before index and lets
// ctor initialize it in place. It returns a pointer to the new element.
func (v *Vector[T]) EmplaceAt(index int, ctor func(*T)) (*T, error) {
	err := v.insert(index, 1, func(_ int, slot *T) {
		v.cfg.Traits.Construct(slot)
		if ctor != nil {
			ctor(slot)
		}
	})
	if err != nil {
		return nil, err
	}
	return &v.block[index], nil
}

func (v *Vector[T]) insert(index, n int, construct func(int, *T)) error {
	if index < 0 || index > v.size {
		return outOfRange(index, v.size)
	}
	if n == 0 {
		return nil
	}
	if err := v.growFor(n); err != nil {
		return err
	}
	// [index, size) => [index+n, size+n), highest index first
	for i := v.size - 1; i >= index; i-- {
		v.cfg.Traits.Move(&v.block[i+n], &v.block[i])
	}
	for i := range n {
		construct(i, &v.block[index+i])
	}
	v.size += n
	return nil
}

// EraseAt removes the element at index, shifting the following elements to
// the left.
func (v *Vector[T]) EraseAt(index int) error {
	return v.EraseRange(index, 1)
}

// EraseRange removes count elements starting at index.
func (v *Vector[T]) EraseRange(index, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if index < 0 || index > v.size {
		return outOfRange(index, v.size)
	}
	if count > v.size-index {
		return outOfRange(v.size, v.size)
	}
	if count == 0 {
		return nil
	}
	v.destroyRange(index, index+count)
	// [index+count, size) => [index, size-count), lowest index first
	for j := index + count; j < v.size; j++ {
		v.cfg.Traits.Move(&v.block[j-count], &v.block[j])
	}
	v.size -= count
	return nil
}

// --- Copy, move, assign ----------------------------------------------------

// Clone returns a deep copy with an independent backing block of exactly
// Len slots, using the same allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.cfg)
}

func (v *Vector[T]) cloneWith(cfg Config[T]) (*Vector[T], error) {
	c := &Vector[T]{cfg: cfg}
	if v.size == 0 {
		return c, nil
	}
	block, err := alloc.Checked(cfg.Allocator, v.size)
	if err != nil {
		return nil, err
	}
	for i := range v.size {
		cfg.Traits.CopyTo(&block[i], v.block[i])
	}
	c.block, c.size = block, v.size
	return c, nil
}

// Take transfers the contents of v into a new vector in O(1). v is left
// empty and reusable.
func (v *Vector[T]) Take() *Vector[T] {
	w := &Vector[T]{}
	w.adopt(v)
	return w
}

// MoveFrom releases the contents of v and takes over the contents of other,
// which is left empty.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if other == v {
		return
	}
	v.Release()
	v.adopt(other)
}

// CopyFrom replaces the contents of v with a deep copy of other. v keeps its
// allocator. On failure v is unchanged.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == v {
		return nil
	}
	c, err := other.cloneWith(v.cfg)
	if err != nil {
		return err
	}
	v.MoveFrom(c)
	return nil
}

// Swap exchanges the contents of two vectors in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == v {
		return
	}
	v.cfg, other.cfg = other.cfg, v.cfg
	v.block, other.block = other.block, v.block
	v.size, other.size = other.size, v.size
	v.epoch++
	other.epoch++
}

// Assign replaces the contents with values.
func (v *Vector[T]) Assign(values ...T) error {
	return v.assign(len(values), func(i int, slot *T) {
		*slot = values[i]
	})
}

// AssignN replaces the contents with n copies of value.
func (v *Vector[T]) AssignN(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	return v.assign(n, func(_ int, slot *T) {
		v.cfg.Traits.CopyTo(slot, value)
	})
}

func (v *Vector[T]) assign(n int, construct func(int, *T)) error {
	if n > len(v.block) {
		block, err := alloc.Checked(v.cfg.Allocator, n)
		if err != nil {
			return err
		}
		v.Release()
		v.block = block
	} else {
		v.Clear()
	}
	for i := range n {
		construct(i, &v.block[i])
	}
	v.size = n
	v.epoch++
	return nil
}

// --- Traversal -------------------------------------------------------------

// All returns an iterator over index/value pairs in forward order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in forward order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs in reverse order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}
