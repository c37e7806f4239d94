package vector

// Iterator is a position handle into a vector. Forward iterators move from
// index 0 towards Len, reverse iterators from Len-1 towards -1.
//
// An iterator remembers the backing block it was created for. Every
// reallocation invalidates all iterators of a vector, which Valid reports.
// Shifting operations keep the block but move elements; iterators at or
// after the mutation point then denote different elements.
type Iterator[T any] struct {
	v       *Vector[T]
	index   int
	epoch   uint64
	reverse bool
}

// Begin returns a forward iterator positioned at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, index: 0, epoch: v.epoch}
}

// End returns the forward past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, index: v.size, epoch: v.epoch}
}

// RBegin returns a reverse iterator positioned at the last element.
func (v *Vector[T]) RBegin() Iterator[T] {
	return Iterator[T]{v: v, index: v.size - 1, epoch: v.epoch, reverse: true}
}

// REnd returns the reverse past-the-end iterator.
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{v: v, index: -1, epoch: v.epoch, reverse: true}
}

// Pos returns a forward iterator positioned at index i.
func (v *Vector[T]) Pos(i int) (Iterator[T], error) {
	if i < 0 || i > v.size {
		return Iterator[T]{}, outOfRange(i, v.size)
	}
	return Iterator[T]{v: v, index: i, epoch: v.epoch}, nil
}

// Valid reports whether the iterator still refers to a live element of the
// backing block it was created for.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.epoch == it.v.epoch && it.index >= 0 && it.index < it.v.size
}

// Index returns the element index the iterator is positioned at.
func (it Iterator[T]) Index() int {
	return it.index
}

// Value returns the element the iterator refers to. It is unchecked: calling
// Value on an iterator which is not Valid has undefined results.
func (it Iterator[T]) Value() T {
	return it.v.block[it.index]
}

// Ref returns a pointer to the element the iterator refers to. Unchecked.
func (it Iterator[T]) Ref() *T {
	return &it.v.block[it.index]
}

// Next advances the iterator by one position in its direction.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Advance(1)
}

// Prev moves the iterator back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Advance(-1)
}

// Advance moves the iterator by n positions in its direction.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	if it.reverse {
		it.index -= n
	} else {
		it.index += n
	}
	return it
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.index == other.index && it.reverse == other.reverse
}
