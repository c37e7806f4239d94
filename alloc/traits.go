package alloc

// Traits describes the lifecycle operations of an element type. All fields
// are optional; the zero Traits constructs zero values, copies by assignment
// and has no destruction hook.
//
// Stores use Traits to separate object lifetimes from slot allocation:
// a slot is allocated, then constructed into, later destroyed, and only then
// returned to its allocator.
type Traits[T any] struct {
	// Default constructs a default value. The zero value of T is used if nil.
	Default func() T
	// Clone produces an independent copy of a value. Copies are made by plain
	// assignment if nil.
	Clone func(T) T
	// Destroy is called before a slot holding a live value is released.
	Destroy func(*T)
}

// Construct default-constructs a value into slot.
func (tr Traits[T]) Construct(slot *T) {
	if tr.Default != nil {
		*slot = tr.Default()
		return
	}
	var zero T
	*slot = zero
}

// CopyTo copy-constructs v into slot.
func (tr Traits[T]) CopyTo(slot *T, v T) {
	if tr.Clone != nil {
		*slot = tr.Clone(v)
		return
	}
	*slot = v
}

// DestroyAt ends the lifetime of the value in slot and resets the slot to the
// zero value.
func (tr Traits[T]) DestroyAt(slot *T) {
	if tr.Destroy != nil {
		tr.Destroy(slot)
	}
	var zero T
	*slot = zero
}

// Move relocates the value in src into the uninitialized slot dst. The value
// keeps its identity: no Clone or Destroy hook runs, and src is left as an
// uninitialized (zero) slot.
func (tr Traits[T]) Move(dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}
