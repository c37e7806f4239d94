package owned

import (
	"errors"
	"io"
	"unsafe"

	"github.com/npillmayer/containers/alloc"
)

// ErrNil signals dereferencing a Ptr which does not own a pointee.
var ErrNil = errors.New("owned: nil pointer")

// Deleter releases a pointee. A nil Deleter leaves the pointee to the
// garbage collector.
type Deleter[T any] func(*T)

// CloseDeleter returns a Deleter which closes its pointee, e.g. an *os.File.
func CloseDeleter[T any, PT interface {
	*T
	io.Closer
}]() Deleter[T] {
	return func(p *T) {
		if err := PT(p).Close(); err != nil {
			tracer().Errorf("owned: closing pointee: %v", err)
		}
	}
}

// Ptr is a single-owner pointer. The zero value owns nothing.
//
// A Ptr must not be copied by value once it owns a pointee; use Take to
// transfer ownership.
type Ptr[T any] struct {
	p   *T
	del Deleter[T]
}

// Wrap takes ownership of p, which will be released by del.
func Wrap[T any](p *T, del Deleter[T]) *Ptr[T] {
	return &Ptr[T]{p: p, del: del}
}

// Make allocates a slot for a T from a, default-constructs it according to
// traits and lets ctor initialize it in place (ctor may be nil). Freeing the
// Ptr destroys the value and returns the slot to a.
func Make[T any](a alloc.Allocator[T], traits alloc.Traits[T], ctor func(*T)) (*Ptr[T], error) {
	if a == nil {
		a = alloc.Heap[T]{}
	}
	block, err := alloc.Checked(a, 1)
	if err != nil {
		tracer().Errorf("owned: cannot allocate pointee: %v", err)
		return nil, err
	}
	p := &block[0]
	traits.Construct(p)
	if ctor != nil {
		ctor(p)
	}
	return Wrap(p, func(p *T) {
		traits.DestroyAt(p)
		a.Deallocate(unsafe.Slice(p, 1), 1)
	}), nil
}

// New allocates a T on the heap and initializes it to v.
func New[T any](v T) *Ptr[T] {
	p := new(T)
	*p = v
	return Wrap(p, nil)
}

// Get returns the pointee without giving up ownership, or nil.
func (ptr *Ptr[T]) Get() *T {
	if ptr == nil {
		return nil
	}
	return ptr.p
}

// IsNil reports whether ptr owns nothing.
func (ptr *Ptr[T]) IsNil() bool {
	return ptr.Get() == nil
}

// Value returns a copy of the pointee.
func (ptr *Ptr[T]) Value() (T, error) {
	if ptr.IsNil() {
		var zero T
		return zero, ErrNil
	}
	return *ptr.p, nil
}

// Release gives up ownership without running the deleter and returns the
// former pointee.
func (ptr *Ptr[T]) Release() *T {
	p := ptr.p
	ptr.p = nil
	return p
}

// Reset releases the current pointee, if any, and takes ownership of p,
// keeping the deleter.
func (ptr *Ptr[T]) Reset(p *T) {
	if p != nil && p == ptr.p {
		return
	}
	old := ptr.p
	ptr.p = p
	ptr.delete(old)
}

// Free releases the pointee, if any. Free is idempotent.
func (ptr *Ptr[T]) Free() {
	ptr.Reset(nil)
}

// Close implements io.Closer by freeing the pointee. It never fails.
func (ptr *Ptr[T]) Close() error {
	ptr.Free()
	return nil
}

// Take transfers the pointee and deleter to a new Ptr and leaves ptr empty.
func (ptr *Ptr[T]) Take() *Ptr[T] {
	q := &Ptr[T]{p: ptr.p, del: ptr.del}
	ptr.p = nil
	return q
}

// MoveFrom frees the current pointee and takes over pointee and deleter of
// other, which is left empty.
func (ptr *Ptr[T]) MoveFrom(other *Ptr[T]) {
	if other == ptr {
		return
	}
	ptr.Free()
	ptr.p, ptr.del = other.p, other.del
	other.p = nil
}

// Swap exchanges the pointees and deleters of two Ptrs.
func (ptr *Ptr[T]) Swap(other *Ptr[T]) {
	ptr.p, other.p = other.p, ptr.p
	ptr.del, other.del = other.del, ptr.del
}

func (ptr *Ptr[T]) delete(p *T) {
	if p != nil && ptr.del != nil {
		ptr.del(p)
	}
}
