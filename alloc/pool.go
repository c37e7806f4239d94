package alloc

import "fmt"

// DefaultChunkSize is the number of slots a Pool carves out of the heap at once.
const DefaultChunkSize = 64

// Pool is a slab allocator for single-slot requests, as issued by node based
// stores. Slots are carved from chunks of ChunkSize slots; released slots are
// kept on a free list and handed out again before a new chunk is allocated.
// Requests for more than one slot are served by the heap.
//
// Chunks are never returned to the runtime while the pool is alive.
type Pool[T any] struct {
	chunkSize int
	chunk     []T   // current chunk, slots [next:] are untouched
	next      int   // bump index into chunk
	free      [][]T // released single-slot blocks
	chunks    int   // number of chunks allocated
	inUse     int   // single slots currently handed out
}

// NewPool creates a pool with the given chunk size. A chunkSize <= 0 selects
// DefaultChunkSize.
func NewPool[T any](chunkSize int) *Pool[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Pool[T]{chunkSize: chunkSize}
}

// Allocate returns n zeroed slots.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n != 1 {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative slot count %d", ErrInvalidRequest, n)
		}
		return Heap[T]{}.Allocate(n)
	}
	p.inUse++
	if k := len(p.free); k > 0 {
		block := p.free[k-1]
		p.free[k-1] = nil
		p.free = p.free[:k-1]
		return block, nil
	}
	if p.chunk == nil || p.next == len(p.chunk) {
		p.chunk = make([]T, p.chunkSize)
		p.next = 0
		p.chunks++
		tracer().Debugf("alloc: pool carved chunk #%d of %d slots", p.chunks, p.chunkSize)
	}
	block := p.chunk[p.next : p.next+1 : p.next+1]
	p.next++
	return block, nil
}

// Deallocate puts a single-slot block back onto the free list. The slot is
// reset to the zero value so that it is handed out uninitialized again.
func (p *Pool[T]) Deallocate(block []T, n int) {
	if n != 1 || len(block) == 0 {
		return
	}
	var zero T
	block[0] = zero
	p.free = append(p.free, block[:1:1])
	p.inUse--
}

// InUse returns the number of single slots currently handed out.
func (p *Pool[T]) InUse() int {
	return p.inUse
}

// Chunks returns the number of chunks carved so far.
func (p *Pool[T]) Chunks() int {
	return p.chunks
}
