package vector

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/fn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeVector(t *testing.T, values ...int) *Vector[int] {
	t.Helper()
	v, err := Of(Config[int]{}, values...)
	if err != nil {
		t.Fatalf("failed to create vector: %v", err)
	}
	return v
}

func contents[T any](v *Vector[T]) []T {
	return slices.Collect(v.Values())
}

func checkVector(t *testing.T, v *Vector[int], want []int) {
	t.Helper()
	if err := CheckReserved(v); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if diff := cmp.Diff(want, contents(v)); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{Capacity: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewReservesInitialCapacity(t *testing.T) {
	v, err := New(Config[int]{Capacity: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Len() != 0 || v.Cap() != 5 {
		t.Fatalf("unexpected state len=%d cap=%d", v.Len(), v.Cap())
	}
	if _, ok := v.Config().Allocator.(alloc.Heap[int]); !ok {
		t.Fatalf("expected heap allocator as default, got %T", v.Config().Allocator)
	}
}

func TestAppendGrowsGeometrically(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	v := makeVector(t)
	var caps []int
	for i := 1; i <= 20; i++ {
		before := v.Len()
		if err := v.Append(i * 10); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
		if v.Len() != before+1 {
			t.Fatalf("append did not increase length: %d -> %d", before, v.Len())
		}
		if v.Cap() < v.Len() {
			t.Fatalf("capacity %d below length %d", v.Cap(), v.Len())
		}
		if last, _ := v.Back(); last != i*10 {
			t.Fatalf("last element is %d, want %d", last, i*10)
		}
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
	}
	if diff := cmp.Diff([]int{1, 2, 4, 8, 16, 32}, caps); diff != "" {
		t.Fatalf("unexpected capacity progression (-want +got):\n%s", diff)
	}
	if err := CheckReserved(v); err != nil {
		t.Fatal(err)
	}
}

func TestGrowthPreservesElements(t *testing.T) {
	v := makeVector(t, 1, 2, 3, 4)
	if v.Cap() != v.Len() {
		t.Fatalf("expected full vector, len=%d cap=%d", v.Len(), v.Cap())
	}
	if err := v.Append(5); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 8 {
		t.Fatalf("expected capacity to double to 8, is %d", v.Cap())
	}
	checkVector(t, v, []int{1, 2, 3, 4, 5})
}

func TestInsertThenErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	v := makeVector(t)
	for _, x := range []int{1, 2, 3} {
		if err := v.Append(x); err != nil {
			t.Fatal(err)
		}
	}
	if v.Cap() < 3 {
		t.Fatalf("capacity %d below 3", v.Cap())
	}
	if err := v.InsertAt(1, 9); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{1, 9, 2, 3})
	if err := v.EraseAt(0); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{9, 2, 3})
}

func TestAtReportsIndexAndSize(t *testing.T) {
	for _, values := range [][]int{nil, {1}, {1, 2, 3}} {
		v := makeVector(t, values...)
		_, err := v.At(v.Len())
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected *RangeError for size %d, got %v", v.Len(), err)
		}
		if !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("RangeError does not match ErrIndexOutOfBounds")
		}
		if rangeErr.Index != v.Len() || rangeErr.Size != v.Len() {
			t.Fatalf("unexpected range error %+v for size %d", rangeErr, v.Len())
		}
	}
	v := makeVector(t, 4, 5)
	if x, err := v.At(1); err != nil || x != 5 {
		t.Fatalf("At(1) = %d, %v", x, err)
	}
	if _, err := v.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds for negative index, got %v", err)
	}
	if err := v.Set(2, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds for Set, got %v", err)
	}
}

func TestReserveIsExact(t *testing.T) {
	v := makeVector(t, 1, 2)
	if err := v.Reserve(10); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 10 || v.Len() != 2 {
		t.Fatalf("unexpected state len=%d cap=%d", v.Len(), v.Cap())
	}
	if err := v.Reserve(3); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 10 {
		t.Fatalf("reserve below capacity must be a no-op, cap=%d", v.Cap())
	}
	if err := v.Reserve(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	checkVector(t, v, []int{1, 2})
}

func TestResize(t *testing.T) {
	v, err := New(Config[int]{Traits: alloc.Traits[int]{Default: func() int { return -1 }}})
	if err != nil {
		t.Fatal(err)
	}
	if err = v.Resize(3); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{-1, -1, -1})
	if err = v.ResizeWith(5, 7); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{-1, -1, -1, 7, 7})
	if err = v.Resize(2); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 5 {
		t.Fatalf("shrinking must keep capacity, cap=%d", v.Cap())
	}
	checkVector(t, v, []int{-1, -1})
}

func TestShrinkToFit(t *testing.T) {
	v := makeVector(t, 1, 2, 3)
	if err := v.Reserve(16); err != nil {
		t.Fatal(err)
	}
	if err := v.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 3 {
		t.Fatalf("expected capacity 3, is %d", v.Cap())
	}
	checkVector(t, v, []int{1, 2, 3})
	v.Clear()
	if err := v.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 0 {
		t.Fatalf("expected block to be released, cap=%d", v.Cap())
	}
	if err := v.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertVariants(t *testing.T) {
	v := makeVector(t, 1, 5)
	if err := v.InsertAt(1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{1, 2, 3, 4, 5})
	if err := v.InsertN(5, 2, 6); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{1, 2, 3, 4, 5, 6, 6})
	if err := v.InsertSeq(0, slices.Values([]int{-1, 0})); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{-1, 0, 1, 2, 3, 4, 5, 6, 6})
	p, err := v.EmplaceAt(2, func(x *int) { *x = 99 })
	if err != nil {
		t.Fatal(err)
	}
	if *p != 99 {
		t.Fatalf("EmplaceAt returned pointer to %d", *p)
	}
	checkVector(t, v, []int{-1, 0, 99, 1, 2, 3, 4, 5, 6, 6})
	if err := v.InsertAt(11, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds insertion to fail, got %v", err)
	}
}

func TestEraseRange(t *testing.T) {
	v := makeVector(t, 0, 1, 2, 3, 4, 5, 6)
	if err := v.EraseRange(2, 3); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{0, 1, 5, 6})
	if err := v.EraseRange(2, 3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected range error, got %v", err)
	}
	if err := v.EraseRange(4, 0); err != nil {
		t.Fatalf("empty erase at end should succeed, got %v", err)
	}
	if err := v.EraseAt(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected range error, got %v", err)
	}
	if err := v.PopBack(); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{0, 1, 5})
}

func TestAllocationFailureLeavesVectorIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	limited := alloc.NewLimited[int](4)
	v, err := New(Config[int]{Allocator: limited})
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []int{1, 2} {
		if err := v.Append(x); err != nil {
			t.Fatalf("append %d: %v", x, err)
		}
	}
	// growing to 4 slots needs 4 more while 2 are still held
	err = v.Append(3)
	if !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected allocation failure, got %v", err)
	}
	if v.Len() != 2 || v.Cap() != 2 {
		t.Fatalf("failed append changed state: len=%d cap=%d", v.Len(), v.Cap())
	}
	checkVector(t, v, []int{1, 2})
	if err := v.InsertAt(0, 7, 8); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected allocation failure on insert, got %v", err)
	}
	checkVector(t, v, []int{1, 2})
	if err := v.Assign(1, 2, 3, 4, 5); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected allocation failure on assign, got %v", err)
	}
	checkVector(t, v, []int{1, 2})
	if limited.Used() != 2 {
		t.Fatalf("expected 2 slots in use, have %d", limited.Used())
	}
}

func TestEveryBlockIsReturnedDestroyed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	tracker := alloc.NewTracking[int]()
	tracker.Pristine = alloc.ZeroCheck[int]()
	v, err := New(Config[int]{Allocator: tracker})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 9; i++ {
		if err := v.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	if err := v.EraseRange(0, 4); err != nil {
		t.Fatal(err)
	}
	if err := v.ShrinkToFit(); err != nil {
		t.Fatal(err)
	}
	c, err := v.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if tracker.Live() != 2 {
		t.Fatalf("expected 2 live blocks, have %d", tracker.Live())
	}
	v.Release()
	c.Release()
	if err := tracker.Verify(); err != nil {
		t.Fatalf("allocator reports problems: %v", err)
	}
}

func TestDestroyHookAndMoves(t *testing.T) {
	destroyed := 0
	cloned := 0
	cfg := Config[string]{Traits: alloc.Traits[string]{
		Destroy: func(*string) { destroyed++ },
		Clone: func(s string) string {
			cloned++
			return s
		},
	}}
	v, err := Of(cfg, "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		if err := v.Append("x"); err != nil {
			t.Fatal(err)
		}
	}
	if destroyed != 0 || cloned != 0 {
		t.Fatalf("growth must relocate by moving: destroyed=%d cloned=%d", destroyed, cloned)
	}
	if err := v.EraseAt(1); err != nil {
		t.Fatal(err)
	}
	if destroyed != 1 {
		t.Fatalf("erase should destroy exactly one element, destroyed=%d", destroyed)
	}
	if err := v.Set(0, "z"); err != nil {
		t.Fatal(err)
	}
	if destroyed != 2 {
		t.Fatalf("Set should destroy the replaced element, destroyed=%d", destroyed)
	}
	n := v.Len()
	v.Clear()
	if destroyed != 2+n {
		t.Fatalf("clear should destroy %d elements, destroyed=%d", n, destroyed-2)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Config[[]int]{Traits: alloc.Traits[[]int]{
		Clone: func(s []int) []int { return slices.Clone(s) },
	}}
	v, err := Of(cfg, []int{1}, []int{2})
	if err != nil {
		t.Fatal(err)
	}
	c, err := v.Clone()
	if err != nil {
		t.Fatal(err)
	}
	(*c.IndexRef(0))[0] = 100
	if v.Index(0)[0] != 1 {
		t.Fatalf("clone shares element storage with original")
	}
	if c.Cap() != 2 {
		t.Fatalf("clone should be sized exactly, cap=%d", c.Cap())
	}
	if !EqualFunc(v, c, func(a, b []int) bool { return len(a) == len(b) }) {
		t.Fatalf("clone differs in shape")
	}
}

func TestTakeMoveCopySwap(t *testing.T) {
	v := makeVector(t, 1, 2, 3)
	w := v.Take()
	if !v.IsEmpty() || v.Cap() != 0 {
		t.Fatalf("source not empty after Take: len=%d cap=%d", v.Len(), v.Cap())
	}
	checkVector(t, w, []int{1, 2, 3})
	if err := v.Append(4); err != nil {
		t.Fatalf("moved-from vector not reusable: %v", err)
	}

	u := makeVector(t, 9)
	u.MoveFrom(w)
	checkVector(t, u, []int{1, 2, 3})
	if !w.IsEmpty() {
		t.Fatalf("MoveFrom did not empty source")
	}

	if err := w.CopyFrom(u); err != nil {
		t.Fatal(err)
	}
	checkVector(t, w, []int{1, 2, 3})
	if err := w.Set(0, 0); err != nil {
		t.Fatal(err)
	}
	checkVector(t, u, []int{1, 2, 3})

	u.Swap(v)
	checkVector(t, u, []int{4})
	checkVector(t, v, []int{1, 2, 3})
}

func TestAssign(t *testing.T) {
	v := makeVector(t, 1, 2, 3, 4)
	if err := v.Assign(7, 8); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{7, 8})
	if v.Cap() != 4 {
		t.Fatalf("assign within capacity must keep the block, cap=%d", v.Cap())
	}
	if err := v.AssignN(6, 1); err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{1, 1, 1, 1, 1, 1})
}

func TestIteratorInvalidation(t *testing.T) {
	v := makeVector(t, 1, 2, 3)
	if err := v.Reserve(4); err != nil {
		t.Fatal(err)
	}
	first := v.Begin()
	if !first.Valid() || first.Value() != 1 {
		t.Fatalf("fresh iterator not valid")
	}
	if err := v.Append(4); err != nil { // fits, no reallocation
		t.Fatal(err)
	}
	if !first.Valid() {
		t.Fatalf("iterator invalidated without reallocation")
	}
	if err := v.Append(5); err != nil { // reallocates
		t.Fatal(err)
	}
	if first.Valid() {
		t.Fatalf("iterator still valid after reallocation")
	}
	last := v.RBegin()
	if err := v.EraseAt(0); err != nil {
		t.Fatal(err)
	}
	if last.Valid() {
		t.Fatalf("iterator past the new end still reports valid")
	}
}

func TestForwardAndReverseTraversal(t *testing.T) {
	values := []int{3, 1, 4, 1, 5}
	v := makeVector(t, values...)
	var fwd, bwd []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		fwd = append(fwd, it.Value())
	}
	for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
		bwd = append(bwd, it.Value())
	}
	if diff := cmp.Diff(values, fwd); diff != "" {
		t.Fatalf("forward traversal (-want +got):\n%s", diff)
	}
	reversed := slices.Clone(values)
	slices.Reverse(reversed)
	if diff := cmp.Diff(reversed, bwd); diff != "" {
		t.Fatalf("reverse traversal (-want +got):\n%s", diff)
	}
	var idx []int
	for i := range v.Backward() {
		idx = append(idx, i)
	}
	if diff := cmp.Diff([]int{4, 3, 2, 1, 0}, idx); diff != "" {
		t.Fatalf("backward indices (-want +got):\n%s", diff)
	}
	it, err := v.Pos(2)
	if err != nil || it.Value() != 4 || it.Prev().Value() != 1 {
		t.Fatalf("Pos(2) positioned wrongly: %v", err)
	}
}

func TestCompare(t *testing.T) {
	a := makeVector(t, 1, 2)
	b := makeVector(t, 1, 2, 3)
	c := makeVector(t, 1, 3)
	if !Equal(a, makeVector(t, 1, 2)) || Equal(a, b) {
		t.Fatalf("equality broken")
	}
	if Compare(a, b) >= 0 {
		t.Fatalf("shorter prefix must sort first")
	}
	if Compare(c, b) <= 0 {
		t.Fatalf("[1 3] must sort after [1 2 3]")
	}
	if Compare(makeVector(t), makeVector(t)) != 0 {
		t.Fatalf("empty vectors must compare equal")
	}
	if CompareFunc(b, a, func(x, y int) int { return x - y }) <= 0 {
		t.Fatalf("CompareFunc disagrees with Compare")
	}
}

func TestGenerate(t *testing.T) {
	v, err := Generate(Config[int]{}, 4, fn.Of(func(i int) int { return i * i }))
	if err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{0, 1, 4, 9})
	_, err = Generate(Config[int]{}, 4, fn.Func[int, int]{})
	if !errors.Is(err, fn.ErrUninitialized) {
		t.Fatalf("expected fn.ErrUninitialized, got %v", err)
	}
}

func TestFromSeqAndFilled(t *testing.T) {
	v, err := FromSeq(Config[int]{}, slices.Values([]int{5, 6, 7}))
	if err != nil {
		t.Fatal(err)
	}
	checkVector(t, v, []int{5, 6, 7})
	f, err := NewFilled(Config[int]{}, 3, 8)
	if err != nil {
		t.Fatal(err)
	}
	checkVector(t, f, []int{8, 8, 8})
	s, err := NewSized(Config[int]{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	checkVector(t, s, []int{0, 0})
	if _, err := v.Front(); err != nil {
		t.Fatal(err)
	}
	empty := makeVector(t)
	if _, err := empty.Front(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := empty.PopBack(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestMaxLen(t *testing.T) {
	small, _ := New(Config[byte]{})
	large, _ := New(Config[[64]byte]{})
	if small.MaxLen() <= large.MaxLen() || large.MaxLen() <= 0 {
		t.Fatalf("unexpected bounds %d / %d", small.MaxLen(), large.MaxLen())
	}
}

func TestOversizedRequestsFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	v := makeVector(t, 1, 2, 3)
	for _, n := range []int{v.MaxLen() + 1, math.MaxInt} {
		if err := v.Reserve(n); !errors.Is(err, alloc.ErrOutOfMemory) {
			t.Fatalf("reserve %d: expected ErrOutOfMemory, got %v", n, err)
		}
	}
	checkVector(t, v, []int{1, 2, 3})
	if err := v.InsertN(0, math.MaxInt, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	checkVector(t, v, []int{1, 2, 3})
	err := v.EraseRange(1, math.MaxInt)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Size != 3 {
		t.Fatalf("expected range error for size 3, got %v", err)
	}
	checkVector(t, v, []int{1, 2, 3})
}

func TestFailedConstructorsReleaseBlock(t *testing.T) {
	limited := alloc.NewLimited[int](8)
	cfg := Config[int]{Allocator: limited, Capacity: 4}
	if _, err := NewFilled(cfg, 20, 1); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if limited.Used() != 0 {
		t.Fatalf("NewFilled left %d slots outstanding", limited.Used())
	}
	if _, err := NewSized(cfg, 20); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if limited.Used() != 0 {
		t.Fatalf("NewSized left %d slots outstanding", limited.Used())
	}
	gen := fn.Of(func(i int) int { return i })
	if _, err := Generate(cfg, 20, gen); !errors.Is(err, alloc.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if limited.Used() != 0 {
		t.Fatalf("Generate left %d slots outstanding", limited.Used())
	}
}

func TestCompareNilVectors(t *testing.T) {
	var null *Vector[int]
	empty := makeVector(t)
	if !Equal(null, empty) || !Equal(null, null) {
		t.Fatalf("nil vector must equal an empty one")
	}
	if Compare(null, makeVector(t, 1)) != -1 {
		t.Fatalf("nil vector must sort first")
	}
	if null.Data() != nil {
		t.Fatalf("nil vector has data")
	}
}
