package list

import "cmp"

// Equal reports whether two lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.Front(), b.Front(); x != nil; x, y = x.Next(), y.Next() {
		if !eq(x.Value, y.Value) {
			return false
		}
	}
	return true
}

// Compare compares two lists lexicographically. Under equal prefixes the
// shorter list sorts first. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses cmpFn to compare elements.
func CompareFunc[T any](a, b *List[T], cmpFn func(T, T) int) int {
	x, y := a.Front(), b.Front()
	for x != nil && y != nil {
		if c := cmpFn(x.Value, y.Value); c != 0 {
			return sign(c)
		}
		x, y = x.Next(), y.Next()
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	}
	return +1
}

func sign(c int) int {
	if c < 0 {
		return -1
	}
	return +1
}
