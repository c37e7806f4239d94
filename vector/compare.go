package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether two vectors hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare compares two vectors lexicographically. Under equal prefixes the
// shorter vector sorts first. The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is like Compare but uses cmpFn to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmpFn)
}
