/*
Package fn provides a type-erased callable with a closed set of shapes.

A Func[A, R] either wraps a free function of type func(A) R or a closure
binding some state S to a function func(S, A) R. The zero Func holds no
target; calling it reports ErrUninitialized instead of panicking.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fn

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// ErrUninitialized is returned when calling a Func without a target.
var ErrUninitialized = errors.New("fn: function not initialized")

// target is implemented by the shapes a Func may hold. It is sealed.
type target[A, R any] interface {
	call(A) R
}

type free[A, R any] func(A) R

func (f free[A, R]) call(a A) R { return f(a) }

type bound[S, A, R any] struct {
	state S
	f     func(S, A) R
}

func (b bound[S, A, R]) call(a A) R { return b.f(b.state, a) }

// Func is a callable taking A and returning R.
type Func[A, R any] struct {
	t target[A, R]
}

// Of wraps a free function. A nil f yields an uninitialized Func.
func Of[A, R any](f func(A) R) Func[A, R] {
	if f == nil {
		return Func[A, R]{}
	}
	return Func[A, R]{t: free[A, R](f)}
}

// Bind wraps f together with state, which is passed to every call.
func Bind[S, A, R any](state S, f func(S, A) R) Func[A, R] {
	if f == nil {
		return Func[A, R]{}
	}
	return Func[A, R]{t: bound[S, A, R]{state: state, f: f}}
}

// IsSet reports whether f has a target.
func (f Func[A, R]) IsSet() bool {
	return f.t != nil
}

// Call invokes the target of f.
func (f Func[A, R]) Call(a A) (R, error) {
	if f.t == nil {
		tracer().Debugf("fn: call of uninitialized %T", f)
		var zero R
		return zero, ErrUninitialized
	}
	return f.t.call(a), nil
}

// MustCall invokes the target of f and panics if there is none.
func (f Func[A, R]) MustCall(a A) R {
	if f.t == nil {
		panic(ErrUninitialized)
	}
	return f.t.call(a)
}
