// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Lazy is a deferred computation forced at most once.
//
// The loop combinators use it to evaluate their body thunk exactly once per
// loop, not once per syntactic occurrence in the recursive unfolding. It is
// not synchronized: a computation description is built and run on a single
// goroutine, like everything else in this package.
type Lazy[T any] struct {
	fn     func() T
	value  T
	forced bool
}

// Defer wraps f into a compute-once cell. f runs on the first Force call
// and never again.
func Defer[T any](f func() T) *Lazy[T] {
	return &Lazy[T]{fn: f}
}

// Force returns the value, computing it on first use.
func (l *Lazy[T]) Force() T {
	if !l.forced {
		l.value = l.fn()
		l.forced = true
		l.fn = nil
	}
	return l.value
}

// Forced reports whether the value has been computed.
func (l *Lazy[T]) Forced() bool {
	return l.forced
}

// memoize is the function form of [Defer] used by the loop combinators.
func memoize[T any](f func() T) func() T {
	return Defer(f).Force
}
