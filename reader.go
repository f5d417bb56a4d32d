// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Reader is a computation with access to a read-only environment of type R.
type Reader[R, A any] func(R) A

// PointReader lifts a pure value into Reader, ignoring the environment.
func PointReader[R, A any](a A) Reader[R, A] {
	return func(R) A {
		return a
	}
}

// Ask returns the environment itself.
func Ask[R any]() Reader[R, R] {
	return func(r R) R {
		return r
	}
}

// Asks reads the environment through a projection.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return Reader[R, A](f)
}

// BindReader sequences two Reader computations under the same environment.
func BindReader[R, A, B any](m Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B {
		return f(m(r))(r)
	}
}

// MapReader applies a pure function to the result of a Reader computation.
func MapReader[R, A, B any](m Reader[R, A], f func(A) B) Reader[R, B] {
	return func(r R) B {
		return f(m(r))
	}
}

// Local runs a computation under a modified environment.
func Local[R, A any](m Reader[R, A], f func(R) R) Reader[R, A] {
	return func(r R) A {
		return m(f(r))
	}
}

// RunReader runs the computation with the given environment.
func RunReader[R, A any](m Reader[R, A], env R) A {
	return m(env)
}

// ReaderM returns the monad dictionary for [Reader] with environment type R
// at element types A to B.
func ReaderM[R, A, B any]() Monad[Reader[R, A], Reader[R, B], A, B] {
	return Monad[Reader[R, A], Reader[R, B], A, B]{
		Point: PointReader[R, B],
		Bind:  BindReader[R, A, B],
	}
}
