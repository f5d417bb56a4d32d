// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation instance.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for computations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// BindCont sequences two continuations.
// It runs m, then passes the result to f to get a new continuation.
func BindCont[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// MapCont applies a pure function to the result of a continuation.
//
// Allocation note: MapCont is equivalent to BindCont(m, compose(Return, f))
// but avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func MapCont[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// ThenCont sequences two continuations, discarding the first result.
//
// Allocation note: ThenCont avoids the closure capture of a transformation
// function that would occur with BindCont(m, func(_ A) { return n }).
func ThenCont[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
// Shift/Reset follow Danvy & Filinski's formulation (1990).
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}

// ContM returns the monad dictionary for [Cont] with answer type R at
// element types A to B.
func ContM[R, A, B any]() Monad[Cont[R, A], Cont[R, B], A, B] {
	return Monad[Cont[R, A], Cont[R, B], A, B]{
		Point: Return[R, B],
		Bind:  BindCont[R, A, B],
	}
}
