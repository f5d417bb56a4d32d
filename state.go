// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// State is a computation threading mutable state of type S.
// State[S, A] consumes an input state and produces a value plus the
// successor state. Binding the same State value twice runs it twice, which
// is what lets the loop combinators re-check an effectful condition on every
// iteration.
type State[S, A any] func(S) (A, S)

// PointState lifts a pure value into State, leaving the state untouched.
func PointState[S, A any](a A) State[S, A] {
	return func(s S) (A, S) {
		return a, s
	}
}

// Get reads the current state.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the current state.
func Put[S any](s S) State[S, Unit] {
	return func(S) (Unit, S) {
		return Unit{}, s
	}
}

// Modify applies f to the state and returns the new state.
func Modify[S any](f func(S) S) State[S, S] {
	return func(s S) (S, S) {
		next := f(s)
		return next, next
	}
}

// Gets reads the state through a projection.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) {
		return f(s), s
	}
}

// BindState sequences two State computations.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a)(s1)
	}
}

// MapState applies a pure function to the result of a State computation.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a), s1
	}
}

// RunState runs the computation from an initial state, returning the result
// and the final state.
func RunState[S, A any](m State[S, A], initial S) (A, S) {
	return m(initial)
}

// EvalState runs the computation and returns only the result.
func EvalState[S, A any](m State[S, A], initial S) A {
	a, _ := m(initial)
	return a
}

// ExecState runs the computation and returns only the final state.
func ExecState[S, A any](m State[S, A], initial S) S {
	_, s := m(initial)
	return s
}

// StateM returns the monad dictionary for [State] with state type S at
// element types A to B.
func StateM[S, A, B any]() Monad[State[S, A], State[S, B], A, B] {
	return Monad[State[S, A], State[S, B], A, B]{
		Point: PointState[S, B],
		Bind:  BindState[S, A, B],
	}
}
