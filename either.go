// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Either represents a value that is either Left (error) or Right (success).
//
// As an instance it sequences through Right and short-circuits on Left,
// which is the canonical demonstration that failure semantics live in the
// instance: a loop combinator driven by Either stops unfolding at the first
// Left without any cooperation from control.go.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// EitherM returns the monad dictionary for [Either] with error type E at
// element types A to B.
func EitherM[E, A, B any]() Monad[Either[E, A], Either[E, B], A, B] {
	return Monad[Either[E, A], Either[E, B], A, B]{
		Point: Right[E, B],
		Bind:  FlatMapEither[E, A, B],
	}
}

// EitherA returns the applicative dictionary for [Either].
// Ap runs the function effect first: a Left function wins over a Left value,
// matching the order of the monadic derivation.
func EitherA[E, A, B any]() Applicative[Either[E, A], Either[E, func(A) B], Either[E, B], A, B] {
	return Applicative[Either[E, A], Either[E, func(A) B], Either[E, B], A, B]{
		Point: Right[E, B],
		Ap: func(fa Either[E, A], ff Either[E, func(A) B]) Either[E, B] {
			if !ff.isRight {
				return Left[E, B](ff.left)
			}
			if !fa.isRight {
				return Left[E, B](fa.left)
			}
			return Right[E](ff.right(fa.right))
		},
	}
}
