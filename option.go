// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Option is an optional value: Some (present) or None (absent).
//
// As an instance, None short-circuits Bind: the sequencing function never
// runs. The combinators in control.go inherit that behavior without knowing
// about it.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value, or fallback when absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// OptionM returns the monad dictionary for [Option] at element types A to B.
func OptionM[A, B any]() Monad[Option[A], Option[B], A, B] {
	return Monad[Option[A], Option[B], A, B]{
		Point: Some[B],
		Bind:  FlatMapOption[A, B],
	}
}

// OptionA returns the applicative dictionary for [Option].
// Ap yields Some only when both the function and the value are present.
func OptionA[A, B any]() Applicative[Option[A], Option[func(A) B], Option[B], A, B] {
	return Applicative[Option[A], Option[func(A) B], Option[B], A, B]{
		Point: Some[B],
		Ap: func(fa Option[A], ff Option[func(A) B]) Option[B] {
			if ff.present && fa.present {
				return Some(ff.value(fa.value))
			}
			return None[B]()
		},
	}
}
