// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Ident is the identity instance: a bare value with no effect.
// It is the simplest law-check target and the degenerate case every
// combinator must handle.
type Ident[A any] struct {
	Value A
}

// Id wraps a value into the identity instance.
func Id[A any](a A) Ident[A] {
	return Ident[A]{Value: a}
}

// MapIdent applies f to the wrapped value.
func MapIdent[A, B any](i Ident[A], f func(A) B) Ident[B] {
	return Ident[B]{Value: f(i.Value)}
}

// FlatMapIdent sequences through the wrapped value.
func FlatMapIdent[A, B any](i Ident[A], f func(A) Ident[B]) Ident[B] {
	return f(i.Value)
}

// IdentM returns the monad dictionary for [Ident] at element types A to B.
func IdentM[A, B any]() Monad[Ident[A], Ident[B], A, B] {
	return Monad[Ident[A], Ident[B], A, B]{
		Point: Id[B],
		Bind:  FlatMapIdent[A, B],
	}
}

// IdentA returns the applicative dictionary for [Ident].
func IdentA[A, B any]() Applicative[Ident[A], Ident[func(A) B], Ident[B], A, B] {
	return Applicative[Ident[A], Ident[func(A) B], Ident[B], A, B]{
		Point: Id[B],
		Ap: func(fa Ident[A], ff Ident[func(A) B]) Ident[B] {
			return Ident[B]{Value: ff.Value(fa.Value)}
		},
	}
}
