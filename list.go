// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// List is a slice-backed nondeterminism instance. Bind applies the
// sequencing function to every element and concatenates the results, so an
// empty List short-circuits like None.
type List[A any] []A

// ListOf creates a List from the given elements.
func ListOf[A any](xs ...A) List[A] {
	if len(xs) == 0 {
		return nil
	}
	out := make(List[A], len(xs))
	copy(out, xs)
	return out
}

// SingletonList creates a one-element List. This is the instance's point.
func SingletonList[A any](a A) List[A] {
	return List[A]{a}
}

// ConcatList appends y after x without mutating either operand.
func ConcatList[A any](x, y List[A]) List[A] {
	if len(x) == 0 {
		return y
	}
	if len(y) == 0 {
		return x
	}
	out := make(List[A], 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// MapList applies f to every element.
func MapList[A, B any](l List[A], f func(A) B) List[B] {
	if len(l) == 0 {
		return nil
	}
	out := make(List[B], len(l))
	for i, a := range l {
		out[i] = f(a)
	}
	return out
}

// FlatMapList applies f to every element and concatenates the results.
func FlatMapList[A, B any](l List[A], f func(A) List[B]) List[B] {
	var out List[B]
	for _, a := range l {
		out = append(out, f(a)...)
	}
	return out
}

// ListM returns the monad dictionary for [List] at element types A to B.
func ListM[A, B any]() Monad[List[A], List[B], A, B] {
	return Monad[List[A], List[B], A, B]{
		Point: SingletonList[B],
		Bind:  FlatMapList[A, B],
	}
}

// ListA returns the applicative dictionary for [List].
// Ap applies every function to every value, functions outermost, matching
// the order of the monadic derivation.
func ListA[A, B any]() Applicative[List[A], List[func(A) B], List[B], A, B] {
	return Applicative[List[A], List[func(A) B], List[B], A, B]{
		Point: SingletonList[B],
		Ap: func(fa List[A], ff List[func(A) B]) List[B] {
			if len(ff) == 0 || len(fa) == 0 {
				return nil
			}
			out := make(List[B], 0, len(ff)*len(fa))
			for _, g := range ff {
				for _, a := range fa {
					out = append(out, g(a))
				}
			}
			return out
		},
	}
}
