// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Capability dictionaries for monadic sequencing.
//
// Go has no higher-kinded polymorphism, so a monad instance for a type
// constructor F cannot be expressed as a single value. Instead, an instance
// is a family of dictionary values, each fixing F at a pair of element types.
// Instance files export generic constructors (e.g. [OptionM], [StateM])
// that produce the dictionary at whatever instantiation a call site needs.

// Unit is the empty struct, the result type of computations run only for
// their effects.
type Unit = struct{}

// Binder is the sequencing fragment of a monad instance.
//
// FA and FB stand for the applications F[A] and F[B] of the same type
// constructor F. Bind runs fa, passes the produced value to f, and continues
// with the computation f returns.
type Binder[FA, FB, A, B any] struct {
	Bind func(fa FA, f func(A) FB) FB
}

// Monad is the minimal capability dictionary of a monad instance, fixed at
// element types A and B.
//
// Point lifts a pure value into F. Bind sequences a computation with a
// function producing the next computation. Everything else in this package
// ([Map], [Then], [Join], [Ap], the loop combinators in control.go) is
// derived from these two operations.
//
// A dictionary carries no failure semantics of its own: whatever
// short-circuiting or suspension the instance's Bind implements flows through
// the derived operations untouched.
type Monad[FA, FB, A, B any] struct {
	Point func(b B) FB
	Bind  func(fa FA, f func(A) FB) FB
}

// Binder returns the sequencing fragment of m.
func (m Monad[FA, FB, A, B]) Binder() Binder[FA, FB, A, B] {
	return Binder[FA, FB, A, B]{Bind: m.Bind}
}

// Map applies a pure function to the result of fa.
//
// Map is definitionally bind(fa, a => point(f(a))): any law-abiding instance
// gets a lawful functor for free. Instances that carry a cheaper native map
// (e.g. [MapOption], [MapCont]) must agree with this derivation.
func Map[FA, FB, A, B any](m Monad[FA, FB, A, B], fa FA, f func(A) B) FB {
	return m.Bind(fa, func(a A) FB {
		return m.Point(f(a))
	})
}

// Then sequences fa before fb, discarding fa's result.
func Then[FA, FB, A, B any](m Monad[FA, FB, A, B], fa FA, fb FB) FB {
	return m.Bind(fa, func(A) FB {
		return fb
	})
}

// Join flattens one level of nesting: F[F[A]] to F[A].
// The dictionary is the instance at element types F[A] and A.
func Join[FFA, FA, A any](m Monad[FFA, FA, FA, A], ffa FFA) FA {
	return m.Bind(ffa, func(fa FA) FA {
		return fa
	})
}
