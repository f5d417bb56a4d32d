// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monadic provides a dictionary-passing monad abstraction and
// generic loop combinators in Go.
//
// The core type [Monad] reifies the capability contract of a monad instance:
// Point lifts a pure value, Bind sequences a computation with a function
// producing the next computation. Generic algorithms take the dictionary as
// an explicit parameter, the standard substitute for typeclass resolution in
// a language without higher-kinded polymorphism.
//
// # Design Philosophy
//
// monadic provides:
//   - Minimal capability dictionaries ([Binder], [Applicative], [Monad])
//     from which all other operations are derived
//   - Loop combinators expressed purely in terms of Point and Bind, so they
//     inherit whatever suspension or short-circuit semantics the instance
//     supplies
//   - Executable algebraic laws that state exactly what the combinators
//     assume of an instance
//
// # Dictionary Encoding
//
// Go cannot abstract over a type constructor F, so a dictionary fixes F at a
// pair of element types: Monad[FA, FB, A, B] reads "the instance of F, used
// to sequence F[A] into F[B]". An instance is therefore a family of
// dictionary values produced by a generic constructor:
//
//   - [IdentM]: identity wrapper
//   - [OptionM]: optional value, None short-circuits
//   - [ListM]: slice-backed nondeterminism
//   - [EitherM]: success or error, Left short-circuits
//   - [StateM]: state threading
//   - [ReaderM]: read-only environment
//   - [WriterM]: accumulated output
//   - [ContM]: continuation-passing computations
//   - [TrampolineM]: stack-safe iterative evaluation
//
// A combinator that sequences through several shapes of F takes one
// dictionary per shape; the caller instantiates the same constructor at each.
//
// # Core Operations
//
// Minimal operations, carried by the dictionary:
//
//   - Point: Lift a pure value into F
//   - Bind: Sequence a computation with a function producing the next one
//
// Derived operations:
//
//   - [Map]: Apply a pure function to a result, bind(fa, a => point(f(a)))
//   - [Then]: Sequence, discarding the first result
//   - [Join]: Flatten F[F[A]] to F[A]
//   - [Ap]: Apply a wrapped function to a wrapped value, bind(ff, g => map(fa, g))
//
// # Loop Combinators
//
// Generic control flow built from Point and Bind alone:
//
//   - [WhileM]: Pre-test loop, collecting results with a [Collector]
//   - [WhileMDiscard]: Pre-test loop, discarding results
//   - [UntilM]: Post-test loop, collecting results (body runs at least once)
//   - [UntilMDiscard]: Post-test loop, discarding results
//   - [IterateWhile]: Repeat an effect while a predicate holds on its value
//   - [IterateUntil]: Repeat an effect until a predicate holds on its value
//
// The condition effect is re-bound every iteration; the body thunk is forced
// exactly once through a compute-once cell ([Lazy]) and its effect value
// re-bound each iteration. The loops impose no execution model of their own:
// with [State] they thread state synchronously, with [Either] they stop at
// the first Left, with [Trampoline] they evaluate iteratively without stack
// growth.
//
// # Accumulation
//
// [Collector] is the plus-with-identity capability the collecting loops
// accumulate into:
//
//   - [SliceCollector]: append into a slice
//   - [ListCollector]: append into a [List]
//   - [CountCollector]: count iterations
//
// # Laws
//
// Conformance checks for instances, parameterized by dictionaries, an
// observational equality, and sample inputs:
//
//   - [LawRightIdentity]: bind(fa, point) == fa
//   - [LawLeftIdentity]: bind(point(a), f) == f(a)
//   - [LawAssociativity]: regrouping two sequencing steps never changes the outcome
//   - [LawApConsistency]: native ap agrees with the monadic derivation
//   - [LawCollector]: Plus associative, Empty its two-sided identity
//
// The laws are properties to check over concrete instances, not runtime
// behavior; the package's own tests drive them with generated inputs.
//
// # Example
//
//	counter := monadic.Modify(func(n int) int { return n + 1 })
//	loop := monadic.IterateUntil(
//		monadic.StateM[int, int, int](),
//		counter,
//		func(n int) bool { return n == 3 },
//	)
//	result, final := monadic.RunState(loop, 0)
//	// result == 3, final == 3
package monadic
