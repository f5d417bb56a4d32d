// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Generic loop combinators, derived purely from Point and Bind.
//
// The loops are structurally recursive unfoldings: each iteration is a fresh
// Bind, so a generic iteration scheme cannot be replaced by a plain for loop
// without fixing the instance. Execution order and stack behavior therefore
// follow the instance's Bind. Function-typed instances ([State], [Reader],
// [Cont]) unfold one iteration at a time as the computation runs; the
// [Trampoline] instance evaluates iteratively and is the choice for loops
// with unbounded iteration counts.
//
// Each combinator takes one dictionary per instantiation of the instance it
// sequences through. The condition effect is passed by value and re-bound
// before (or after) every iteration, so effectful instances re-execute it
// each time around the loop. The body is passed as a thunk and forced exactly
// once through a compute-once cell; the forced effect value is what every
// iteration re-binds.

// WhileM repeatedly executes body while the condition effect yields true,
// accumulating results with col. It is a pre-test loop: p is bound before
// each body execution, and a first false yields point(col.Empty()) without
// running the body at all.
//
// cond binds the condition F[bool], step binds the body F[A], and loop maps
// over the recursive tail F[S]; all three come from the same instance.
func WhileM[FB, FA, FS, A, S any](
	cond Monad[FB, FS, bool, S],
	step Monad[FA, FS, A, S],
	loop Monad[FS, FS, S, S],
	col Collector[S, A],
	p FB,
	body func() FA,
) FS {
	fa := memoize(body)
	var recur func() FS
	recur = func() FS {
		return cond.Bind(p, func(ok bool) FS {
			if !ok {
				return cond.Point(col.Empty())
			}
			return step.Bind(fa(), func(a A) FS {
				return Map(loop, recur(), func(rest S) S {
					return col.Plus(col.Unit(a), rest)
				})
			})
		})
	}
	return recur()
}

// WhileMDiscard is [WhileM] without accumulation: the body runs for its
// effect only and the loop terminates with the unit effect.
func WhileMDiscard[FB, FA, FU, A any](
	cond Monad[FB, FU, bool, Unit],
	step Monad[FA, FU, A, Unit],
	p FB,
	body func() FA,
) FU {
	fa := memoize(body)
	var recur func() FU
	recur = func() FU {
		return cond.Bind(p, func(ok bool) FU {
			if !ok {
				return cond.Point(Unit{})
			}
			return step.Bind(fa(), func(A) FU {
				return recur()
			})
		})
	}
	return recur()
}

// UntilM executes body once unconditionally, then continues as [WhileM] on
// the negated condition, with the first result prepended to the accumulated
// structure. It is a post-test loop: the condition is bound after each body
// execution, so the body always runs at least once.
//
// flip maps over the condition F[bool] to negate it.
func UntilM[FB, FA, FS, A, S any](
	cond Monad[FB, FS, bool, S],
	flip Monad[FB, FB, bool, bool],
	step Monad[FA, FS, A, S],
	loop Monad[FS, FS, S, S],
	col Collector[S, A],
	body func() FA,
	p FB,
) FS {
	fa := memoize(body)
	notP := Map(flip, p, func(b bool) bool { return !b })
	return step.Bind(fa(), func(first A) FS {
		return Map(loop, WhileM(cond, step, loop, col, notP, fa), func(rest S) S {
			return col.Plus(col.Unit(first), rest)
		})
	})
}

// UntilMDiscard is [UntilM] without accumulation.
func UntilMDiscard[FB, FA, FU, A any](
	cond Monad[FB, FU, bool, Unit],
	flip Monad[FB, FB, bool, bool],
	step Monad[FA, FU, A, Unit],
	body func() FA,
	p FB,
) FU {
	fa := memoize(body)
	notP := Map(flip, p, func(b bool) bool { return !b })
	return step.Bind(fa(), func(A) FU {
		return WhileMDiscard(cond, step, notP, fa)
	})
}

// IterateWhile executes f repeatedly while the predicate holds on the
// produced value, returning the first value for which p is false. f is bound
// at least once.
func IterateWhile[FA, A any](m Monad[FA, FA, A, A], f FA, p func(A) bool) FA {
	var recur func() FA
	recur = func() FA {
		return m.Bind(f, func(a A) FA {
			if p(a) {
				return recur()
			}
			return m.Point(a)
		})
	}
	return recur()
}

// IterateUntil executes f repeatedly until the predicate holds on the
// produced value, returning the first value for which p is true. f is bound
// at least once.
func IterateUntil[FA, A any](m Monad[FA, FA, A, A], f FA, p func(A) bool) FA {
	return IterateWhile(m, f, func(a A) bool { return !p(a) })
}
