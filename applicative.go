// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Applicative is the capability dictionary of an applicative instance.
//
// FF stands for the application F[func(A) B]: a wrapped function. Ap applies
// the wrapped function to the wrapped value. Instances with native ap (e.g.
// [OptionA], [ListA]) must agree with the monadic derivation [Ap]; the law
// [LawApConsistency] checks exactly that.
type Applicative[FA, FF, FB, A, B any] struct {
	Point func(b B) FB
	Ap    func(fa FA, ff FF) FB
}

// Ap applies a wrapped function to a wrapped value by sequencing:
// bind(ff, g => map(fa, g)). The function effect runs first, then the value
// effect, matching the canonical monadic formulation of ap.
func Ap[FA, FF, FB, A, B any](
	mf Monad[FF, FB, func(A) B, B],
	mv Monad[FA, FB, A, B],
	fa FA, ff FF,
) FB {
	return mf.Bind(ff, func(g func(A) B) FB {
		return Map(mv, fa, g)
	})
}

// ApplicativeOf derives the applicative fragment of an instance from its
// monad dictionaries. The derived Ap is [Ap]; the derived Point is the
// monad's Point.
func ApplicativeOf[FA, FF, FB, A, B any](
	mf Monad[FF, FB, func(A) B, B],
	mv Monad[FA, FB, A, B],
) Applicative[FA, FF, FB, A, B] {
	return Applicative[FA, FF, FB, A, B]{
		Point: mf.Point,
		Ap: func(fa FA, ff FF) FB {
			return Ap(mf, mv, fa, ff)
		},
	}
}
