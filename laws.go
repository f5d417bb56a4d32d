// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Executable conformance laws.
//
// Every instance whose dictionaries are fed to the derived operations and
// loop combinators must satisfy these laws; the combinators assume them.
// Each check is parameterized by the dictionaries involved, an equality on
// the instance type, and sample inputs, so that property tests can drive it
// with generated data. Equality is observational: for function-typed
// instances, compare results at sampled arguments.
//
// Reordering effects changes outcomes; regrouping must not. That is the
// content of [LawAssociativity], and it is what makes the recursive
// unfoldings in control.go well-defined.

// LawRightIdentity reports whether bind(fa, point) is observably equal
// to fa.
func LawRightIdentity[FA, A any](
	m Monad[FA, FA, A, A],
	eq func(FA, FA) bool,
	fa FA,
) bool {
	return eq(m.Bind(fa, m.Point), fa)
}

// LawLeftIdentity reports whether bind(point(a), f) is observably equal
// to f(a). lift is the instance at element types A to A, supplying point
// at A.
func LawLeftIdentity[FA, FB, A, B any](
	lift Monad[FA, FA, A, A],
	m Monad[FA, FB, A, B],
	eq func(FB, FB) bool,
	a A,
	f func(A) FB,
) bool {
	return eq(m.Bind(lift.Point(a), f), f(a))
}

// LawAssociativity reports whether bind(bind(fa, f), g) is observably equal
// to bind(fa, a => bind(f(a), g)).
func LawAssociativity[FA, FB, FC, A, B, C any](
	mab Monad[FA, FB, A, B],
	mbc Monad[FB, FC, B, C],
	mac Monad[FA, FC, A, C],
	eq func(FC, FC) bool,
	fa FA,
	f func(A) FB,
	g func(B) FC,
) bool {
	grouped := mbc.Bind(mab.Bind(fa, f), g)
	nested := mac.Bind(fa, func(a A) FC {
		return mbc.Bind(f(a), g)
	})
	return eq(grouped, nested)
}

// LawApConsistency reports whether the instance's native ap agrees with the
// monadic derivation bind(ff, g => map(fa, g)).
func LawApConsistency[FA, FF, FB, A, B any](
	app Applicative[FA, FF, FB, A, B],
	mf Monad[FF, FB, func(A) B, B],
	mv Monad[FA, FB, A, B],
	eq func(FB, FB) bool,
	fa FA,
	ff FF,
) bool {
	return eq(app.Ap(fa, ff), Ap(mf, mv, fa, ff))
}

// LawCollector reports whether col is a lawful accumulation capability:
// Plus is associative and Empty is its two-sided identity.
func LawCollector[S, A any](
	col Collector[S, A],
	eq func(S, S) bool,
	x, y, z S,
) bool {
	if !eq(col.Plus(col.Empty(), x), x) {
		return false
	}
	if !eq(col.Plus(x, col.Empty()), x) {
		return false
	}
	return eq(col.Plus(col.Plus(x, y), z), col.Plus(x, col.Plus(y, z)))
}
