// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Writer is a computation accumulating output of type W alongside its value.
// Bind concatenates the logs of the two computations in sequence order.
type Writer[W, A any] struct {
	Value A
	Log   []W
}

// PointWriter lifts a pure value into Writer with an empty log.
func PointWriter[W, A any](a A) Writer[W, A] {
	return Writer[W, A]{Value: a}
}

// Tell appends a single entry to the log.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{Log: []W{w}}
}

// BindWriter sequences two Writer computations, concatenating their logs.
func BindWriter[W, A, B any](m Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(m.Value)
	return Writer[W, B]{Value: next.Value, Log: concatLog(m.Log, next.Log)}
}

// MapWriter applies a pure function to the value, keeping the log.
func MapWriter[W, A, B any](m Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Value: f(m.Value), Log: m.Log}
}

// RunWriter returns the value and the accumulated log.
func RunWriter[W, A any](m Writer[W, A]) (A, []W) {
	return m.Value, m.Log
}

// ExecWriter returns only the accumulated log.
func ExecWriter[W, A any](m Writer[W, A]) []W {
	return m.Log
}

// concatLog appends without aliasing either operand's backing array.
func concatLog[W any](x, y []W) []W {
	if len(x) == 0 {
		return y
	}
	if len(y) == 0 {
		return x
	}
	out := make([]W, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// WriterM returns the monad dictionary for [Writer] with log type W at
// element types A to B.
func WriterM[W, A, B any]() Monad[Writer[W, A], Writer[W, B], A, B] {
	return Monad[Writer[W, A], Writer[W, B], A, B]{
		Point: PointWriter[W, B],
		Bind:  BindWriter[W, A, B],
	}
}
