// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Collector is the accumulation capability used by the collecting loop
// combinators [WhileM] and [UntilM].
//
// It is a monoid with a unit injection: Empty is the identity of Plus, Unit
// wraps a single element, and Plus combines two partial results. Plus must be
// associative and Empty its two-sided identity ([LawCollector] checks both).
type Collector[S, A any] struct {
	Empty func() S
	Unit  func(a A) S
	Plus  func(x, y S) S
}

// SliceCollector accumulates loop results into a slice in iteration order.
func SliceCollector[A any]() Collector[[]A, A] {
	return Collector[[]A, A]{
		Empty: func() []A { return nil },
		Unit:  func(a A) []A { return []A{a} },
		Plus: func(x, y []A) []A {
			if len(x) == 0 {
				return y
			}
			if len(y) == 0 {
				return x
			}
			out := make([]A, 0, len(x)+len(y))
			out = append(out, x...)
			return append(out, y...)
		},
	}
}

// ListCollector accumulates loop results into a [List] in iteration order.
func ListCollector[A any]() Collector[List[A], A] {
	return Collector[List[A], A]{
		Empty: func() List[A] { return nil },
		Unit:  func(a A) List[A] { return List[A]{a} },
		Plus:  ConcatList[A],
	}
}

// CountCollector discards loop results and counts iterations.
func CountCollector[A any]() Collector[int, A] {
	return Collector[int, A]{
		Empty: func() int { return 0 },
		Unit:  func(A) int { return 1 },
		Plus:  func(x, y int) int { return x + y },
	}
}

// numeric constrains SumCollector to the built-in addition types.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumCollector accumulates loop results by addition.
func SumCollector[A numeric]() Collector[A, A] {
	return Collector[A, A]{
		Empty: func() A { return 0 },
		Unit:  func(a A) A { return a },
		Plus:  func(x, y A) A { return x + y },
	}
}
