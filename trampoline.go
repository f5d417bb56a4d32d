// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic

// Trampoline is a description of a possibly deep recursive computation,
// evaluated iteratively by [RunTrampoline] instead of by the Go call stack.
//
// The generic loop combinators unfold one Bind per iteration; for instances
// whose Bind nests native calls, very long loops grow the stack. Driving the
// same loops through Trampoline keeps stack depth bounded regardless of
// iteration count: construction builds tagged nodes, and evaluation is a
// flat loop over them.

// Erased marks type-erased intermediate values in the node chain.
// Concrete types are recovered via type assertions at node boundaries.
type Erased = any

const (
	tramDone = iota // completed with value
	tramMore        // suspended thunk
	tramBind        // sequencing node
)

// tramNode is the defunctionalized representation of a Trampoline step.
// Exactly one of the field groups is populated, selected by kind.
type tramNode struct {
	kind  int
	value Erased                // tramDone
	thunk func() tramNode       // tramMore
	sub   *tramNode             // tramBind: computation being sequenced
	cont  func(Erased) tramNode // tramBind: continuation of sub's value
}

// Trampoline wraps the erased node chain with the result type.
type Trampoline[A any] struct {
	node tramNode
}

// Done creates a completed Trampoline holding a value.
func Done[A any](a A) Trampoline[A] {
	return Trampoline[A]{node: tramNode{kind: tramDone, value: a}}
}

// More suspends a computation step. The thunk runs each time the node is
// evaluated, so a More built over mutable captures acts as a re-executable
// effect.
func More[A any](f func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{node: tramNode{kind: tramMore, thunk: func() tramNode {
		return f().node
	}}}
}

// BindTrampoline sequences two Trampoline computations.
// Construction is O(1): it allocates a single node, deferring all work to
// [RunTrampoline].
func BindTrampoline[A, B any](t Trampoline[A], f func(A) Trampoline[B]) Trampoline[B] {
	sub := t.node
	return Trampoline[B]{node: tramNode{
		kind: tramBind,
		sub:  &sub,
		cont: func(v Erased) tramNode {
			return f(v.(A)).node
		},
	}}
}

// MapTrampoline applies a pure function to the result.
func MapTrampoline[A, B any](t Trampoline[A], f func(A) B) Trampoline[B] {
	return BindTrampoline(t, func(a A) Trampoline[B] {
		return Done(f(a))
	})
}

// RunTrampoline evaluates the computation to completion.
// It processes nodes iteratively with an explicit continuation stack,
// avoiding stack growth from recursive calls.
func RunTrampoline[A any](t Trampoline[A]) A {
	node := t.node
	var stack []func(Erased) tramNode
	for {
		switch node.kind {
		case tramDone:
			if len(stack) == 0 {
				return node.value.(A)
			}
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node = k(node.value)
		case tramMore:
			node = node.thunk()
		case tramBind:
			stack = append(stack, node.cont)
			node = *node.sub
		default:
			panic("monadic: unknown trampoline node kind")
		}
	}
}

// TrampolineM returns the monad dictionary for [Trampoline] at element
// types A to B. Feeding it to the loop combinators makes them stack-safe
// for unbounded iteration counts.
func TrampolineM[A, B any]() Monad[Trampoline[A], Trampoline[B], A, B] {
	return Monad[Trampoline[A], Trampoline[B], A, B]{
		Point: Done[B],
		Bind:  BindTrampoline[A, B],
	}
}
