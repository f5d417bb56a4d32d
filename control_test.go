// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic_test

import (
	"testing"

	"code.hybscloud.com/monadic"
)

// countdown yields the current counter and decrements it.
// Binding it repeatedly produces n, n-1, n-2, ...
func countdown() monadic.State[int, int] {
	return func(s int) (int, int) {
		return s, s - 1
	}
}

// positive is the condition effect "counter > 0".
func positive() monadic.State[int, bool] {
	return monadic.Gets(func(n int) bool { return n > 0 })
}

func TestWhileMDiscardCountsDown(t *testing.T) {
	executions := 0
	body := func() monadic.State[int, int] {
		return func(s int) (int, int) {
			executions++
			return s, s - 1
		}
	}
	loop := monadic.WhileMDiscard(
		monadic.StateM[int, bool, monadic.Unit](),
		monadic.StateM[int, int, monadic.Unit](),
		positive(),
		body,
	)

	result, final := monadic.RunState(loop, 5)
	if result != (monadic.Unit{}) {
		t.Fatalf("got %v, want unit", result)
	}
	if final != 0 {
		t.Fatalf("final state %d, want 0", final)
	}
	if executions != 5 {
		t.Fatalf("body executed %d times, want 5", executions)
	}
}

func TestWhileMDiscardZeroIterations(t *testing.T) {
	forced := false
	body := func() monadic.State[int, int] {
		forced = true
		return countdown()
	}
	loop := monadic.WhileMDiscard(
		monadic.StateM[int, bool, monadic.Unit](),
		monadic.StateM[int, int, monadic.Unit](),
		positive(),
		body,
	)

	final := monadic.ExecState(loop, 0)
	if final != 0 {
		t.Fatalf("final state %d, want 0", final)
	}
	if forced {
		t.Fatal("body thunk forced although the condition was false up front")
	}
}

func TestWhileMCollectsInIterationOrder(t *testing.T) {
	loop := monadic.WhileM(
		monadic.StateM[int, bool, []int](),
		monadic.StateM[int, int, []int](),
		monadic.StateM[int, []int, []int](),
		monadic.SliceCollector[int](),
		positive(),
		countdown,
	)

	collected, final := monadic.RunState(loop, 5)
	want := []int{5, 4, 3, 2, 1}
	if len(collected) != len(want) {
		t.Fatalf("got %v, want %v", collected, want)
	}
	for i := range want {
		if collected[i] != want[i] {
			t.Fatalf("got %v, want %v", collected, want)
		}
	}
	if final != 0 {
		t.Fatalf("final state %d, want 0", final)
	}
}

func TestWhileMBodyForcedOnce(t *testing.T) {
	forcings := 0
	body := func() monadic.State[int, int] {
		forcings++
		return countdown()
	}
	loop := monadic.WhileM(
		monadic.StateM[int, bool, []int](),
		monadic.StateM[int, int, []int](),
		monadic.StateM[int, []int, []int](),
		monadic.SliceCollector[int](),
		positive(),
		body,
	)

	collected := monadic.EvalState(loop, 8)
	if len(collected) != 8 {
		t.Fatalf("collected %d results, want 8", len(collected))
	}
	if forcings != 1 {
		t.Fatalf("body thunk forced %d times, want 1", forcings)
	}
}

func TestWhileMOptionFalseCondition(t *testing.T) {
	loop := monadic.WhileM(
		monadic.OptionM[bool, []int](),
		monadic.OptionM[int, []int](),
		monadic.OptionM[[]int, []int](),
		monadic.SliceCollector[int](),
		monadic.Some(false),
		func() monadic.Option[int] { return monadic.Some(1) },
	)

	collected, ok := loop.Get()
	if !ok {
		t.Fatal("got None, want Some(empty)")
	}
	if len(collected) != 0 {
		t.Fatalf("got %v, want empty", collected)
	}
}

func TestWhileMOptionNoneCondition(t *testing.T) {
	forced := false
	loop := monadic.WhileM(
		monadic.OptionM[bool, []int](),
		monadic.OptionM[int, []int](),
		monadic.OptionM[[]int, []int](),
		monadic.SliceCollector[int](),
		monadic.None[bool](),
		func() monadic.Option[int] { forced = true; return monadic.Some(1) },
	)

	if loop.IsSome() {
		t.Fatalf("got %v, want None", loop)
	}
	if forced {
		t.Fatal("body thunk forced although the condition short-circuited")
	}
}

func TestUntilMCollectsSingleResult(t *testing.T) {
	// Condition immediately true: the body runs exactly once.
	result := monadic.UntilM(
		monadic.IdentM[bool, []int](),
		monadic.IdentM[bool, bool](),
		monadic.IdentM[int, []int](),
		monadic.IdentM[[]int, []int](),
		monadic.SliceCollector[int](),
		func() monadic.Ident[int] { return monadic.Id(7) },
		monadic.Id(true),
	)

	if len(result.Value) != 1 || result.Value[0] != 7 {
		t.Fatalf("got %v, want [7]", result.Value)
	}
}

func TestUntilMRunsBodyBeforeCondition(t *testing.T) {
	// Post-test loop over State: body runs, then the condition is checked.
	// Counting down from 3 with condition "counter <= 0" executes 3 times.
	executions := 0
	body := func() monadic.State[int, int] {
		return func(s int) (int, int) {
			executions++
			return s, s - 1
		}
	}
	done := monadic.Gets(func(n int) bool { return n <= 0 })
	loop := monadic.UntilM(
		monadic.StateM[int, bool, []int](),
		monadic.StateM[int, bool, bool](),
		monadic.StateM[int, int, []int](),
		monadic.StateM[int, []int, []int](),
		monadic.SliceCollector[int](),
		body,
		done,
	)

	collected, final := monadic.RunState(loop, 3)
	want := []int{3, 2, 1}
	if len(collected) != len(want) {
		t.Fatalf("got %v, want %v", collected, want)
	}
	for i := range want {
		if collected[i] != want[i] {
			t.Fatalf("got %v, want %v", collected, want)
		}
	}
	if final != 0 {
		t.Fatalf("final state %d, want 0", final)
	}
	if executions != 3 {
		t.Fatalf("body executed %d times, want 3", executions)
	}
}

func TestUntilMDiscardRunsAtLeastOnce(t *testing.T) {
	executions := 0
	body := func() monadic.State[int, int] {
		return func(s int) (int, int) {
			executions++
			return s, s - 1
		}
	}
	done := monadic.Gets(func(n int) bool { return n <= 0 })
	loop := monadic.UntilMDiscard(
		monadic.StateM[int, bool, monadic.Unit](),
		monadic.StateM[int, bool, bool](),
		monadic.StateM[int, int, monadic.Unit](),
		body,
		done,
	)

	// Condition already true: post-test still runs the body once.
	final := monadic.ExecState(loop, 0)
	if final != -1 {
		t.Fatalf("final state %d, want -1", final)
	}
	if executions != 1 {
		t.Fatalf("body executed %d times, want 1", executions)
	}
}

func TestIterateUntilCountsToThree(t *testing.T) {
	executions := 0
	tick := monadic.State[int, int](func(s int) (int, int) {
		executions++
		return s + 1, s + 1
	})
	loop := monadic.IterateUntil(
		monadic.StateM[int, int, int](),
		tick,
		func(n int) bool { return n == 3 },
	)

	result, final := monadic.RunState(loop, 0)
	if result != 3 {
		t.Fatalf("got %d, want 3", result)
	}
	if final != 3 {
		t.Fatalf("final state %d, want 3", final)
	}
	if executions != 3 {
		t.Fatalf("effect executed %d times, want 3", executions)
	}
}

func TestIterateWhileStopsOnFirstFailure(t *testing.T) {
	tick := monadic.Modify(func(n int) int { return n + 1 })
	loop := monadic.IterateWhile(
		monadic.StateM[int, int, int](),
		tick,
		func(n int) bool { return n < 10 },
	)

	result := monadic.EvalState(loop, 0)
	if result != 10 {
		t.Fatalf("got %d, want 10", result)
	}
}

func TestIterateWhileEitherShortCircuits(t *testing.T) {
	// A Left value stops the unfolding without the combinator's involvement.
	loop := monadic.IterateWhile(
		monadic.EitherM[string, int, int](),
		monadic.Left[string, int]("boom"),
		func(int) bool { return true },
	)

	e, ok := loop.GetLeft()
	if !ok {
		t.Fatalf("got %v, want Left", loop)
	}
	if e != "boom" {
		t.Fatalf("got %q, want %q", e, "boom")
	}
}

func TestIterateUntilEitherRight(t *testing.T) {
	loop := monadic.IterateUntil(
		monadic.EitherM[string, int, int](),
		monadic.Right[string](42),
		func(n int) bool { return n == 42 },
	)

	got, ok := loop.GetRight()
	if !ok {
		t.Fatalf("got %v, want Right", loop)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestWhileMCountCollector(t *testing.T) {
	loop := monadic.WhileM(
		monadic.StateM[int, bool, int](),
		monadic.StateM[int, int, int](),
		monadic.StateM[int, int, int](),
		monadic.CountCollector[int](),
		positive(),
		countdown,
	)

	count := monadic.EvalState(loop, 7)
	if count != 7 {
		t.Fatalf("counted %d iterations, want 7", count)
	}
}

func TestWhileMSumCollector(t *testing.T) {
	loop := monadic.WhileM(
		monadic.StateM[int, bool, int](),
		monadic.StateM[int, int, int](),
		monadic.StateM[int, int, int](),
		monadic.SumCollector[int](),
		positive(),
		countdown,
	)

	// 4 + 3 + 2 + 1
	sum := monadic.EvalState(loop, 4)
	if sum != 10 {
		t.Fatalf("summed %d, want 10", sum)
	}
}

func TestWhileMDiscardTrampolineDeepLoop(t *testing.T) {
	// A million iterations through the iterative evaluator; a stack-recursive
	// unfolding would overflow long before this.
	const n = 1_000_000
	counter := n
	cond := monadic.More(func() monadic.Trampoline[bool] {
		return monadic.Done(counter > 0)
	})
	body := func() monadic.Trampoline[int] {
		return monadic.More(func() monadic.Trampoline[int] {
			counter--
			return monadic.Done(counter)
		})
	}
	loop := monadic.WhileMDiscard(
		monadic.TrampolineM[bool, monadic.Unit](),
		monadic.TrampolineM[int, monadic.Unit](),
		cond,
		body,
	)

	got := monadic.RunTrampoline(loop)
	if got != (monadic.Unit{}) {
		t.Fatalf("got %v, want unit", got)
	}
	if counter != 0 {
		t.Fatalf("counter %d, want 0", counter)
	}
}
