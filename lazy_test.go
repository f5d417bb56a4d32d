// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monadic_test

import (
	"testing"

	"code.hybscloud.com/monadic"
)

func TestDeferDoesNotCompute(t *testing.T) {
	computed := false
	l := monadic.Defer(func() int {
		computed = true
		return 1
	})
	if computed {
		t.Fatal("Defer computed eagerly")
	}
	if l.Forced() {
		t.Fatal("Forced true before Force")
	}
}

func TestForceComputesOnce(t *testing.T) {
	computations := 0
	l := monadic.Defer(func() int {
		computations++
		return 42
	})
	for range 5 {
		if got := l.Force(); got != 42 {
			t.Fatalf("got %d, want 42", got)
		}
	}
	if computations != 1 {
		t.Fatalf("computed %d times, want 1", computations)
	}
	if !l.Forced() {
		t.Fatal("Forced false after Force")
	}
}

func TestForceZeroValue(t *testing.T) {
	l := monadic.Defer(func() *int { return nil })
	if got := l.Force(); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if !l.Forced() {
		t.Fatal("nil result not recorded as forced")
	}
}
