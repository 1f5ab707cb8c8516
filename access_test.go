// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx_test

import (
	"testing"

	"code.hybscloud.com/valx"
)

func TestUncheckedIndexAccess(t *testing.T) {
	v := valx.New3At1[int, string, float64]("payload")
	if *v.At1() != "payload" {
		t.Fatalf("At1 = %q, want payload", *v.At1())
	}

	// The slot pointer is stable and mutable in place.
	p := v.At1()
	*p = "rewritten"
	if *v.At1() != "rewritten" {
		t.Fatalf("At1 after write = %q, want rewritten", *v.At1())
	}
	if p != v.At1() {
		t.Fatal("slot address changed between accesses")
	}
}

func TestUncheckedTypeAccess(t *testing.T) {
	v := valx.New3At2[int, string](2.5)
	if got := valx.Get3[float64](&v); *got != 2.5 {
		t.Fatalf("Get3[float64] = %v, want 2.5", *got)
	}

	// Mismatched tag yields an unspecified (here: zero) value, never a fault.
	if got := valx.Get3[string](&v); *got != "" {
		t.Fatalf("inactive slot = %q, want zero value", *got)
	}
}

func TestCheckedTypeAccess(t *testing.T) {
	v := valx.Make3[int, string, float64]("hello")
	if got, ok := valx.GetIf3[string](&v); !ok || *got != "hello" {
		t.Fatalf("GetIf3[string] = (%v, %v), want (hello, true)", got, ok)
	}
	if got, ok := valx.GetIf3[int](&v); ok || got != nil {
		t.Fatalf("GetIf3[int] = (%v, %v), want (nil, false)", got, ok)
	}
	if got, ok := valx.GetIf3[float64](&v); ok || got != nil {
		t.Fatalf("GetIf3[float64] = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestCheckedAccessDuplicateAlternatives(t *testing.T) {
	// With the same type at several indices, the active occurrence wins.
	v := valx.New4At3[bool, string, int]("second")
	got, ok := valx.GetIf4[string](&v)
	if !ok || *got != "second" {
		t.Fatalf("GetIf4[string] = (%v, %v), want (second, true)", got, ok)
	}
	*got = "updated"
	if *v.At3() != "updated" {
		t.Fatalf("At3 = %q, want updated", *v.At3())
	}
}

func TestAccessUnknownTypePanics(t *testing.T) {
	v := valx.New2At0[int, string](1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a type outside the alternative list")
		}
	}()
	valx.GetIf2[float32](&v)
}
