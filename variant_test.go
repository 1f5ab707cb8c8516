// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx_test

import (
	"testing"

	"code.hybscloud.com/valx"
)

func TestDefaultConstruction(t *testing.T) {
	var v valx.Variant4[int, float32, float64, bool]
	if v.Index() != 0 {
		t.Fatalf("zero value index = %d, want 0", v.Index())
	}

	v1 := valx.New3[string, int, bool]()
	if v1.Index() != 0 {
		t.Fatalf("New3 index = %d, want 0", v1.Index())
	}
	if *v1.At0() != "" {
		t.Fatalf("alternative 0 = %q, want zero value", *v1.At0())
	}
}

func TestTypeDeduction(t *testing.T) {
	v1 := valx.Make4[int, float32, float64, bool](float32(1))
	if v1.Index() != 1 {
		t.Fatalf("float32 resolved to %d, want 1", v1.Index())
	}

	v2 := valx.Make4[int, float32, float64, bool](2.0)
	if v2.Index() != 2 {
		t.Fatalf("float64 resolved to %d, want 2 (exact match)", v2.Index())
	}
}

func TestDirectMatchOverConvertible(t *testing.T) {
	// int appears exactly at index 1; the convertible Celsius at index 0
	// must not win against an exact match.
	v := valx.Make2[Celsius, int](10)
	if v.Index() != 1 {
		t.Fatalf("exact int resolved to %d, want 1", v.Index())
	}
}

func TestFirstConvertibleWhenNoDirectMatch(t *testing.T) {
	// float64 matches nothing exactly; the first convertible alternative
	// in declaration order wins.
	v := valx.Make2[Celsius, int](10.0)
	if v.Index() != 0 {
		t.Fatalf("float64 resolved to %d, want 0", v.Index())
	}
	if *v.At0() != Celsius(10) {
		t.Fatalf("converted value = %v, want 10", *v.At0())
	}
}

func TestExplicitIndexConstruction(t *testing.T) {
	v1 := valx.New3At1[[]int, string, float32]("hello world")
	if got, ok := valx.GetIf3[string](&v1); !ok || *got != "hello world" {
		t.Fatalf("GetIf3[string] = (%v, %v), want (hello world, true)", got, ok)
	}

	v2 := valx.New3At0[[]int, string, float32]([]int{1, 2, 3, 4})
	res, ok := valx.GetIf3[[]int](&v2)
	if !ok || len(*res) != 4 {
		t.Fatalf("GetIf3[[]int] = (%v, %v), want 4 elements", res, ok)
	}
	for i, val := range *res {
		if val != i+1 {
			t.Fatalf("element %d = %d, want %d", i, val, i+1)
		}
	}

	v3 := valx.New3At2[[]int, string](float32(10))
	if v3.Index() != 2 || *v3.At2() != 10 {
		t.Fatalf("At2 = (%d, %v), want (2, 10)", v3.Index(), *v3.At2())
	}
}

func TestCopyAndMoveConstruction(t *testing.T) {
	h := newRefHandle()
	v := valx.New4At3[bool, RefHandle, int](h.Copy())
	if h.Owners() != 2 {
		t.Fatalf("owners after store = %d, want 2", h.Owners())
	}

	cp, err := v.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if h.Owners() != 3 {
		t.Fatalf("owners after copy = %d, want 3", h.Owners())
	}
	if cp.Index() != 3 {
		t.Fatalf("copy index = %d, want 3", cp.Index())
	}

	mv := v.Move()
	if h.Owners() != 3 {
		t.Fatalf("owners after move = %d, want 3 (move must not duplicate ownership)", h.Owners())
	}
	if mv.Index() != 3 {
		t.Fatalf("move index = %d, want 3", mv.Index())
	}
}

func TestResolutionPicksFirstExactOccurrence(t *testing.T) {
	v := valx.Make4[bool, RefHandle, int, RefHandle](newRefHandle())
	if v.Index() != 1 {
		t.Fatalf("duplicate-type list resolved to %d, want first occurrence 1", v.Index())
	}
}

func TestNoAlternativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unresolvable source type")
		}
	}()
	valx.Make2[int, float64]([]string{"x"})
}

func TestUntypedNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for untyped nil source")
		}
	}()
	valx.Make2[int, float64](nil)
}

// Known deterministic gotchas of declaration-order resolution, preserved on
// purpose: an earlier narrowing conversion beats a later natural match.
func TestResolutionGotchas(t *testing.T) {
	// float64 narrows into int before Celsius gets a chance.
	v1 := valx.Make2[int, Celsius](10.5)
	if v1.Index() != 0 {
		t.Fatalf("narrowing gotcha resolved to %d, want 0", v1.Index())
	}
	if *v1.At0() != 10 {
		t.Fatalf("narrowed value = %d, want 10", *v1.At0())
	}

	// int converts to string (rune conversion) before reaching float64.
	v2 := valx.Make2[string, float64](65)
	if v2.Index() != 0 {
		t.Fatalf("rune-conversion gotcha resolved to %d, want 0", v2.Index())
	}
	if *v2.At0() != "A" {
		t.Fatalf("converted value = %q, want \"A\"", *v2.At0())
	}
}
