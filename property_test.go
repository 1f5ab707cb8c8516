// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/valx"
)

func TestVariantRoundTripProperty(t *testing.T) {
	intHolds := func(x int) bool {
		v := valx.Make3[int, string, float64](x)
		got, ok := valx.GetIf3[int](&v)
		return v.Index() == 0 && ok && *got == x
	}
	if err := quick.Check(intHolds, nil); err != nil {
		t.Error(err)
	}
	stringHolds := func(x string) bool {
		v := valx.Make3[int, string, float64](x)
		got, ok := valx.GetIf3[string](&v)
		return v.Index() == 1 && ok && *got == x
	}
	if err := quick.Check(stringHolds, nil); err != nil {
		t.Error(err)
	}
	floatHolds := func(x float64) bool {
		v := valx.Make3[int, string, float64](x)
		got, ok := valx.GetIf3[float64](&v)
		return v.Index() == 2 && ok && *got == x
	}
	if err := quick.Check(floatHolds, nil); err != nil {
		t.Error(err)
	}
}

func TestVariantAssignProperty(t *testing.T) {
	reassign := func(a int, b string) bool {
		v := valx.Make3[int, string, float64](a)
		if err := v.Assign(b); err != nil {
			return false
		}
		got, ok := valx.GetIf3[string](&v)
		if v.Index() != 1 || !ok || *got != b {
			return false
		}
		if err := v.Assign(a); err != nil {
			return false
		}
		n, ok := valx.GetIf3[int](&v)
		return v.Index() == 0 && ok && *n == a
	}
	if err := quick.Check(reassign, nil); err != nil {
		t.Error(err)
	}
}

func TestVecModelProperty(t *testing.T) {
	behavesLikeSlice := func(items []uint16, cut uint8) bool {
		v := valx.NewVec[uint16](len(items))
		model := make([]uint16, 0, len(items))
		for _, x := range items {
			v.Push(x)
			model = append(model, x)
		}
		n := 0
		if len(model) > 0 {
			n = int(cut) % len(model)
		}
		if err := v.Shorten(n); err != nil {
			return false
		}
		model = model[:n]
		if v.Len() != len(model) {
			return false
		}
		for i, want := range model {
			if got, ok := v.Get(i); !ok || got != want {
				return false
			}
		}
		_, ok := v.Get(len(model))
		return !ok
	}
	if err := quick.Check(behavesLikeSlice, nil); err != nil {
		t.Error(err)
	}
}

func TestVecCloneEqualProperty(t *testing.T) {
	cloneEqual := func(items []int32) bool {
		v := valx.NewVec[int32](len(items))
		for _, x := range items {
			v.Push(x)
		}
		cp, err := v.Clone()
		if err != nil {
			return false
		}
		return valx.VecEqual(&v, &cp)
	}
	if err := quick.Check(cloneEqual, nil); err != nil {
		t.Error(err)
	}
}
