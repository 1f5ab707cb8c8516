// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

import "reflect"

// At0 returns a pointer to slot 0 without checking the tag.
// Precondition: the tag is 0. On a mismatched tag the pointee holds an
// unspecified value (stale or zero), never a fault; unchecked access is for
// callers that have already established the tag through Index, GetIf or a
// visit. Must not be used as control flow.
func (v *Variant2[T0, T1]) At0() *T0 { return &v.a0 }

// At1 returns a pointer to slot 1 without checking the tag. See [Variant2.At0].
func (v *Variant2[T0, T1]) At1() *T1 { return &v.a1 }

// At0 returns a pointer to slot 0 without checking the tag. See [Variant2.At0].
func (v *Variant3[T0, T1, T2]) At0() *T0 { return &v.a0 }

// At1 returns a pointer to slot 1 without checking the tag.
func (v *Variant3[T0, T1, T2]) At1() *T1 { return &v.a1 }

// At2 returns a pointer to slot 2 without checking the tag.
func (v *Variant3[T0, T1, T2]) At2() *T2 { return &v.a2 }

// At0 returns a pointer to slot 0 without checking the tag. See [Variant2.At0].
func (v *Variant4[T0, T1, T2, T3]) At0() *T0 { return &v.a0 }

// At1 returns a pointer to slot 1 without checking the tag.
func (v *Variant4[T0, T1, T2, T3]) At1() *T1 { return &v.a1 }

// At2 returns a pointer to slot 2 without checking the tag.
func (v *Variant4[T0, T1, T2, T3]) At2() *T2 { return &v.a2 }

// At3 returns a pointer to slot 3 without checking the tag.
func (v *Variant4[T0, T1, T2, T3]) At3() *T3 { return &v.a3 }

func notAnAlternative[T any]() string {
	return "valx: " + reflect.TypeFor[T]().String() + " is not an alternative of this variant"
}

// Get2 returns a pointer to the first slot of type T without checking the
// tag; the same contract as [Variant2.At0], keyed by type. Panics if T is not
// an alternative.
func Get2[T, T0, T1 any](v *Variant2[T0, T1]) *T {
	if p, ok := any(&v.a0).(*T); ok {
		return p
	}
	if p, ok := any(&v.a1).(*T); ok {
		return p
	}
	panic(notAnAlternative[T]())
}

// Get3 returns a pointer to the first slot of type T without checking the
// tag. See [Get2].
func Get3[T, T0, T1, T2 any](v *Variant3[T0, T1, T2]) *T {
	if p, ok := any(&v.a0).(*T); ok {
		return p
	}
	if p, ok := any(&v.a1).(*T); ok {
		return p
	}
	if p, ok := any(&v.a2).(*T); ok {
		return p
	}
	panic(notAnAlternative[T]())
}

// Get4 returns a pointer to the first slot of type T without checking the
// tag. See [Get2].
func Get4[T, T0, T1, T2, T3 any](v *Variant4[T0, T1, T2, T3]) *T {
	if p, ok := any(&v.a0).(*T); ok {
		return p
	}
	if p, ok := any(&v.a1).(*T); ok {
		return p
	}
	if p, ok := any(&v.a2).(*T); ok {
		return p
	}
	if p, ok := any(&v.a3).(*T); ok {
		return p
	}
	panic(notAnAlternative[T]())
}

// GetIf2 returns a pointer to the active alternative when its slot has type
// T, and (nil, false) otherwise. With T occurring at several indices, the
// active occurrence wins. Panics if T is not an alternative at all.
func GetIf2[T, T0, T1 any](v *Variant2[T0, T1]) (*T, bool) {
	found := false
	if p, ok := any(&v.a0).(*T); ok {
		if v.tag == 0 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a1).(*T); ok {
		if v.tag == 1 {
			return p, true
		}
		found = true
	}
	if !found {
		panic(notAnAlternative[T]())
	}
	return nil, false
}

// GetIf3 returns a pointer to the active alternative when its slot has type
// T. See [GetIf2].
func GetIf3[T, T0, T1, T2 any](v *Variant3[T0, T1, T2]) (*T, bool) {
	found := false
	if p, ok := any(&v.a0).(*T); ok {
		if v.tag == 0 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a1).(*T); ok {
		if v.tag == 1 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a2).(*T); ok {
		if v.tag == 2 {
			return p, true
		}
		found = true
	}
	if !found {
		panic(notAnAlternative[T]())
	}
	return nil, false
}

// GetIf4 returns a pointer to the active alternative when its slot has type
// T. See [GetIf2].
func GetIf4[T, T0, T1, T2, T3 any](v *Variant4[T0, T1, T2, T3]) (*T, bool) {
	found := false
	if p, ok := any(&v.a0).(*T); ok {
		if v.tag == 0 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a1).(*T); ok {
		if v.tag == 1 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a2).(*T); ok {
		if v.tag == 2 {
			return p, true
		}
		found = true
	}
	if p, ok := any(&v.a3).(*T); ok {
		if v.tag == 3 {
			return p, true
		}
		found = true
	}
	if !found {
		panic(notAnAlternative[T]())
	}
	return nil, false
}
