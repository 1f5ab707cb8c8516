// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

import "reflect"

// Variant2 holds exactly one live value of T0 or T1, identified by its tag.
// One typed slot per alternative; the active value's address never changes
// for the instance's lifetime. The zero value is a valid variant holding the
// zero value of T0.
//
// Instances are single-threaded: concurrent access to one Variant2 is a data
// race. A Variant2 may be handed off between goroutines.
type Variant2[T0, T1 any] struct {
	tag uint32
	a0  T0
	a1  T1
}

// Variant3 holds exactly one live value of T0, T1 or T2. See [Variant2].
type Variant3[T0, T1, T2 any] struct {
	tag uint32
	a0  T0
	a1  T1
	a2  T2
}

// Variant4 holds exactly one live value of T0..T3. See [Variant2].
type Variant4[T0, T1, T2, T3 any] struct {
	tag uint32
	a0  T0
	a1  T1
	a2  T2
	a3  T3
}

// Index returns the tag of the active alternative. A destroyed variant
// reports its arity (one past the last alternative index).
func (v *Variant2[T0, T1]) Index() int { return int(v.tag) }

// Index returns the tag of the active alternative. See [Variant2.Index].
func (v *Variant3[T0, T1, T2]) Index() int { return int(v.tag) }

// Index returns the tag of the active alternative. See [Variant2.Index].
func (v *Variant4[T0, T1, T2, T3]) Index() int { return int(v.tag) }

// New2 returns a variant holding the zero value of alternative 0.
// Equivalent to the zero value of Variant2; provided for symmetry with the
// resolved and explicit-index constructors.
func New2[T0, T1 any]() Variant2[T0, T1] {
	return Variant2[T0, T1]{}
}

// New3 returns a variant holding the zero value of alternative 0.
func New3[T0, T1, T2 any]() Variant3[T0, T1, T2] {
	return Variant3[T0, T1, T2]{}
}

// New4 returns a variant holding the zero value of alternative 0.
func New4[T0, T1, T2, T3 any]() Variant4[T0, T1, T2, T3] {
	return Variant4[T0, T1, T2, T3]{}
}

// resolveTarget picks the alternative index for src per the registry rules,
// panicking when nothing matches. No-match is a caller contract violation,
// not a runtime condition.
func resolveTarget(r *Registry, src any) int {
	t := reflect.TypeOf(src)
	if t == nil {
		panic("valx: cannot resolve an alternative for an untyped nil")
	}
	idx := r.ResolveIndex(t)
	if idx < 0 {
		panic("valx: no alternative constructible from " + t.String())
	}
	return idx
}

// convertTo narrows src to T, converting when the types differ.
// Callers have already established convertibility through the registry.
func convertTo[T any](src any) T {
	if x, ok := src.(T); ok {
		return x
	}
	return reflect.ValueOf(src).Convert(reflect.TypeFor[T]()).Interface().(T)
}

// Make2 constructs a variant from src, resolving the target alternative by
// exact type match first, then the first alternative in declaration order
// that src converts to. Panics when no alternative matches.
//
// The declaration-order scan deliberately favors earlier alternatives even
// when a later one would be the more natural conversion; see
// [Registry.ResolveIndex]. Resolution boxes src; the explicit-index
// constructors ([New2At0], [New2At1]) are the allocation-free path.
func Make2[T0, T1 any](src any) Variant2[T0, T1] {
	switch resolveTarget(Registry2[T0, T1](), src) {
	case 0:
		return New2At0[T0, T1](convertTo[T0](src))
	default:
		return New2At1[T0](convertTo[T1](src))
	}
}

// Make3 constructs a variant from src. See [Make2].
func Make3[T0, T1, T2 any](src any) Variant3[T0, T1, T2] {
	switch resolveTarget(Registry3[T0, T1, T2](), src) {
	case 0:
		return New3At0[T0, T1, T2](convertTo[T0](src))
	case 1:
		return New3At1[T0, T1, T2](convertTo[T1](src))
	default:
		return New3At2[T0, T1](convertTo[T2](src))
	}
}

// Make4 constructs a variant from src. See [Make2].
func Make4[T0, T1, T2, T3 any](src any) Variant4[T0, T1, T2, T3] {
	switch resolveTarget(Registry4[T0, T1, T2, T3](), src) {
	case 0:
		return New4At0[T0, T1, T2, T3](convertTo[T0](src))
	case 1:
		return New4At1[T0, T1, T2, T3](convertTo[T1](src))
	case 2:
		return New4At2[T0, T1, T2, T3](convertTo[T2](src))
	default:
		return New4At3[T0, T1, T2](convertTo[T3](src))
	}
}

// New2At0 constructs a variant holding x at index 0, without requiring any
// convertibility relation between x's type and the other alternatives.
func New2At0[T0, T1 any](x T0) Variant2[T0, T1] {
	return Variant2[T0, T1]{tag: 0, a0: x}
}

// New2At1 constructs a variant holding x at index 1.
func New2At1[T0, T1 any](x T1) Variant2[T0, T1] {
	return Variant2[T0, T1]{tag: 1, a1: x}
}

// New3At0 constructs a variant holding x at index 0.
func New3At0[T0, T1, T2 any](x T0) Variant3[T0, T1, T2] {
	return Variant3[T0, T1, T2]{tag: 0, a0: x}
}

// New3At1 constructs a variant holding x at index 1.
func New3At1[T0, T1, T2 any](x T1) Variant3[T0, T1, T2] {
	return Variant3[T0, T1, T2]{tag: 1, a1: x}
}

// New3At2 constructs a variant holding x at index 2.
func New3At2[T0, T1, T2 any](x T2) Variant3[T0, T1, T2] {
	return Variant3[T0, T1, T2]{tag: 2, a2: x}
}

// New4At0 constructs a variant holding x at index 0.
func New4At0[T0, T1, T2, T3 any](x T0) Variant4[T0, T1, T2, T3] {
	return Variant4[T0, T1, T2, T3]{tag: 0, a0: x}
}

// New4At1 constructs a variant holding x at index 1.
func New4At1[T0, T1, T2, T3 any](x T1) Variant4[T0, T1, T2, T3] {
	return Variant4[T0, T1, T2, T3]{tag: 1, a1: x}
}

// New4At2 constructs a variant holding x at index 2.
func New4At2[T0, T1, T2, T3 any](x T2) Variant4[T0, T1, T2, T3] {
	return Variant4[T0, T1, T2, T3]{tag: 2, a2: x}
}

// New4At3 constructs a variant holding x at index 3.
func New4At3[T0, T1, T2, T3 any](x T3) Variant4[T0, T1, T2, T3] {
	return Variant4[T0, T1, T2, T3]{tag: 3, a3: x}
}
