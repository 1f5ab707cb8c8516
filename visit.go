// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

// Match2 dispatches to the branch matching the active alternative, passing a
// pointer to the live slot so branches can mutate the value in place without
// changing its type. Linear tag dispatch: cost proportional to the tag,
// favoring inlining for small alternative lists. A destroyed variant (tag ==
// arity) resolves deterministically to branch 0.
func Match2[T0, T1, R any](v *Variant2[T0, T1], f0 func(*T0) R, f1 func(*T1) R) R {
	switch v.tag {
	case 1:
		return f1(&v.a1)
	default:
		return f0(&v.a0)
	}
}

// Match3 dispatches to the branch matching the active alternative. See [Match2].
func Match3[T0, T1, T2, R any](v *Variant3[T0, T1, T2], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R) R {
	switch v.tag {
	case 1:
		return f1(&v.a1)
	case 2:
		return f2(&v.a2)
	default:
		return f0(&v.a0)
	}
}

// Match4 dispatches to the branch matching the active alternative. See [Match2].
func Match4[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R, f3 func(*T3) R) R {
	switch v.tag {
	case 1:
		return f1(&v.a1)
	case 2:
		return f2(&v.a2)
	case 3:
		return f3(&v.a3)
	default:
		return f0(&v.a0)
	}
}

// The visit entries are package-level generic functions, compiled and
// materialized once per instantiation. Go has no generic package-level
// variables, so the table array itself is assembled per call: a few pointer
// stores on the stack, no closures, no allocation.

func visit2Slot0[T0, T1, R any](v *Variant2[T0, T1], fn func(any) R) R { return fn(&v.a0) }
func visit2Slot1[T0, T1, R any](v *Variant2[T0, T1], fn func(any) R) R { return fn(&v.a1) }

func visit3Slot0[T0, T1, T2, R any](v *Variant3[T0, T1, T2], fn func(any) R) R { return fn(&v.a0) }
func visit3Slot1[T0, T1, T2, R any](v *Variant3[T0, T1, T2], fn func(any) R) R { return fn(&v.a1) }
func visit3Slot2[T0, T1, T2, R any](v *Variant3[T0, T1, T2], fn func(any) R) R { return fn(&v.a2) }

func visit4Slot0[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], fn func(any) R) R {
	return fn(&v.a0)
}
func visit4Slot1[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], fn func(any) R) R {
	return fn(&v.a1)
}
func visit4Slot2[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], fn func(any) R) R {
	return fn(&v.a2)
}
func visit4Slot3[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], fn func(any) R) R {
	return fn(&v.a3)
}

// Visit2 invokes fn with a pointer to the active alternative, dispatching
// through a table of per-instantiation entries indexed by the tag: O(1) in
// the number of alternatives, at the price of one indirection. Observable
// results are identical to [Match2]; the choice is a dispatch-cost trade-off.
// fn receives *T0 or *T1; a destroyed variant resolves to slot 0.
func Visit2[T0, T1, R any](v *Variant2[T0, T1], fn func(any) R) R {
	table := [2]func(*Variant2[T0, T1], func(any) R) R{
		visit2Slot0[T0, T1, R],
		visit2Slot1[T0, T1, R],
	}
	idx := v.tag
	if idx >= 2 {
		idx = 0
	}
	return table[idx](v, fn)
}

// Visit3 invokes fn with a pointer to the active alternative. See [Visit2].
func Visit3[T0, T1, T2, R any](v *Variant3[T0, T1, T2], fn func(any) R) R {
	table := [3]func(*Variant3[T0, T1, T2], func(any) R) R{
		visit3Slot0[T0, T1, T2, R],
		visit3Slot1[T0, T1, T2, R],
		visit3Slot2[T0, T1, T2, R],
	}
	idx := v.tag
	if idx >= 3 {
		idx = 0
	}
	return table[idx](v, fn)
}

// Visit4 invokes fn with a pointer to the active alternative. See [Visit2].
func Visit4[T0, T1, T2, T3, R any](v *Variant4[T0, T1, T2, T3], fn func(any) R) R {
	table := [4]func(*Variant4[T0, T1, T2, T3], func(any) R) R{
		visit4Slot0[T0, T1, T2, T3, R],
		visit4Slot1[T0, T1, T2, T3, R],
		visit4Slot2[T0, T1, T2, T3, R],
		visit4Slot3[T0, T1, T2, T3, R],
	}
	idx := v.tag
	if idx >= 4 {
		idx = 0
	}
	return table[idx](v, fn)
}

// VisitCase is one single-type branch of an [Overload] visitor.
type VisitCase[R any] func(any) (R, bool)

// On wraps a single-type callable as a [VisitCase] that fires when the
// visited slot has type T.
func On[T, R any](f func(*T) R) VisitCase[R] {
	return func(x any) (R, bool) {
		p, ok := x.(*T)
		if !ok {
			var zero R
			return zero, false
		}
		return f(p), true
	}
}

// Overload builds one polymorphic visitor out of several single-type
// callables; the first case whose parameter type matches the visited slot
// wins. The result feeds [Visit2], [Visit3] or [Visit4]. Visiting a slot no
// case handles panics: an unhandled alternative is a caller contract
// violation.
func Overload[R any](cases ...VisitCase[R]) func(any) R {
	return func(x any) R {
		for _, c := range cases {
			if r, ok := c(x); ok {
				return r
			}
		}
		panic("valx: unhandled alternative in overload")
	}
}
