// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package valx provides zero-allocation value-semantic containers:
// tagged unions with visitor dispatch, fixed-capacity sequences, and
// scope-based cleanup guards.
//
// All containers embed their payload directly (no hidden heap storage,
// no pointer indirection) and avoid dynamic dispatch wherever the
// alternative set is statically known.
//
// # Architecture
//
//   - Tagged unions: [Variant2], [Variant3], [Variant4] hold exactly one live
//     alternative, identified by an integer tag. One typed slot per
//     alternative; the active value's address is stable for the instance's
//     lifetime.
//   - Capability traits: [Registry2], [Registry3], [Registry4] compute, once
//     per alternative list, aggregate properties such as [Registry.TrivialDestroy]
//     and [Registry.NoFailCopy], plus exact/convertible index resolution.
//   - Visitation: [Match2] (typed branches, linear tag dispatch) and [Visit2]
//     (type-erased visitor through a per-instantiation lookup table), with
//     [On] and [Overload] for first-match-wins visitor composition.
//   - Sequences: [FixedVec] is a dynamically-sized sequence over fixed backing
//     storage, usable with caller-provided (stack) buffers via [WrapVec].
//   - Guards: [Guard] runs an action at scope exit unless dismissed;
//     [HeapGuard] is its type-erased heap-held equivalent behind [Dismisser];
//     [GuardSet] stores heap guards uniformly and tears them down in LIFO order.
//
// # Alternative Protocol
//
// A Variant reads the failure characteristics of its alternatives through
// structural interfaces: [Disposer] and [Releaser] for teardown, [Cloner] and
// [Copier] for copying. Types implementing none of these are trivial: their
// teardown is a no-op and their copies are plain assignments.
//
// # Error Handling
//
//   - Unresolvable construction and out-of-contract usage panic with a
//     "valx:" prefix; these are caller contract violations, not runtime
//     conditions.
//   - Failures raised by an alternative's own Dispose or Clone propagate
//     unwrapped out of the corresponding container operation.
//   - Bounded-capacity rejection is reported with [code.hybscloud.com/iox.ErrWouldBlock].
//
// # Concurrency
//
// Instances are single-threaded: no operation blocks, suspends, or performs
// I/O, and concurrent access to one instance is a data race. Instances may be
// freely handed off between goroutines.
//
// # Example
//
//	v := valx.Make3[int, string, float64]("hello")
//	n := valx.Match3(&v,
//		func(i *int) int { return *i },
//		func(s *string) int { return len(*s) },
//		func(f *float64) int { return int(*f) },
//	)
//	// n == 5
package valx
