// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

// noCopy marks a containing struct as copy-hostile for go vet's copylocks
// check. Copying a guard would duplicate a pending cleanup action.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard runs an action at scope exit unless dismissed:
//
//	conn := db.open()
//	g := valx.NewGuard(func() { conn.close() })
//	defer g.Exit()
//	// ... on early return or panic, conn.close() still runs
//	g.Dismiss() // commit: keep conn open
//
// Actions have no error channel: a cleanup that can fail does not belong in
// a guard. Guards must not be copied.
type Guard struct {
	noCopy noCopy
	action func()
	active bool
}

// NewGuard returns an armed guard holding action.
func NewGuard(action func()) Guard {
	return Guard{action: action, active: true}
}

// Exit runs the pending action unless the guard was dismissed or has already
// run. Intended as a deferred call at the guard's construction site.
func (g *Guard) Exit() {
	if g.active {
		g.active = false
		g.action()
	}
}

// Dismiss cancels the pending action.
func (g *Guard) Dismiss() {
	g.active = false
}

// Dismisser is the common capability of heap-held guards, letting guards
// constructed from different action types be stored and cancelled uniformly.
type Dismisser interface {
	Dismiss()
}

// HeapGuard is the heap-held, type-erased equivalent of [Guard], for cleanup
// actions that outlive a single scope (struct members, registries). Run it
// with Exit, directly or through a [GuardSet].
type HeapGuard struct {
	noCopy noCopy
	action func()
	active bool
}

// NewHeapGuard returns an armed heap guard holding action.
func NewHeapGuard(action func()) *HeapGuard {
	return &HeapGuard{action: action, active: true}
}

// Exit runs the pending action unless dismissed or already run.
func (g *HeapGuard) Exit() {
	if g.active {
		g.active = false
		g.action()
	}
}

// Dismiss implements [Dismisser].
func (g *HeapGuard) Dismiss() {
	g.active = false
}

// GuardSet stores heap guards uniformly and runs them in LIFO order, so
// cleanups release resources in reverse acquisition order. Capacity is fixed
// at construction by [NewGuardSet]; the zero value holds no room for guards.
type GuardSet struct {
	guards FixedVec[*HeapGuard]
}

// NewGuardSet returns a set with a fixed capacity for n guards.
func NewGuardSet(n int) GuardSet {
	return GuardSet{guards: NewVec[*HeapGuard](n)}
}

// Add arms action as a heap guard owned by the set and returns it, so the
// caller can dismiss this one action individually.
func (s *GuardSet) Add(action func()) *HeapGuard {
	g := NewHeapGuard(action)
	if s.guards.TryPush(g) != nil {
		panic("valx: guard set capacity exceeded")
	}
	return g
}

// Exit runs all pending guards in reverse insertion order and empties the
// set. Dismissed guards are skipped.
func (s *GuardSet) Exit() {
	for !s.guards.Empty() {
		g := *s.guards.Back()
		// Pop before running so a panicking action cannot re-run on a
		// later Exit.
		s.guards.Pop()
		g.Exit()
	}
}

// Dismiss cancels every pending guard and empties the set.
func (s *GuardSet) Dismiss() {
	for !s.guards.Empty() {
		(*s.guards.Back()).Dismiss()
		s.guards.Pop()
	}
}

// Len returns the number of stored guards.
func (s *GuardSet) Len() int { return s.guards.Len() }
