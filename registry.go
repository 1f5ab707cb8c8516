// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

import (
	"reflect"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Registry holds the aggregate capability traits of one alternative list.
// It is computed once per concrete list and memoized; later lookups for the
// same list return the same *Registry.
type Registry struct {
	// Count is the number of alternatives.
	Count int
	// MaxSize is the size in bytes of the largest alternative.
	MaxSize uintptr
	// MaxAlign is the strictest alignment among the alternatives.
	MaxAlign uintptr
	// TrivialDestroy reports that no alternative implements Disposer or
	// Releaser: teardown of any active alternative is a no-op.
	TrivialDestroy bool
	// NoFailDestroy reports that no alternative implements Disposer:
	// Destroy cannot return a non-nil error.
	NoFailDestroy bool
	// NoFailCopy reports that no alternative implements Cloner:
	// Clone cannot return a non-nil error.
	NoFailCopy bool

	alts []reflect.Type
}

// Alt returns the type of the alternative at index i.
func (r *Registry) Alt(i int) reflect.Type {
	return r.alts[i]
}

// NoFailCopyAssign reports that CopyFrom cannot return a non-nil error.
// Copy assignment clones the source and tears down the displaced value,
// so both must be failure-free.
func (r *Registry) NoFailCopyAssign() bool {
	return r.NoFailCopy && r.NoFailDestroy
}

// NoFailMoveAssign reports that MoveFrom cannot return a non-nil error.
// Move adoption itself cannot fail; only the teardown of the displaced
// value can.
func (r *Registry) NoFailMoveAssign() bool {
	return r.NoFailDestroy
}

// ResolveIndex returns the target alternative index for a source of type src:
// the exact type match if there is one, otherwise the first alternative in
// declaration order that src converts to, otherwise -1.
//
// The declaration-order scan is a deterministic tie-break, not a best-match
// search: a narrowing-but-valid conversion earlier in the list wins over a
// more natural match later in the list.
func (r *Registry) ResolveIndex(src reflect.Type) int {
	for i, t := range r.alts {
		if t == src {
			return i
		}
	}
	for i, t := range r.alts {
		if src.ConvertibleTo(t) {
			return i
		}
	}
	return -1
}

// altMeta is the per-alternative slice of the aggregate traits.
// Capability interfaces are asserted against *T: the pointer method set
// covers both receiver forms, and containers operate on slot pointers.
type altMeta struct {
	typ      reflect.Type
	disposer bool
	releaser bool
	cloner   bool
}

func altInfo[T any]() altMeta {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		panic("valx: interface type " + t.String() + " cannot be an alternative")
	}
	// Capabilities are honored on both the slot pointer and the slot value:
	// *T covers value alternatives with either receiver form, T itself covers
	// pointer-typed alternatives whose methods live on the pointee type.
	var zero T
	m := altMeta{typ: t}
	_, pd := any(&zero).(Disposer)
	_, vd := any(zero).(Disposer)
	m.disposer = pd || vd
	_, pr := any(&zero).(Releaser)
	_, vr := any(zero).(Releaser)
	m.releaser = pr || vr
	_, pc := any(&zero).(Cloner[T])
	_, vc := any(zero).(Cloner[T])
	m.cloner = pc || vc
	return m
}

func buildRegistry(alts ...altMeta) *Registry {
	r := &Registry{
		Count:          len(alts),
		TrivialDestroy: true,
		NoFailDestroy:  true,
		NoFailCopy:     true,
		alts:           make([]reflect.Type, len(alts)),
	}
	for i, a := range alts {
		r.alts[i] = a.typ
		if s := a.typ.Size(); s > r.MaxSize {
			r.MaxSize = s
		}
		if al := uintptr(a.typ.Align()); al > r.MaxAlign {
			r.MaxAlign = al
		}
		if a.disposer || a.releaser {
			r.TrivialDestroy = false
		}
		if a.disposer {
			r.NoFailDestroy = false
		}
		if a.cloner {
			r.NoFailCopy = false
		}
	}
	return r
}

// regKey identifies one alternative list. Unused trailing slots stay nil.
type regKey struct {
	arity int
	t     [4]reflect.Type
}

// regGate is a CAS spin gate over regTable. Registry lookups from multiple
// goroutines are safe; container instances themselves are single-threaded.
var regGate atomix.Uint32

var regTable = map[regKey]*Registry{}

func lockRegTable() {
	var bo iox.Backoff
	for !regGate.CompareAndSwap(0, 1) {
		bo.Wait()
	}
}

func unlockRegTable() {
	regGate.Store(0)
}

// cachedRegistry is the fast path: no alternative metadata is built
// (and nothing is boxed) when the list has been seen before.
func cachedRegistry(key regKey) *Registry {
	lockRegTable()
	r := regTable[key]
	unlockRegTable()
	return r
}

func lookupRegistry(key regKey, alts ...altMeta) *Registry {
	lockRegTable()
	r, ok := regTable[key]
	if !ok {
		r = buildRegistry(alts...)
		regTable[key] = r
	}
	unlockRegTable()
	return r
}

// Registry2 returns the memoized Registry for the alternative list {T0, T1}.
func Registry2[T0, T1 any]() *Registry {
	key := regKey{arity: 2, t: [4]reflect.Type{reflect.TypeFor[T0](), reflect.TypeFor[T1]()}}
	if r := cachedRegistry(key); r != nil {
		return r
	}
	return lookupRegistry(key, altInfo[T0](), altInfo[T1]())
}

// Registry3 returns the memoized Registry for the alternative list {T0, T1, T2}.
func Registry3[T0, T1, T2 any]() *Registry {
	key := regKey{arity: 3, t: [4]reflect.Type{reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]()}}
	if r := cachedRegistry(key); r != nil {
		return r
	}
	return lookupRegistry(key, altInfo[T0](), altInfo[T1](), altInfo[T2]())
}

// Registry4 returns the memoized Registry for the alternative list {T0, T1, T2, T3}.
func Registry4[T0, T1, T2, T3 any]() *Registry {
	key := regKey{arity: 4, t: [4]reflect.Type{reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()}}
	if r := cachedRegistry(key); r != nil {
		return r
	}
	return lookupRegistry(key, altInfo[T0](), altInfo[T1](), altInfo[T2](), altInfo[T3]())
}
