// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

// Disposer is the failing-teardown capability. An alternative implementing
// Disposer makes its container's Destroy able to return a non-nil error.
type Disposer interface {
	Dispose() error
}

// Releaser is the non-failing teardown capability, for alternatives whose
// teardown does work but cannot fail (reference-count decrements, pool
// returns). Implementing Releaser keeps the container's NoFailDestroy trait.
type Releaser interface {
	Release()
}

// Cloner is the failing-copy capability. An alternative implementing Cloner
// makes its container's Clone able to return a non-nil error.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Copier is the non-failing deep-copy capability. Alternatives implementing
// neither Cloner nor Copier are copied by plain assignment.
type Copier[T any] interface {
	Copy() T
}

// disposeSlot runs the slot's teardown capability, if any.
// The slot pointer is tried first (alloc-free for value alternatives), then
// the slot value (pointer-typed alternatives with pointee methods).
func disposeSlot[T any](p *T) error {
	if d, ok := any(p).(Disposer); ok {
		return d.Dispose()
	}
	if r, ok := any(p).(Releaser); ok {
		r.Release()
		return nil
	}
	if d, ok := any(*p).(Disposer); ok {
		return d.Dispose()
	}
	if r, ok := any(*p).(Releaser); ok {
		r.Release()
		return nil
	}
	return nil
}

// copySlot produces a copy of the slot value through its copy capability,
// falling back to plain assignment for trivial alternatives.
func copySlot[T any](p *T) (T, error) {
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(p).(Copier[T]); ok {
		return c.Copy(), nil
	}
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(*p).(Copier[T]); ok {
		return c.Copy(), nil
	}
	return *p, nil
}

// Destroy tears down the active alternative and marks the slot destroyed
// (the tag becomes the arity; visitation of a destroyed variant resolves to
// alternative 0). When every alternative is trivially destructible no
// teardown work runs at all. A Dispose failure propagates unwrapped.
// Destroying an already-destroyed variant is a no-op.
func (v *Variant2[T0, T1]) Destroy() error {
	r := Registry2[T0, T1]()
	if r.TrivialDestroy {
		v.tag = 2
		return nil
	}
	var err error
	switch v.tag {
	case 0:
		err = disposeSlot(&v.a0)
	case 1:
		err = disposeSlot(&v.a1)
	}
	v.tag = 2
	return err
}

// Destroy tears down the active alternative. See [Variant2.Destroy].
func (v *Variant3[T0, T1, T2]) Destroy() error {
	r := Registry3[T0, T1, T2]()
	if r.TrivialDestroy {
		v.tag = 3
		return nil
	}
	var err error
	switch v.tag {
	case 0:
		err = disposeSlot(&v.a0)
	case 1:
		err = disposeSlot(&v.a1)
	case 2:
		err = disposeSlot(&v.a2)
	}
	v.tag = 3
	return err
}

// Destroy tears down the active alternative. See [Variant2.Destroy].
func (v *Variant4[T0, T1, T2, T3]) Destroy() error {
	r := Registry4[T0, T1, T2, T3]()
	if r.TrivialDestroy {
		v.tag = 4
		return nil
	}
	var err error
	switch v.tag {
	case 0:
		err = disposeSlot(&v.a0)
	case 1:
		err = disposeSlot(&v.a1)
	case 2:
		err = disposeSlot(&v.a2)
	case 3:
		err = disposeSlot(&v.a3)
	}
	v.tag = 4
	return err
}
