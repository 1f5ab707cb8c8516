// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

import (
	"errors"
	"iter"

	"code.hybscloud.com/iox"
)

// FixedVec is a dynamically-sized sequence over fixed backing storage: no
// reallocation, stable element addresses, capacity decided at construction.
// Wrap a stack array with [WrapVec] for a fully allocation-free vector, or
// allocate the backing once with [NewVec]. The zero value is an empty vector
// of capacity 0.
//
// Element teardown and copying go through the same capability interfaces as
// variant alternatives ([Disposer], [Releaser], [Cloner], [Copier]).
// Instances are single-threaded.
type FixedVec[T any] struct {
	items []T
	size  int
}

// WrapVec returns an empty vector using buf as its backing storage.
// The caller must not touch buf afterwards; buf's length is the capacity.
func WrapVec[T any](buf []T) FixedVec[T] {
	clear(buf)
	return FixedVec[T]{items: buf}
}

// NewVec returns an empty vector with a freshly allocated backing of the
// given capacity. The single allocation happens here; no operation on the
// vector allocates afterwards.
func NewVec[T any](capacity int) FixedVec[T] {
	return FixedVec[T]{items: make([]T, capacity)}
}

// VecOf returns a vector over buf holding the given items in order.
// Panics when the items exceed buf's length.
func VecOf[T any](buf []T, items ...T) FixedVec[T] {
	v := WrapVec(buf)
	for _, x := range items {
		v.Push(x)
	}
	return v
}

// Len returns the number of live elements.
func (v *FixedVec[T]) Len() int { return v.size }

// Cap returns the fixed capacity.
func (v *FixedVec[T]) Cap() int { return len(v.items) }

// Empty reports whether the vector holds no elements.
func (v *FixedVec[T]) Empty() bool { return v.size == 0 }

// Push appends x. Exceeding the capacity is a caller contract violation and
// panics; use [FixedVec.TryPush] to probe.
func (v *FixedVec[T]) Push(x T) {
	if v.size == len(v.items) {
		panic("valx: fixed capacity exceeded")
	}
	v.items[v.size] = x
	v.size++
}

// TryPush appends x, reporting capacity exhaustion with
// [code.hybscloud.com/iox.ErrWouldBlock] instead of panicking.
func (v *FixedVec[T]) TryPush(x T) error {
	if v.size == len(v.items) {
		return iox.ErrWouldBlock
	}
	v.items[v.size] = x
	v.size++
	return nil
}

// Pop tears down and removes the last element. Popping an empty vector is a
// caller contract violation and panics. A Dispose failure propagates; the
// element is removed either way.
func (v *FixedVec[T]) Pop() error {
	if v.size == 0 {
		panic("valx: pop of empty vector")
	}
	v.size--
	err := disposeSlot(&v.items[v.size])
	var zero T
	v.items[v.size] = zero
	return err
}

// At returns a pointer to the element at index i; i must be < Len.
func (v *FixedVec[T]) At(i int) *T {
	if i >= v.size {
		panic("valx: index out of range")
	}
	return &v.items[i]
}

// Get returns the element at index i, with ok reporting i < Len.
func (v *FixedVec[T]) Get(i int) (T, bool) {
	if i >= v.size || i < 0 {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// Front returns a pointer to the first element; the vector must be non-empty.
func (v *FixedVec[T]) Front() *T { return v.At(0) }

// Back returns a pointer to the last element; the vector must be non-empty.
func (v *FixedVec[T]) Back() *T { return v.At(v.size - 1) }

// Shorten tears down elements [n, Len) and truncates to n; a no-op when
// n >= Len. Teardown errors from the removed elements are joined.
func (v *FixedVec[T]) Shorten(n int) error {
	if n < 0 {
		n = 0
	}
	var err error
	for v.size > n {
		err = errors.Join(err, v.Pop())
	}
	return err
}

// Resize grows to n zero-value elements or shrinks to n via [FixedVec.Shorten].
// Growing beyond the capacity panics.
func (v *FixedVec[T]) Resize(n int) error {
	if n < v.size {
		return v.Shorten(n)
	}
	if n > len(v.items) {
		panic("valx: fixed capacity exceeded")
	}
	// Slots past size were zeroed on removal; just expose them.
	v.size = n
	return nil
}

// ResizeFill grows to n elements copied from fill (through fill's copy
// capability, so growth can fail), or shrinks to n. On a copy failure the
// vector keeps the elements grown so far and the error returns.
func (v *FixedVec[T]) ResizeFill(n int, fill T) error {
	if n < v.size {
		return v.Shorten(n)
	}
	if n > len(v.items) {
		panic("valx: fixed capacity exceeded")
	}
	for v.size < n {
		x, err := copySlot(&fill)
		if err != nil {
			return err
		}
		v.items[v.size] = x
		v.size++
	}
	return nil
}

// Clear tears down all elements. Equivalent to Shorten(0).
func (v *FixedVec[T]) Clear() error { return v.Shorten(0) }

// Destroy tears down all elements; the teardown name shared with
// [Variant2.Destroy]. The backing storage stays usable.
func (v *FixedVec[T]) Destroy() error { return v.Shorten(0) }

// Clone copy-constructs a new vector with its own freshly allocated backing,
// copying each element through its copy capability. On a copy failure the
// returned vector holds the elements copied so far and remains destructible;
// the source is unaffected.
func (v *FixedVec[T]) Clone() (FixedVec[T], error) {
	out := NewVec[T](len(v.items))
	for i := 0; i < v.size; i++ {
		x, err := copySlot(&v.items[i])
		if err != nil {
			return out, err
		}
		out.items[i] = x
		out.size++
	}
	return out, nil
}

// CopyFrom copy-assigns from o in place: shrink to o's length, overwrite the
// surviving prefix, then extend with copies of o's tail. Each overwritten
// prefix element is torn down before the copy is stored; there is no
// assignment hook on the element itself, so the replace follows the same
// destroy-then-store discipline as [Variant2.Set0]. Assumes no aliasing
// between v and o's elements. Teardown errors are joined per the [FixedVec.Shorten]
// convention and surface after the assignment took effect; on a copy failure
// v's state is modified but leak-free and o is unmodified. Panics when o's
// length exceeds v's capacity.
func (v *FixedVec[T]) CopyFrom(o *FixedVec[T]) error {
	if o.size > len(v.items) {
		panic("valx: fixed capacity exceeded")
	}
	err := v.Shorten(o.size)
	for i := 0; i < v.size; i++ {
		x, cerr := copySlot(&o.items[i])
		if cerr != nil {
			return errors.Join(err, cerr)
		}
		err = errors.Join(err, disposeSlot(&v.items[i]))
		v.items[i] = x
	}
	for v.size < o.size {
		x, cerr := copySlot(&o.items[v.size])
		if cerr != nil {
			return errors.Join(err, cerr)
		}
		v.items[v.size] = x
		v.size++
	}
	return err
}

// MoveFrom move-assigns from o: v's elements are torn down, o's elements are
// adopted without invoking their copy capability, and o is left empty (its
// capacity kept, matching the usual vector convention). If teardown of v's
// elements fails the error returns with v emptied and nothing adopted, o
// untouched; the same contract as [Variant2.MoveFrom]. Panics when o's length
// exceeds v's capacity.
func (v *FixedVec[T]) MoveFrom(o *FixedVec[T]) error {
	if o.size > len(v.items) {
		panic("valx: fixed capacity exceeded")
	}
	if err := v.Shorten(0); err != nil {
		return err
	}
	copy(v.items[:o.size], o.items[:o.size])
	v.size = o.size
	clear(o.items[:o.size])
	o.size = 0
	return nil
}

// Move move-constructs a new vector by adopting v's backing and elements.
// v is left as a valid empty vector of capacity 0.
func (v *FixedVec[T]) Move() FixedVec[T] {
	out := FixedVec[T]{items: v.items, size: v.size}
	v.items = nil
	v.size = 0
	return out
}

// All ranges over (index, element) pairs in order.
func (v *FixedVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Values ranges over elements in order.
func (v *FixedVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.items[i]) {
				return
			}
		}
	}
}

// VecEqual reports element-wise equality of two vectors of comparable
// elements. Capacities do not participate.
func VecEqual[T comparable](a, b *FixedVec[T]) bool {
	return VecEqualFunc(a, b, func(x, y T) bool { return x == y })
}

// VecEqualFunc reports element-wise equality under eq.
func VecEqualFunc[T any](a, b *FixedVec[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}
