// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package valx

// Clone copy-constructs a new variant from the active alternative, through
// its Cloner/Copier capability when implemented and by plain assignment
// otherwise. On a Clone failure the returned variant's state is unspecified
// but safe to Destroy; the source is unaffected.
func (v *Variant2[T0, T1]) Clone() (Variant2[T0, T1], error) {
	out := Variant2[T0, T1]{tag: v.tag}
	var err error
	switch v.tag {
	case 0:
		out.a0, err = copySlot(&v.a0)
	case 1:
		out.a1, err = copySlot(&v.a1)
	}
	return out, err
}

// Clone copy-constructs a new variant. See [Variant2.Clone].
func (v *Variant3[T0, T1, T2]) Clone() (Variant3[T0, T1, T2], error) {
	out := Variant3[T0, T1, T2]{tag: v.tag}
	var err error
	switch v.tag {
	case 0:
		out.a0, err = copySlot(&v.a0)
	case 1:
		out.a1, err = copySlot(&v.a1)
	case 2:
		out.a2, err = copySlot(&v.a2)
	}
	return out, err
}

// Clone copy-constructs a new variant. See [Variant2.Clone].
func (v *Variant4[T0, T1, T2, T3]) Clone() (Variant4[T0, T1, T2, T3], error) {
	out := Variant4[T0, T1, T2, T3]{tag: v.tag}
	var err error
	switch v.tag {
	case 0:
		out.a0, err = copySlot(&v.a0)
	case 1:
		out.a1, err = copySlot(&v.a1)
	case 2:
		out.a2, err = copySlot(&v.a2)
	case 3:
		out.a3, err = copySlot(&v.a3)
	}
	return out, err
}

// Move move-constructs a new variant by adopting the active alternative
// without invoking its copy capability, so ownership is never duplicated.
// The source keeps its tag and slots as a valid but unspecified state; it is
// deliberately not reset to a canonical empty alternative. Teardown
// responsibility transfers to the returned variant: the source must not be
// Destroyed after moving an alternative with a non-trivial teardown, or both
// aliases run it.
func (v *Variant2[T0, T1]) Move() Variant2[T0, T1] { return *v }

// Move move-constructs a new variant. See [Variant2.Move].
func (v *Variant3[T0, T1, T2]) Move() Variant3[T0, T1, T2] { return *v }

// Move move-constructs a new variant. See [Variant2.Move].
func (v *Variant4[T0, T1, T2, T3]) Move() Variant4[T0, T1, T2, T3] { return *v }

// CopyFrom copy-assigns from o: a full temporary copy is constructed first,
// then exchanged with *v. If cloning fails *v is unmodified (strong
// guarantee); the exchange itself cannot fail. The displaced value is then
// torn down, and its teardown error surfaces after the assignment has
// already taken effect.
func (v *Variant2[T0, T1]) CopyFrom(o *Variant2[T0, T1]) error {
	tmp, err := o.Clone()
	if err != nil {
		return err
	}
	old := *v
	*v = tmp
	return old.Destroy()
}

// CopyFrom copy-assigns from o. See [Variant2.CopyFrom].
func (v *Variant3[T0, T1, T2]) CopyFrom(o *Variant3[T0, T1, T2]) error {
	tmp, err := o.Clone()
	if err != nil {
		return err
	}
	old := *v
	*v = tmp
	return old.Destroy()
}

// CopyFrom copy-assigns from o. See [Variant2.CopyFrom].
func (v *Variant4[T0, T1, T2, T3]) CopyFrom(o *Variant4[T0, T1, T2, T3]) error {
	tmp, err := o.Clone()
	if err != nil {
		return err
	}
	old := *v
	*v = tmp
	return old.Destroy()
}

// MoveFrom move-assigns from o: the current alternative is destroyed, then
// o's contents are adopted in place. Not built on an exchange primitive (an
// exchange defined in terms of move assignment would recurse unboundedly).
// If teardown of the current alternative fails, the error returns with the
// slot destroyed and nothing adopted. o is left valid but unspecified, and
// teardown responsibility for the adopted alternative transfers to v: o must
// not be Destroyed afterwards if the alternative's teardown is non-trivial.
func (v *Variant2[T0, T1]) MoveFrom(o *Variant2[T0, T1]) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	*v = *o
	return nil
}

// MoveFrom move-assigns from o. See [Variant2.MoveFrom].
func (v *Variant3[T0, T1, T2]) MoveFrom(o *Variant3[T0, T1, T2]) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	*v = *o
	return nil
}

// MoveFrom move-assigns from o. See [Variant2.MoveFrom].
func (v *Variant4[T0, T1, T2, T3]) MoveFrom(o *Variant4[T0, T1, T2, T3]) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	*v = *o
	return nil
}

// Set0 assigns x as the new active alternative at index 0. The replace is
// destructive and non-transactional: the current alternative is destroyed
// first, and if its teardown fails the error returns with the slot destroyed
// and x not stored. An accepted limitation of this design, not a defect.
func (v *Variant2[T0, T1]) Set0(x T0) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a0 = x
	v.tag = 0
	return nil
}

// Set1 assigns x at index 1. See [Variant2.Set0].
func (v *Variant2[T0, T1]) Set1(x T1) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a1 = x
	v.tag = 1
	return nil
}

// Set0 assigns x at index 0. See [Variant2.Set0].
func (v *Variant3[T0, T1, T2]) Set0(x T0) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a0 = x
	v.tag = 0
	return nil
}

// Set1 assigns x at index 1. See [Variant2.Set0].
func (v *Variant3[T0, T1, T2]) Set1(x T1) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a1 = x
	v.tag = 1
	return nil
}

// Set2 assigns x at index 2. See [Variant2.Set0].
func (v *Variant3[T0, T1, T2]) Set2(x T2) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a2 = x
	v.tag = 2
	return nil
}

// Set0 assigns x at index 0. See [Variant2.Set0].
func (v *Variant4[T0, T1, T2, T3]) Set0(x T0) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a0 = x
	v.tag = 0
	return nil
}

// Set1 assigns x at index 1. See [Variant2.Set0].
func (v *Variant4[T0, T1, T2, T3]) Set1(x T1) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a1 = x
	v.tag = 1
	return nil
}

// Set2 assigns x at index 2. See [Variant2.Set0].
func (v *Variant4[T0, T1, T2, T3]) Set2(x T2) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a2 = x
	v.tag = 2
	return nil
}

// Set3 assigns x at index 3. See [Variant2.Set0].
func (v *Variant4[T0, T1, T2, T3]) Set3(x T3) error {
	if err := v.Destroy(); err != nil {
		return err
	}
	v.a3 = x
	v.tag = 3
	return nil
}

// Assign resolves src to an alternative index by the same rules as [Make2]
// and performs the destructive replace of [Variant2.Set0] at that index.
// The resulting active index is always the resolved index, regardless of
// which alternative was active before. Panics when no alternative matches.
func (v *Variant2[T0, T1]) Assign(src any) error {
	idx := resolveTarget(Registry2[T0, T1](), src)
	if err := v.Destroy(); err != nil {
		return err
	}
	switch idx {
	case 0:
		v.a0 = convertTo[T0](src)
	default:
		v.a1 = convertTo[T1](src)
	}
	v.tag = uint32(idx)
	return nil
}

// Assign resolves src and replaces the active alternative. See [Variant2.Assign].
func (v *Variant3[T0, T1, T2]) Assign(src any) error {
	idx := resolveTarget(Registry3[T0, T1, T2](), src)
	if err := v.Destroy(); err != nil {
		return err
	}
	switch idx {
	case 0:
		v.a0 = convertTo[T0](src)
	case 1:
		v.a1 = convertTo[T1](src)
	default:
		v.a2 = convertTo[T2](src)
	}
	v.tag = uint32(idx)
	return nil
}

// Assign resolves src and replaces the active alternative. See [Variant2.Assign].
func (v *Variant4[T0, T1, T2, T3]) Assign(src any) error {
	idx := resolveTarget(Registry4[T0, T1, T2, T3](), src)
	if err := v.Destroy(); err != nil {
		return err
	}
	switch idx {
	case 0:
		v.a0 = convertTo[T0](src)
	case 1:
		v.a1 = convertTo[T1](src)
	case 2:
		v.a2 = convertTo[T2](src)
	default:
		v.a3 = convertTo[T3](src)
	}
	v.tag = uint32(idx)
	return nil
}
